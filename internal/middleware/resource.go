package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/kishoreadhith-v/clubs-api/internal/constants"
	apierrors "github.com/kishoreadhith-v/clubs-api/internal/errors"
	"github.com/kishoreadhith-v/clubs-api/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequireObjectID parses the :id path parameter and rejects malformed identifiers before any
// handler touches the store.
func RequireObjectID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseObjectID("id", c.Param("id"))
		if err != nil {
			apierrors.BadRequest(c, err.Error())
			return
		}

		c.Set(constants.ContextKeyResourceID, id)
		c.Next()
	}
}

// GetResourceID retrieves the identifier parsed by RequireObjectID
func GetResourceID(c *gin.Context) (primitive.ObjectID, bool) {
	v, ok := c.Get(constants.ContextKeyResourceID)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}
