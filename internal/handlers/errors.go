package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/kishoreadhith-v/clubs-api/internal/constants"
	apierrors "github.com/kishoreadhith-v/clubs-api/internal/errors"
	"github.com/kishoreadhith-v/clubs-api/internal/middleware"
	"github.com/kishoreadhith-v/clubs-api/internal/services"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// respondServiceError maps service errors onto HTTP responses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrRollNoRequired),
		errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrContentRequired),
		errors.Is(err, services.ErrMissingParameter),
		errors.Is(err, services.ErrInvalidID),
		errors.Is(err, services.ErrBlankRollNo):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	case errors.Is(err, services.ErrNotAuthor):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrRollNoTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrForumNotFound),
		errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrReplyNotFound),
		errors.Is(err, services.ErrEventNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString(constants.ContextKeyRequestID)).
			Str("path", c.FullPath()).
			Msg("request failed")
		apierrors.InternalError(c, "")
	}
}

// respondBindError reports request schema violations field by field.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = describeFieldError(fe)
	}
	apierrors.BadRequestWithDetails(c, "Invalid request body", details)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "datetime":
		return "must match " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// currentRollNo returns the authenticated roll number or answers 401.
func currentRollNo(c *gin.Context) (string, bool) {
	rollno, ok := middleware.GetRollNo(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return "", false
	}
	return rollno, true
}

// resourceID returns the identifier parsed by middleware.RequireObjectID.
func resourceID(c *gin.Context) (primitive.ObjectID, bool) {
	id, ok := middleware.GetResourceID(c)
	if !ok {
		apierrors.BadRequest(c, services.ErrInvalidID.Error())
		return primitive.NilObjectID, false
	}
	return id, true
}
