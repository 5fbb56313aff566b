package middleware

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/kishoreadhith-v/clubs-api/internal/auth"
	"github.com/kishoreadhith-v/clubs-api/internal/constants"
	apierrors "github.com/kishoreadhith-v/clubs-api/internal/errors"
	"github.com/rs/zerolog/log"
)

// RequireAuth verifies the bearer token, falling back to the token kept in the cookie session.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token = sessionToken(c)
		}
		if token == "" {
			apierrors.Unauthorized(c, "")
			return
		}

		rollno, err := tokens.Verify(token)
		if err != nil {
			log.Debug().Err(err).Str("path", c.FullPath()).Msg("rejected token")
			apierrors.Unauthorized(c, "Invalid or expired token")
			return
		}

		// Store roll number in context for easy access in handlers
		c.Set(constants.ContextKeyRollNo, rollno)
		c.Next()
	}
}

// GetRollNo retrieves the authenticated roll number from context
func GetRollNo(c *gin.Context) (string, bool) {
	rollno, ok := c.Get(constants.ContextKeyRollNo)
	if !ok {
		return "", false
	}
	s, ok := rollno.(string)
	return s, ok && s != ""
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func sessionToken(c *gin.Context) string {
	// sessions.Default panics when the sessions middleware is not installed.
	if _, ok := c.Get(sessions.DefaultKey); !ok {
		return ""
	}
	token, _ := sessions.Default(c).Get(constants.SessionKeyToken).(string)
	return token
}
