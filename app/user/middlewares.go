package user

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/app/api"
	"github.com/joefazee/atlas/internal/security"
)

// AuthMiddleware verifies the bearer token and checks that it denotes
// the currently active session. A valid token for an account that is no
// longer logged in is rejected.
func AuthMiddleware(tokenMaker security.Maker, service Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeaderKey)
		if authHeader == "" {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) != 2 || fields[0] != AuthorizationTypeBearer {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		if payload.UserID != service.ActiveUserID() {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		current, err := service.CurrentUser()
		if err != nil {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		ContextSetUser(c, current)
		ContextSetToken(c, payload)
		c.Next()
	}
}
