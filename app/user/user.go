package user

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/internal/security"
	"github.com/joefazee/atlas/models"
)

const (
	AuthorizationHeaderKey  = "Authorization"
	AuthorizationTypeBearer = "Bearer"
)

const (
	ContextUser  = "context_user"
	ContextToken = "context_token"
)

// ContextSetUser sets the user in the context
func ContextSetUser(c *gin.Context, user *models.User) *gin.Context {
	c.Set(ContextUser, user)
	return c
}

// ContextSetToken sets the token payload in the context
func ContextSetToken(c *gin.Context, payload *security.Payload) *gin.Context {
	c.Set(ContextToken, payload)
	return c
}

// ContextGetUser gets the user from the context
func ContextGetUser(c *gin.Context) *models.User {
	user, ok := c.Get(ContextUser)
	if !ok {
		panic("missing user value in context")
	}
	return user.(*models.User)
}

// ContextGetToken gets the token payload from the context
func ContextGetToken(c *gin.Context) *security.Payload {
	token, ok := c.Get(ContextToken)
	if !ok {
		panic("missing token value in context")
	}
	return token.(*security.Payload)
}
