package user

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/internal/deps"
)

const (
	ServiceKey = "user_service"
)

// MountPublic mounts registration and login
func MountPublic(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	userGroup := r.Group("/users")
	userGroup.POST("/register", handler.Register)
	userGroup.POST("/login", handler.Login)
}

// MountAuthenticated mounts session-bound routes
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	userGroup := r.Group("/users")
	userGroup.POST("/logout", handler.Logout)
	userGroup.GET("/me", handler.Me)
}

// InitService builds the registry and session service and registers the
// latter with the container. Session rehydration happens here.
func InitService(ctx context.Context, container *deps.Container, cfg *Config) Service {
	repo := NewRepository(container.Store)
	service := NewService(ctx, repo, container.Store, container.TokenMaker, container.Logger, cfg)
	container.RegisterService(ServiceKey, service)
	return service
}

func createHandler(container *deps.Container) *Handler {
	service := container.GetService(ServiceKey).(Service)
	return NewHandler(service, container.Sanitizer)
}
