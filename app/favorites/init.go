package favorites

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/app/countries"
	"github.com/joefazee/atlas/app/user"
	"github.com/joefazee/atlas/internal/deps"
)

const (
	ServiceKey = "favorites_service"
)

// MountAuthenticated mounts the favorites routes
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	group := r.Group("/favorites")
	group.GET("", handler.ListFavorites)
	group.POST("/:code", handler.ToggleFavorite)
	group.GET("/:code", handler.GetFavorite)
}

// InitService wires the favorites service over the session and country
// services already registered with the container.
func InitService(container *deps.Container) Service {
	sessions := container.GetService(user.ServiceKey).(user.Service)
	directory := container.GetService(countries.ServiceKey).(countries.Service)

	service := NewService(sessions, directory)
	container.RegisterService(ServiceKey, service)
	return service
}

func createHandler(container *deps.Container) *Handler {
	return NewHandler(container.GetService(ServiceKey).(Service))
}
