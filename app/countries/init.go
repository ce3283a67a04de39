package countries

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/internal/deps"
)

const (
	ServiceKey = "country_service"
)

// MountPublic mounts public country routes
func MountPublic(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	countriesGroup := r.Group("/countries")
	countriesGroup.GET("", handler.ListCountries)
	countriesGroup.GET("/filters", handler.GetFilters)
	countriesGroup.PUT("/filters", handler.UpdateFilters)
	countriesGroup.DELETE("/filters", handler.ResetFilters)
	countriesGroup.GET("/regions", handler.ListRegions)
	countriesGroup.GET("/languages", handler.ListLanguages)
	countriesGroup.POST("/refresh", handler.RefreshCountries)
	countriesGroup.GET("/:code", handler.GetCountryByCode)
}

// InitService initializes and registers the directory service
func InitService(container *deps.Container, provider Provider) Service {
	service := NewService(provider, container.Logger)
	container.RegisterService(ServiceKey, service)
	return service
}

// createHandler creates a handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	service := container.GetService(ServiceKey).(Service)
	return NewHandler(service)
}
