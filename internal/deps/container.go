package deps

import (
	"github.com/joefazee/atlas/internal/kvstore"
	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/internal/sanitizer"
	"github.com/joefazee/atlas/internal/security"
)

// Container holds all shared dependencies
type Container struct {
	Store      kvstore.Store
	TokenMaker security.Maker
	Sanitizer  sanitizer.HTMLStripperer
	Logger     logger.Logger

	// services are stored as interfaces so modules can share them without
	// importing each other
	services map[string]interface{}
}

func NewContainer(store kvstore.Store, tokenMaker security.Maker, strip sanitizer.HTMLStripperer, log logger.Logger) *Container {
	return &Container{
		Store:      store,
		TokenMaker: tokenMaker,
		Sanitizer:  strip,
		Logger:     log,
		services:   make(map[string]interface{}),
	}
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}
