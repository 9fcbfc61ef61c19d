// context.go defines the Context interface for extension access to thebook
// internals.
//
// Extensions receive Context during Init(), not at construction, so they can
// register commands before the corpus is loaded.

package extension

import (
	"github.com/jpl-au/thebook/internal/config"
	"github.com/jpl-au/thebook/internal/service"
)

// Context provides extensions controlled access to shared resources.
type Context interface {
	// Service returns the book service, or nil when no corpus is cached.
	Service() service.Service

	// Config returns the loaded user configuration.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	svc service.Service
	cfg *config.Config
}

// NewContext creates a new extension context. svc may be nil.
func NewContext(svc service.Service, cfg *config.Config) Context {
	return &extContext{
		svc: svc,
		cfg: cfg,
	}
}

// Service returns the book service.
func (c *extContext) Service() service.Service {
	return c.svc
}

// Config returns the loaded user configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}
