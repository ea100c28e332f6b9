// Package middleware assembles per-handler middleware chains.
package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container accumulates middlewares for the handler being wired and hands
// them off as one chain.
type Container struct {
	mws huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.mws = append(c.mws, mw)
}

// GetAllAndClear returns the accumulated chain and resets the container
// for the next handler.
func (c *Container) GetAllAndClear() huma.Middlewares {
	mws := c.mws
	c.mws = nil
	return mws
}
