package sql

import (
	"context"

	"github.com/google/uuid"
)

// Context carries the ambient, single-threaded execution session through a
// pull: cancellation via the embedded context.Context, and a session id for
// log correlation. It carries no mutable engine state of its own — there is
// no concept of a "current transaction" or similar, since the engine is
// read-only and stateless across queries.
type Context struct {
	context.Context
	SessionID string
}

// NewContext wraps an existing context.Context for use by the engine.
func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx, SessionID: uuid.NewString()}
}

// NewEmptyContext returns a Context suitable for tests and simple callers
// that have no outer context.Context to thread through.
func NewEmptyContext() *Context {
	return NewContext(context.Background())
}
