package api

import (
	"context"
)

type keyType string

const callerKey keyType = "caller"

// caller is the identity the authentication collaborator vouched for.
type caller struct {
	Subject string
	Admin   bool
}

// ctxWithCaller adds the authenticated caller to the context
func ctxWithCaller(ctx context.Context, c caller) context.Context {
	return context.WithValue(ctx, callerKey, c)
}

// ctxGetCaller retrieves the authenticated caller from the context; ok is
// false for anonymous requests.
func ctxGetCaller(ctx context.Context) (caller, bool) {
	c, ok := ctx.Value(callerKey).(caller)
	return c, ok
}
