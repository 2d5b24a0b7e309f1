// Package auth resolves bearer tokens into principals by delegating to an
// external identity service.
package auth

import (
	"context"

	"github.com/gin-gonic/gin"
)

// Principal is the authenticated identity behind a request.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// IdentityProvider validates an access token. It returns (nil, nil) when the
// service answers but does not recognise the token.
type IdentityProvider interface {
	GetUser(ctx context.Context, token string) (*Principal, error)
}

const principalKey = "auth.principal"

type contextKey struct{}

// PrincipalFrom returns the principal stored by RequireAuth.
func PrincipalFrom(c *gin.Context) (*Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok && p != nil
}

// WithPrincipal attaches p to ctx for code that only sees a context.Context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// PrincipalFromContext extracts the principal set by WithPrincipal.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(*Principal)
	return p, ok && p != nil
}
