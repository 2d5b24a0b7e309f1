package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/lshigami/devprep/internal/apperr"
	"github.com/rs/zerolog/log"
)

// Reasons carried in the Message of an auth failure.
const (
	MsgMissingHeader   = "Missing Authorization header"
	MsgMalformedHeader = "Invalid Authorization header format"
	MsgInvalidToken    = "Invalid or expired token"
)

// ErrIdentityNotConfigured is returned by providers that were built without
// credentials.
var ErrIdentityNotConfigured = errors.New("identity service not configured")

type Verifier struct {
	provider IdentityProvider
}

func NewVerifier(provider IdentityProvider) *Verifier {
	return &Verifier{provider: provider}
}

// Verify checks an Authorization header value of the form "Bearer <token>".
func (v *Verifier) Verify(ctx context.Context, header string) (*Principal, error) {
	const op = "auth.Verify"

	if header == "" {
		return nil, apperr.Auth(op, MsgMissingHeader, nil)
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, apperr.Auth(op, MsgMalformedHeader, nil)
	}

	principal, err := v.provider.GetUser(ctx, parts[1])
	if errors.Is(err, ErrIdentityNotConfigured) {
		return nil, apperr.ServiceUnavailable(op, "Service not configured")
	}
	if err != nil {
		log.Warn().Err(err).Msg("Token validation failed")
		return nil, apperr.Auth(op, MsgInvalidToken, err)
	}
	if principal == nil || principal.ID == "" {
		return nil, apperr.Auth(op, MsgInvalidToken, nil)
	}
	return principal, nil
}
