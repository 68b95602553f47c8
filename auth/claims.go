//go:generate go run go.uber.org/mock/mockgen -source=claims.go -destination=../mocks/mock_claim_value_provider.go -package=mocks
package auth

import (
	"context"
	"strings"

	"household-intranet/errors"
)

type contextKey string

const claimsKey contextKey = "claims"

// ContextWithClaims injects the caller identity for downstream handlers.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok && claims != nil
}

// IClaimValueProvider gives read-only access to the caller identity.
type IClaimValueProvider interface {
	MailAddress(ctx context.Context) (string, error)
}

type ContextClaimValueProvider struct{}

func NewClaimValueProvider() IClaimValueProvider {
	return ContextClaimValueProvider{}
}

func (ContextClaimValueProvider) MailAddress(ctx context.Context) (string, error) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok || strings.TrimSpace(claims.MailAddress) == "" {
		return "", errors.NewBusinessError(errors.CodeUserAppropriateClaimNotFound)
	}
	return claims.MailAddress, nil
}
