package primary

import (
	"context"

	"gitlab.com/dsa-judge.net/internal/domain"
)

type JWTService interface {
	// GenerateTokenHMAC signs claims; used by tooling and tests
	GenerateTokenHMAC(ctx context.Context, claims domain.AuthClaims) (string, error)
	// VerifyTokenHMAC validates the signature and expiry and returns the claims
	VerifyTokenHMAC(ctx context.Context, token string) (*domain.AuthClaims, error)
}
