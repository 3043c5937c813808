package crypto

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/dsa-judge.net/internal/config"
	"gitlab.com/dsa-judge.net/internal/core/ports/primary"
	"gitlab.com/dsa-judge.net/internal/domain"
	"gitlab.com/dsa-judge.net/internal/static/errs"
)

var _ primary.JWTService = (*JWTServiceImpl)(nil)

const tokenLifetime = 7 * 24 * time.Hour

type claims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type JWTServiceImpl struct {
	HMACSecretKey string
}

func NewJWTService(jwtConfig *config.JwtConfig) *JWTServiceImpl {
	return &JWTServiceImpl{
		HMACSecretKey: jwtConfig.Secret,
	}
}

func (J JWTServiceImpl) GenerateTokenHMAC(ctx context.Context, auth domain.AuthClaims) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		ID:   auth.UserID,
		Role: auth.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	})
	return tok.SignedString([]byte(J.HMACSecretKey))
}

func (J JWTServiceImpl) VerifyTokenHMAC(ctx context.Context, token string) (*domain.AuthClaims, error) {
	var parsed claims
	tok, err := jwt.ParseWithClaims(token, &parsed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(J.HMACSecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.InvalidToken, err)
	}
	if !tok.Valid || parsed.ID == "" {
		return nil, errs.InvalidToken
	}

	return &domain.AuthClaims{UserID: parsed.ID, Role: parsed.Role}, nil
}
