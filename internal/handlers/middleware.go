package handlers

import (
	"context"
	"net/http"
	"strings"

	"gitlab.com/dsa-judge.net/internal/core/ports/primary"
	"gitlab.com/dsa-judge.net/internal/domain"
	"gitlab.com/dsa-judge.net/internal/handlers/response"
	"gitlab.com/dsa-judge.net/internal/static/errs"
)

type contextKey struct{}

const tokenCookie = "jwt"

type MiddlewareProvider struct {
	jwtService primary.JWTService
	adminRole  string
}

func New(jwtService primary.JWTService, adminRole string) *MiddlewareProvider {
	return &MiddlewareProvider{
		jwtService: jwtService,
		adminRole:  adminRole,
	}
}

// JWTMiddleware accepts a bearer token or the jwt cookie and stores the
// caller's claims in the request context.
func (m *MiddlewareProvider) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			response.WriteError(w, response.FromError(errs.MissingAuthorization))
			return
		}

		claims, err := m.jwtService.VerifyTokenHMAC(r.Context(), tokenString)
		if err != nil {
			response.WriteError(w, response.FromError(err))
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// AdminOnly rejects callers whose role is not the admin role. It must run
// after JWTMiddleware.
func (m *MiddlewareProvider) AdminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFrom(r.Context())
		if claims == nil || claims.Role != m.adminRole {
			response.WriteError(w, response.FromError(errs.AdminRequired))
			return
		}
		next(w, r)
	}
}

func WithClaims(ctx context.Context, claims *domain.AuthClaims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

// ClaimsFrom returns nil for unauthenticated requests.
func ClaimsFrom(ctx context.Context) *domain.AuthClaims {
	claims, _ := ctx.Value(contextKey{}).(*domain.AuthClaims)
	return claims
}

func bearerToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := r.Cookie(tokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}
