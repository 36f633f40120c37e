package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/google-ads-downloader/internal/domain"
	"github.com/vfg2006/google-ads-downloader/internal/usecases/authenticating"
	"github.com/vfg2006/google-ads-downloader/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyOperator contextKey = "operator"
)

// publicPaths não exigem token
var publicPaths = map[string]bool{
	"/healthcheck": true,
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			switch {
			case errors.Is(err, authenticating.ErrAuthDisabled):
				logrus.Warn("Requisição autenticada recusada: AUTH_SECRET não configurado")
				apiErrors.WriteError(w, apiErrors.ErrAuthDisabled, "Autenticação não configurada", nil)
				return
			case errors.Is(err, authenticating.ErrExpiredToken):
				apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token expirado", nil)
				return
			case err != nil:
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyOperator, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OperatorFromContext retorna as claims do operador autenticado, se houver
func OperatorFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyOperator).(*domain.Claims)
	return claims, ok
}
