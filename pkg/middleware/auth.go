package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/menu-pricing-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// isPublicPath indica rotas acessíveis sem autenticação: healthcheck,
// login e o caminho público do cardápio (consulta de preço e eventos de
// rastreamento de demanda)
func isPublicPath(path string) bool {
	if path == "/healthcheck" || path == "/v1/login" {
		return true
	}

	if strings.HasPrefix(path, "/v1/dishes/") {
		if strings.HasSuffix(path, "/price") || strings.Contains(path, "/events/") {
			return true
		}
	}

	return false
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
