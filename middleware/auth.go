package middleware

import (
	"context"
	"net/http"
	"strings"

	"assetverse/auth"
	"assetverse/repository"
	"assetverse/utils"

	"github.com/rs/zerolog"
)

type contextKey string

const emailKey contextKey = "userEmail"

// EmailFromContext returns the verified email attached by Authenticate.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok
}

// WithEmail attaches a verified email to ctx the way Authenticate does.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// Authenticate extracts a bearer token, verifies it and attaches the
// verified email to the request context. Missing or rejected tokens get 401.
func Authenticate(verifier auth.TokenVerifier, log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			if token == "" {
				utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
				return
			}

			email, err := verifier.Verify(r.Context(), token)
			if err != nil {
				log.Debug().Err(err).Str("path", r.URL.Path).Msg("token verification failed")
				utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), emailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole looks up the authenticated caller and rejects with 403 unless
// the stored role equals role. Must be composed after Authenticate.
// Currently attached to no route; available for locking down mutation
// endpoints.
func RequireRole(users repository.UserRepository, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := EmailFromContext(r.Context())
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
				return
			}

			user, err := users.GetByEmail(r.Context(), email)
			if err != nil {
				utils.RespondWithError(w, http.StatusInternalServerError, "database error")
				return
			}
			if user == nil || user.Role != role {
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
