package middleware

import (
	"net/http"
	"runtime"

	"assetverse/utils"

	"github.com/rs/zerolog"
)

// Recovery converts a handler panic into a 500 response instead of killing
// the process. The stack is logged server-side only.
func Recovery(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					stack := make([]byte, 8*1024)
					stack = stack[:runtime.Stack(stack, false)]
					log.Error().
						Interface("panic", rec).
						Bytes("stack", stack).
						Str("path", r.URL.Path).
						Msg("panic recovered")
					utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
