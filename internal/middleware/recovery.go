package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/coopebred/registro-socios/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics so the process keeps serving.
// It logs the panic with its stack and answers 500 with an error body.
func PanicRecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slog.Error("handler panic recovered",
					"error", rec,
					"path", r.URL.Path,
					"request_id", RequestIDFromContext(r.Context()),
					"stack", string(debug.Stack()))
				utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
