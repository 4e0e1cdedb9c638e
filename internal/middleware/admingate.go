package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"techparts-store/internal/admin"
)

// Headers the admin client sends with every gated request.
const (
	AdminLoginHeader    = "X-Admin-Login"
	AdminPasswordHeader = "X-Admin-Password"
)

// AdminGateMiddleware guards the administration routes with the fixed
// credential comparison. A mismatch gets the standard rejection notice;
// there is no lockout and no retry limit.
func AdminGateMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			login := r.Header.Get(AdminLoginHeader)
			password := r.Header.Get(AdminPasswordHeader)

			if !admin.Check(login, password) {
				logger.Debug("Admin gate rejected request",
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
				)
				RespondWithError(w, http.StatusUnauthorized, admin.RejectionMessage)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
