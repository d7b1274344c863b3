package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/devfolio/content-service/internal/api/respond"
	"github.com/devfolio/content-service/internal/config"
)

// AdminAuth guards the admin subrouter with the env-provided credential
// pair. This is a single hardcoded credential check, not real auth; absent
// credentials degrade every admin operation to a configuration error.
func AdminAuth(cfg *config.Config) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.AdminConfigured() {
				respond.WriteError(w, http.StatusServiceUnavailable, "Configuration error: admin credentials are not set.")
				return
			}
			user, pass, ok := r.BasicAuth()
			if !ok || !credentialsMatch(cfg, user, pass) {
				w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
				respond.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func credentialsMatch(cfg *config.Config, user, pass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(cfg.AdminPassword)) == 1
	return userOK && passOK
}
