package app

import (
	"crypto/subtle"
	"net/http"

	"github.com/Antonellome/riso-server/internal/config"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, cfg config.Application) {

	// Reject requests without the configured API key. Skipped entirely when
	// no key is configured, which is the single-user local setup.
	if cfg.ApiKey != "" {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				provided := req.Header.Get("X-API-Key")
				if subtle.ConstantTimeCompare([]byte(provided), []byte(cfg.ApiKey)) != 1 {
					log.Debug("rejected request with missing or wrong API key")
					http.Error(w, "invalid API key", http.StatusUnauthorized)
					return
				}
				next.ServeHTTP(w, req)
			})
		})
	}
}
