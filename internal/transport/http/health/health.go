package health

import (
	"context"
	"net/http"
	"time"

	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck answers SERVING while the database answers a ping.
func HealthCheck(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Error(r.Context(), "health check: database", logger.ErrorF(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT_SERVING"))
			return
		}

		if _, err := w.Write([]byte("SERVING")); err != nil {
			logger.Error(r.Context(), "health check", logger.ErrorF(err))
		}
	}
}
