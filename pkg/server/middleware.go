package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/supporttools/homedash/pkg/logger"
	"github.com/supporttools/homedash/pkg/metrics"
)

// statusRecorder captures the response status code for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// route wraps a handler with request id, access logging, and metrics.
// The label is the route pattern, not the raw path, to keep metric
// cardinality bounded.
func (s *Server) route(label string, handler http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		handler(rec, r)
		elapsed := time.Since(start)

		metrics.RequestsTotal.WithLabelValues(label, strconv.Itoa(rec.status)).Inc()
		metrics.RequestDuration.WithLabelValues(label).Observe(elapsed.Seconds())

		logger.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"duration":   elapsed.String(),
			"request_id": requestID,
		}).Debug("Handled request")
	})
}
