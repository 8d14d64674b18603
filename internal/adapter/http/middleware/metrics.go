package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kindredhq/ledgerd/internal/infrastructure/metrics"
)

// Metrics records request counts and latency per route.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &metricsRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			duration := time.Since(start).Seconds()
			path := normalizePath(r.URL.Path)

			m.HTTPRequests.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
			m.HTTPDuration.WithLabelValues(r.Method, path).Observe(duration)
		})
	}
}

type metricsRecorder struct {
	http.ResponseWriter

	statusCode int
}

func (r *metricsRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

// normalizePath collapses account IDs so the path label stays low cardinality.
func normalizePath(path string) string {
	const prefix = "/api/v1/accounts/"

	if len(path) > len(prefix) && path[:len(prefix)] == prefix && path[len(prefix)] != '/' {
		for i := len(prefix); i < len(path); i++ {
			if path[i] == '/' {
				return prefix + ":id" + path[i:]
			}
		}

		return prefix + ":id"
	}

	return path
}
