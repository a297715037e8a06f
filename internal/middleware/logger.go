package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"exolens/internal/infra/geoip"
)

type responseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

// Logger writes one access log line per request. When geo is non-nil the
// client's ISO country code is attached.
func Logger(l zerolog.Logger, geo geoip.CountryResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)

			level := zerolog.InfoLevel
			if rw.status >= http.StatusInternalServerError {
				level = zerolog.ErrorLevel
			} else if rw.status >= http.StatusBadRequest {
				level = zerolog.WarnLevel
			}
			evt := l.WithLevel(level).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.status).
				Int("bytes", rw.bytes).
				Dur("duration", time.Since(start))
			if rid := RequestIDFromContext(r.Context()); rid != "" {
				evt = evt.Str("request_id", rid)
			}
			if geo != nil {
				if cc, err := geo.CountryCode(clientIPForRateLimit(r)); err == nil && cc != "" {
					evt = evt.Str("country", cc)
				}
			}
			evt.Msg("http request")
		})
	}
}
