package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type stubGeo struct {
	codes map[string]string
}

func (s stubGeo) CountryCode(ip string) (string, error) {
	if cc, ok := s.codes[ip]; ok {
		return cc, nil
	}
	return "", errors.New("unknown ip")
}

func TestLoggerRecordsRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	geo := stubGeo{codes: map[string]string{"198.51.100.7": "BR"}}

	handler := RequestID(Logger(logger, geo)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/nasa/popular-systems", nil)
	req.RemoteAddr = "198.51.100.7:4000"
	req.Header.Set("X-Request-ID", "rid-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["status"] != float64(http.StatusTeapot) || entry["path"] != "/api/nasa/popular-systems" {
		t.Fatalf("unexpected entry %#v", entry)
	}
	if entry["level"] != "warn" {
		t.Fatalf("level = %v", entry["level"])
	}
	if entry["request_id"] != "rid-1" || entry["country"] != "BR" {
		t.Fatalf("missing request id or country: %#v", entry)
	}
	if entry["bytes"] != float64(len("short and stout")) {
		t.Fatalf("bytes = %v", entry["bytes"])
	}
}

func TestRequestIDFallsBackToChi(t *testing.T) {
	var got string
	handler := chimw.RequestID(RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = RequestIDFromContext(r.Context())
	})))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if got == "" {
		t.Fatalf("request id not set")
	}
	if rr.Header().Get("X-Request-ID") != got {
		t.Fatalf("response header %q != context %q", rr.Header().Get("X-Request-ID"), got)
	}
	if RequestIDFromContext(context.Background()) != "" {
		t.Fatalf("empty context should have no request id")
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    string
	}{
		{"listed origin", []string{"https://exolens.app"}, "https://exolens.app", "https://exolens.app"},
		{"unlisted origin", []string{"https://exolens.app"}, "https://evil.example", ""},
		{"wildcard", []string{"*"}, "https://any.example", "*"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", tc.origin)
			rr := httptest.NewRecorder()
			CORS(tc.allowed)(next).ServeHTTP(rr, req)
			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tc.want {
				t.Fatalf("Allow-Origin = %q, want %q", got, tc.want)
			}
		})
	}

	rr := httptest.NewRecorder()
	CORS(nil)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/api/planets/esi", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", rr.Code)
	}
}
