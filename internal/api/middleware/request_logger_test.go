package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name      string
		handler   echo.HandlerFunc
		wantCode  int
		wantLevel string
	}{
		{
			name:      "success logs info",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantCode:  http.StatusOK,
			wantLevel: "info",
		},
		{
			name: "client error logs warn",
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusNotFound, "No lead found")
			},
			wantCode:  http.StatusNotFound,
			wantLevel: "warn",
		},
		{
			name: "server error logs error",
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch leads.")
			},
			wantCode:  http.StatusInternalServerError,
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := zerolog.New(&buf)

			e := echo.New()
			e.Use(RequestLogger(log))
			e.GET("/leads", tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/leads", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("invalid log line %q: %v", buf.String(), err)
			}
			if entry["level"] != tt.wantLevel {
				t.Fatalf("expected level %s, got %v", tt.wantLevel, entry["level"])
			}
			if entry["status"] != float64(tt.wantCode) || entry["route"] != "/leads" {
				t.Fatalf("unexpected log entry: %+v", entry)
			}
		})
	}
}
