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

func TestRequestLogger_LevelsByStatus(t *testing.T) {
	cases := []struct {
		name   string
		status int
		level  string
	}{
		{"ok", http.StatusOK, "info"},
		{"client error", http.StatusNotFound, "warn"},
		{"server error", http.StatusInternalServerError, "error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := echo.New()
			e.Use(RequestLogger(zerolog.New(&buf)))
			e.GET("/x", func(c echo.Context) error {
				return c.NoContent(tc.status)
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x?num=3", nil))

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("expected one JSON entry, got %q", buf.String())
			}
			if entry["level"] != tc.level {
				t.Errorf("expected level %s, got %v", tc.level, entry["level"])
			}
			if entry["uri"] != "/x?num=3" {
				t.Errorf("unexpected uri %v", entry["uri"])
			}
			if int(entry["status"].(float64)) != tc.status {
				t.Errorf("unexpected status %v", entry["status"])
			}
		})
	}
}
