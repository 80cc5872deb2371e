package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pump_console/internal/logger"
	"pump_console/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zapcore"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name      string
		status    int
		wantLevel string
		wantLine  bool
	}{
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "error", wantLine: true},
		{name: "client error", status: http.StatusConflict, wantLevel: "warn", wantLine: true},
		// debug lines are below the info threshold
		{name: "success", status: http.StatusOK, wantLine: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.New("info", logger.EncodingJSON, zapcore.AddSync(&buf))
			h := NewHandler(&service.Service{}, log, nil)

			r := gin.New()
			r.Use(h.requestLogger)
			r.GET("/ping", func(c *gin.Context) { c.Status(tc.status) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

			out := buf.String()
			if !tc.wantLine {
				if out != "" {
					t.Fatalf("expected no log line, got %s", out)
				}
				return
			}
			for _, want := range []string{`"http_request"`, `"path":"/ping"`, `"level":"` + tc.wantLevel + `"`} {
				if !strings.Contains(out, want) {
					t.Fatalf("log line %s missing %s", out, want)
				}
			}
		})
	}
}

func TestRequestLogger_NilLogger(t *testing.T) {
	r := newTestRouter(&service.Service{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}
