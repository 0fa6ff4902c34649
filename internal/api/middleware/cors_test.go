package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/api/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS_Wildcard(t *testing.T) {
	handler := middleware.CORS([]string{"*"})(okHandler())

	req := httptest.NewRequest("GET", "/api/medicines", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_ConfiguredOriginEchoed(t *testing.T) {
	handler := middleware.CORS([]string{"https://dashboard.example"})(okHandler())

	req := httptest.NewRequest("GET", "/api/stats", nil)
	req.Header.Set("Origin", "https://dashboard.example")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, "https://dashboard.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Values("Vary"), "Origin")
}

func TestCORS_UnknownOriginGetsNoHeader(t *testing.T) {
	handler := middleware.CORS([]string{"https://dashboard.example"})(okHandler())

	req := httptest.NewRequest("GET", "/api/stats", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	handler := middleware.CORS([]string{"*"})(next)

	req := httptest.NewRequest("OPTIONS", "/api/verify-bill", nil)
	req.Header.Set("Origin", "https://dashboard.example")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, called)
	assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}
