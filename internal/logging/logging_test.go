package logging

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetupLevel(t *testing.T) {
	Setup(true)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	Setup(false)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestRequestLogger(t *testing.T) {
	Setup(false)
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	defer Setup(false)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger)
	r.Get("/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := buf.String()
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Contains(t, out, "component=http")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/teapot")
	assert.Contains(t, out, "status=418")
	assert.Contains(t, out, "bytes=15")
	assert.Contains(t, out, "request_id=")
}
