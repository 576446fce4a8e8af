// Package logging configures the process-wide logrus logger.
package logging

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Setup sets the standard logger's formatter, output and level. Output goes
// to stderr so stdout stays free for command output and the MCP transport.
func Setup(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// Component returns a logger tagged with the given component name.
func Component(name string) *logrus.Entry {
	return logrus.WithField("component", name)
}

// RequestLogger is a chi middleware that logs each request through logrus
// once the response has been written.
func RequestLogger(next http.Handler) http.Handler {
	log := Component("http")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			log.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"duration":   time.Since(start).String(),
				"request_id": middleware.GetReqID(r.Context()),
			}).Info("request")
		}()
		next.ServeHTTP(ww, r)
	})
}
