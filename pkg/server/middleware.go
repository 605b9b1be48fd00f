package server

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"
	log "github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

type loggerKey struct{}

// entryFrom returns the request-scoped logger, or the standard logger outside a request.
func entryFrom(ctx context.Context) *log.Entry {
	if entry, ok := ctx.Value(loggerKey{}).(*log.Entry); ok {
		return entry
	}
	return log.NewEntry(log.StandardLogger())
}

type statusRecorder struct {
	http.ResponseWriter
	status  int
	started bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.started {
		r.status = status
		r.started = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.started = true
	return r.ResponseWriter.Write(b)
}

func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, requestID)

		entry := log.WithFields(log.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
		})
		r = r.WithContext(context.WithValue(r.Context(), loggerKey{}, entry))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		entry.WithFields(log.Fields{
			"status":   rec.status,
			"duration": time.Since(start),
		}).Debug("Request served")
	})
}

// withRecovery turns a panic inside an algorithm run into a 500 so that one
// broken request does not take the connection down with it. Once the response
// has started the panic is only logged.
func withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			if p := recover(); p != nil {
				entryFrom(r.Context()).Errorf("Recovered from panic: %v\n%s", p, debug.Stack())
				if !rec.started {
					writeError(w, http.StatusInternalServerError, "execution failed")
				}
			}
		}()
		next.ServeHTTP(rec, r)
	})
}

func withCompression(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}
