package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-pet-portal/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// traceIDFor picks the trace id of r. The portal client stamps every call
// with a request id, which is reused so both logs share one id.
func traceIDFor(r *http.Request) string {
	if id := r.Header.Get(traceIDHeader); id != "" {
		return id
	}
	if id := r.Header.Get(utils.RequestIDHeader); id != "" {
		return id
	}
	return uuid.NewString()
}

// withTraceID adds a trace_id field to the request logger and echoes the id
// in the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := traceIDFor(r)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
