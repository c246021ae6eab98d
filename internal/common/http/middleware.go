// internal/common/http/middleware.go
package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"college-portal/internal/common/errors"
	"college-portal/internal/common/logger"
	"college-portal/internal/common/metrics"
)

// RequestRecorder receives one observation per request.
type RequestRecorder interface {
	RecordRequest(ctx context.Context, route string, status int, duration time.Duration)
}

// Metrics records request duration and in-flight count under the route
// template so ids do not explode label cardinality.
func Metrics(rec RequestRecorder) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			metrics.HTTPRequestsActive.Inc()
			defer metrics.HTTPRequestsActive.Dec()

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)
			route := RouteTemplate(r)
			metrics.HTTPRequestDuration.
				WithLabelValues(route, r.Method, strconv.Itoa(wrapped.statusCode)).
				Observe(duration.Seconds())
			if rec != nil {
				rec.RecordRequest(r.Context(), route, wrapped.statusCode, duration)
			}
		})
	}
}

// SpanStarter opens the span that wraps a request.
type SpanStarter interface {
	StartSpan(ctx context.Context, name string) (context.Context, trace.Span)
}

// TraceHeader carries the request's trace id back to the caller.
const TraceHeader = "X-Trace-Id"

// Tracing wraps each request in a server span named after the route
// template. Server errors mark the span failed.
func Tracing(st SpanStarter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if st == nil {
				next.ServeHTTP(w, r)
				return
			}
			route := RouteTemplate(r)
			ctx, span := st.StartSpan(r.Context(), r.Method+" "+route)
			defer span.End()

			if sc := span.SpanContext(); sc.IsValid() {
				w.Header().Set(TraceHeader, sc.TraceID().String())
			}
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r.WithContext(ctx))

			span.SetAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", route),
				attribute.Int("http.status_code", wrapped.statusCode),
			)
			if wrapped.statusCode >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(wrapped.statusCode))
			}
		})
	}
}

// Logging writes one debug line per request.
func Logging(log logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)
			fields := map[string]interface{}{
				"method":     r.Method,
				"route":      RouteTemplate(r),
				"path":       r.URL.Path,
				"status":     wrapped.statusCode,
				"durationMs": time.Since(start).Milliseconds(),
			}
			if sc := trace.SpanFromContext(r.Context()).SpanContext(); sc.IsValid() {
				fields["traceId"] = sc.TraceID().String()
			}
			log.Debug("request served", fields)
		})
	}
}

// Recover turns a handler panic into an INTERNAL_ERROR response.
func Recover(h *errors.ErrorHandler) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					h.HandleHTTPError(w, r, errors.NewInternalError(fmt.Errorf("panic: %v", p)))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RouteTemplate is the matched mux path template, or "unmatched".
func RouteTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

// responseWriter captures the status code written by a handler.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}
