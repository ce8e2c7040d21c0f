package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// probePaths are logged on their first success and on every failure only.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context. Query strings and headers are never
// logged since they may carry credentials.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu        sync.Mutex
		probeSeen = make(map[string]bool)
	)

	// quiet reports whether a probe result should be suppressed.
	quiet := func(path string, status int) bool {
		if _, ok := probePaths[path]; !ok {
			return false
		}
		mu.Lock()
		defer mu.Unlock()
		if status >= http.StatusBadRequest {
			probeSeen[path] = false
			return false
		}
		if probeSeen[path] {
			return true
		}
		probeSeen[path] = true
		return false
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status
			if quiet(path, status) {
				return err
			}

			level := slog.LevelInfo
			if status >= http.StatusBadRequest {
				level = slog.LevelWarn
			}
			log.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", c.Request().Method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.String("request_id", reqID),
			)

			return err
		}
	}
}
