package middleware

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/prajwal000/Egharbari-sub001/logger"
)

const loggerKey = "logger"

// RequestLogger attaches a per-request logger to the echo and request
// contexts and logs each request's start and finish.
func RequestLogger(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			reqLogger := base.With("request_id", requestID)
			httpLogger := reqLogger.With(
				"http_method", req.Method,
				"http_path", req.URL.Path,
				"remote_addr", c.RealIP(),
			)
			c.Set(loggerKey, reqLogger)
			c.SetRequest(req.WithContext(logger.WithContext(req.Context(), reqLogger)))

			start := time.Now()
			httpLogger.Debug("request started")

			err := next(c)
			if err != nil {
				// Render now so the logged status is the one sent.
				c.Error(err)
			}

			httpLogger.Info("request finished",
				"status_code", c.Response().Status,
				"bytes_written", c.Response().Size,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return nil
		}
	}
}

// LoggerFrom returns the request logger, or slog.Default outside a request.
func LoggerFrom(c echo.Context) *slog.Logger {
	if l, ok := c.Get(loggerKey).(*slog.Logger); ok && l != nil {
		return l
	}
	return logger.FromContext(c.Request().Context())
}
