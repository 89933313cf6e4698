package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware emits one structured line per completed dashboard request.
type LoggingMiddleware struct {
	logger *logrus.Logger
}

func NewLoggingMiddleware(logger *logrus.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{logger: logger}
}

// RequestLogging logs method, route, status, and latency once the handler
// chain settles. Probe endpoints are skipped so scrapes and liveness checks
// do not drown out the query traffic.
func (m *LoggingMiddleware) RequestLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "/health" || path == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			if m.logger != nil {
				fields := logrus.Fields{
					"method":     c.Request().Method,
					"path":       path,
					"status":     c.Response().Status,
					"latency_ms": time.Since(start).Milliseconds(),
					"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				}
				if q := c.QueryParam("q"); q != "" {
					fields["query"] = q
				}
				if err != nil {
					fields["error"] = err.Error()
				}
				m.logger.WithFields(fields).Info("request completed")
			}
			return err
		}
	}
}
