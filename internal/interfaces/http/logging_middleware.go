package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger-api/pkg/logger"
)

// LoggingMiddleware registra cada petición con método, ruta, status y latencia.
func LoggingMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
