package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/sales-dashboard/pkg/logger"
)

// RequestLogger registra cada petición: método, ruta, status, latencia y usuario si hay token.
// 4xx se loguea como warn y 5xx como error.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		ev = ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start))
		if u := GetUsername(c); u != "" {
			ev = ev.Str("username", u)
		}
		if handlerErr, ok := c.Locals(LocalError).(error); ok {
			ev = ev.AnErr("cause", handlerErr)
		}
		if err != nil {
			ev = ev.Err(err)
		}
		ev.Msg("http request")
		return err
	}
}
