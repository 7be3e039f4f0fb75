package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"bindash/internal/logging"
)

// LoggerWithWriter logs each HTTP request as one JSON line to w.
// Fields: ts, level, request_id (set by RequestID), method, path (no query
// string), status, latency (milliseconds, float).
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	log := logging.New(w, loc)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// A returned error has not been written yet; the global ErrorHandler
		// will map it, so report the status it is going to send.
		status := c.Response().StatusCode()
		if err != nil {
			status = statusFromError(err)
		}

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		f := logging.Fields{
			"request_id": rid,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
		}
		if status >= fiber.StatusInternalServerError {
			f["level"] = "error"
		}
		log.Entry(f)
		return err
	}
}

func statusFromError(err error) int {
	if fiberErr, ok := err.(*fiber.Error); ok {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
