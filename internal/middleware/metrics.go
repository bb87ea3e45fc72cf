package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/premium-checkout/internal/observability"
)

func Metrics(metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		handleChainError(c, c.Next())

		metrics.RecordHTTPRequest(
			c.Method(),
			c.Route().Path,
			strconv.Itoa(c.Response().StatusCode()),
			time.Since(start).Seconds(),
		)
		return nil
	}
}
