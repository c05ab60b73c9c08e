package serverutils

import (
	"strconv"
	"time"

	"paie-detect-be/internal/pkg/logger"
	"paie-detect-be/internal/pkg/ratelimit"

	"github.com/gofiber/fiber/v2"
)

const isoMillis = "2006-01-02T15:04:05.000Z"

type RateLimitBody struct {
	RetryAfter int `json:"retryAfter"`
}

// RateLimitMiddleware admits at most max requests per client IP and window
// under the given bucket name. A failing limiter lets the request through.
func RateLimitMiddleware(limiter ratelimit.Limiter, bucket string, max int, window time.Duration, message string, log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		now := time.Now()
		res, err := limiter.Allow(ctx.UserContext(), bucket+":"+ctx.IP(), max, window)
		if err != nil {
			log.Warn("RATELIMIT", "Limiter unavailable, request allowed", map[string]interface{}{"bucket": bucket, "error": err.Error()})
			res = ratelimit.Open(max, now, window)
		}

		ctx.Set("X-RateLimit-Limit", strconv.Itoa(max))
		ctx.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		ctx.Set("X-RateLimit-Reset", res.ResetAt.UTC().Format(isoMillis))

		if !res.Allowed {
			retryAfter := res.RetryAfter(now)
			ctx.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))
			return ctx.Status(fiber.StatusTooManyRequests).JSON(BaseResponse[RateLimitBody]{
				Success: false,
				Code:    fiber.StatusTooManyRequests,
				Message: message,
				Data:    RateLimitBody{RetryAfter: retryAfter},
			})
		}

		return ctx.Next()
	}
}
