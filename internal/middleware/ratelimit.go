package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ulule/limiter/v3"
	stdlimiter "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

type RateLimitConfig struct {
	Window time.Duration
	Limit  int64
}

// RateLimit caps requests per client IP within a fixed window using an
// in-memory store. Rejections are answered with a JSON 429.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	rate := limiter.Rate{
		Period: cfg.Window,
		Limit:  cfg.Limit,
	}
	instance := limiter.New(memory.NewStore(), rate)

	message := fmt.Sprintf("Too many requests from this IP, please try again after %s", humanWindow(cfg.Window))
	mw := stdlimiter.NewMiddleware(instance,
		stdlimiter.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = fmt.Fprintf(w, "{\"error\":%q}\n", message)
		}),
	)

	return echo.WrapMiddleware(mw.Handler)
}

func humanWindow(d time.Duration) string {
	if d%time.Minute == 0 {
		m := int(d / time.Minute)
		if m == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", m)
	}
	return d.String()
}
