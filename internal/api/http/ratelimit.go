package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	apperrors "github.com/spec-kit/notes-service/pkg/util"
)

const staleClientAge = 10 * time.Minute

// LoginRateLimiter limits credential endpoints per client IP. A non-positive
// rate disables limiting.
func LoginRateLimiter(perMinute, burst int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	if burst <= 0 {
		burst = 1
	}

	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var mu sync.Mutex
	clients := make(map[string]*client)
	limit := rate.Every(time.Minute / time.Duration(perMinute))

	return func(c *fiber.Ctx) error {
		ip := c.IP()

		mu.Lock()
		cl, ok := clients[ip]
		if !ok {
			cl = &client{limiter: rate.NewLimiter(limit, burst)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()
		if len(clients) > 10000 {
			for addr, candidate := range clients {
				if time.Since(candidate.lastSeen) > staleClientAge {
					delete(clients, addr)
				}
			}
		}
		mu.Unlock()

		if !cl.limiter.Allow() {
			return apperrors.NewDomainError("RATE_LIMITED", "too many requests, slow down", http.StatusTooManyRequests)
		}
		return c.Next()
	}
}
