package middleware

import (
	"fmt"
	"time"

	"github.com/admitdesk/api/utils/cache"
	"github.com/admitdesk/api/utils/response"
	"github.com/gofiber/fiber/v2"
)

const (
	maxLoginAttempts = 5
	attemptWindow    = 15 * time.Minute
	lockoutDuration  = 15 * time.Minute
)

// BruteForceProtection handles brute force protection using Redis
type BruteForceProtection struct {
	redisCache *cache.RedisCache
}

// NewBruteForceProtection creates a new brute force protection instance
func NewBruteForceProtection(redisCache *cache.RedisCache) *BruteForceProtection {
	return &BruteForceProtection{
		redisCache: redisCache,
	}
}

// CheckAndRecordAttempt middleware checks if IP is locked out
func (b *BruteForceProtection) CheckAndRecordAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.IP()
		lockKey := fmt.Sprintf("brute_force:lock:%s", ip)

		// Check if IP is locked
		locked, err := b.redisCache.Exists(c.Context(), lockKey)
		if err != nil {
			// If Redis is down, allow the request.
			// Don't block legitimate users due to cache issues.
			return c.Next()
		}

		if locked {
			// Get TTL for retry time
			ttl, _ := b.redisCache.TTL(c.Context(), lockKey)
			retryAfter := int(ttl.Seconds())
			if retryAfter < 0 {
				retryAfter = 60 // Default to 60 seconds
			}

			c.Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			return response.TooManyRequests(c, fmt.Sprintf("Too many failed attempts. Try again in %d seconds", retryAfter))
		}

		return c.Next()
	}
}

// RecordFailedAttempt records a failed login attempt and locks the IP once
// the attempt budget is spent.
func (b *BruteForceProtection) RecordFailedAttempt(c *fiber.Ctx, ip string) {
	ctx := c.Context()
	attemptKey := fmt.Sprintf("brute_force:attempts:%s", ip)
	lockKey := fmt.Sprintf("brute_force:lock:%s", ip)

	attempts, err := b.redisCache.Increment(ctx, attemptKey)
	if err != nil {
		// If Redis is down, just return without blocking
		return
	}

	if attempts == 1 {
		_ = b.redisCache.Expire(ctx, attemptKey, attemptWindow)
	}

	if attempts >= maxLoginAttempts {
		_ = b.redisCache.Set(ctx, lockKey, "locked", lockoutDuration)
		_ = b.redisCache.Delete(ctx, attemptKey)
	}
}

// RecordSuccessfulAttempt clears the failure counter after a good login.
func (b *BruteForceProtection) RecordSuccessfulAttempt(c *fiber.Ctx, ip string) {
	attemptKey := fmt.Sprintf("brute_force:attempts:%s", ip)
	_ = b.redisCache.Delete(c.Context(), attemptKey)
}
