package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

// RateLimitConfig defines rules for different endpoints.
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
	Scope       string // "ip" or "user"
}

var rateLimitRules = map[string]RateLimitConfig{
	// Registration and login are the brute-force targets.
	"auth_register": {
		MaxRequests: 3,
		Window:      time.Hour,
		Scope:       "ip",
	},
	"auth_login": {
		MaxRequests: 10,
		Window:      15 * time.Minute,
		Scope:       "ip",
	},

	"enroll": {
		MaxRequests: 10,
		Window:      time.Minute,
		Scope:       "user",
	},
	"review": {
		MaxRequests: 5,
		Window:      10 * time.Minute,
		Scope:       "user",
	},

	// Per-client safeguard across all endpoints.
	"global_ip": {
		MaxRequests: 600,
		Window:      time.Minute,
		Scope:       "ip",
	},
}

func InitRateLimiter(redisClient *redis.Client) {
	rdb = redisClient
}

func getRateLimitRule(path, method string) RateLimitConfig {
	defaultRule := RateLimitConfig{
		MaxRequests: 60,
		Window:      time.Minute,
		Scope:       "ip",
	}

	switch {
	case strings.HasSuffix(path, "/users/register"):
		return rateLimitRules["auth_register"]
	case strings.HasSuffix(path, "/users/login"):
		return rateLimitRules["auth_login"]
	case strings.HasSuffix(path, "/enrollments") && method == http.MethodPost:
		return rateLimitRules["enroll"]
	case strings.HasSuffix(path, "/review"):
		return rateLimitRules["review"]
	default:
		return defaultRule
	}
}

func getIdentifier(c *gin.Context, scope string) string {
	if scope == "user" {
		if userUUID, exists := c.Get("userUUID"); exists {
			return fmt.Sprintf("user:%v", userUUID)
		}
	}
	return fmt.Sprintf("ip:%s", c.ClientIP())
}

// slidingWindowRateLimit keeps a sorted set of request timestamps per key
// and trims it atomically inside the script.
func slidingWindowRateLimit(ctx context.Context, key string, config RateLimitConfig) (bool, int, error) {
	now := time.Now().Unix()
	windowStart := now - int64(config.Window.Seconds())

	redisKey := fmt.Sprintf("rate:sw:%s", key)

	luaScript := `
	local key = KEYS[1]
	local now = tonumber(ARGV[1])
	local window_start = tonumber(ARGV[2])
	local max_requests = tonumber(ARGV[3])
	local window_seconds = tonumber(ARGV[4])

	redis.call('ZREMRANGEBYSCORE', key, 0, window_start)

	local current = redis.call('ZCARD', key)

	if current >= max_requests then
		return {0, 0}
	end

	redis.call('ZADD', key, now, now)
	redis.call('EXPIRE', key, window_seconds + 60)

	local remaining = max_requests - current - 1
	if remaining < 0 then remaining = 0 end

	return {1, remaining}
	`

	result, err := rdb.Eval(ctx, luaScript, []string{redisKey},
		now, windowStart, config.MaxRequests, int(config.Window.Seconds())).Result()

	if err != nil {
		return false, 0, err
	}

	results := result.([]interface{})
	allowed := results[0].(int64) == 1
	remaining := int(results[1].(int64))

	return allowed, remaining, nil
}

// RateLimiter fails open: a Redis error never blocks the request.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/ping" || c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		ctx := c.Request.Context()

		globalKey := fmt.Sprintf("global:ip:%s", c.ClientIP())
		globalAllowed, _, err := slidingWindowRateLimit(ctx, globalKey, rateLimitRules["global_ip"])
		if err == nil && !globalAllowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Global rate limit exceeded",
			})
			c.Abort()
			return
		}

		rule := getRateLimitRule(c.Request.URL.Path, c.Request.Method)
		identifier := getIdentifier(c, rule.Scope)
		fullKey := fmt.Sprintf("%s:%s:%s:%s", rule.Scope, c.Request.Method, c.Request.URL.Path, identifier)

		allowed, remaining, err := slidingWindowRateLimit(ctx, fullKey, rule)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rule.MaxRequests))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(rule.Window).Unix()))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success":     false,
				"message":     fmt.Sprintf("Too many requests, please try again in %v", rule.Window.String()),
				"retry_after": int(rule.Window.Seconds()),
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rule.MaxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(rule.Window).Unix()))

		c.Next()
	}
}
