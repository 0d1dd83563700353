package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"featureboard/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiterConfig configures the write limiter.
type RateLimiterConfig struct {
	Limit     int    // Requests per second
	Burst     int    // Bucket capacity, defaults to Limit
	KeyPrefix string // Redis key prefix
}

func (c RateLimiterConfig) withDefaults() RateLimiterConfig {
	if c.Limit <= 0 {
		c.Limit = 5
	}
	if c.Burst <= 0 {
		c.Burst = c.Limit
	}
	if c.KeyPrefix == "" {
		c.KeyPrefix = "featureboard:ratelimit"
	}
	return c
}

// tokenBucketScript implements the Token Bucket algorithm.
// Input: ARGV[1]=rate, ARGV[2]=capacity, ARGV[3]=now, ARGV[4]=requested
// Output: { allowed, remaining, reset_after }
var tokenBucketScript = redis.NewScript(`
local tokens_key = KEYS[1]
local ts_key = KEYS[2]
local rate = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local requested = tonumber(ARGV[4])

local fill_time = capacity / rate
local ttl = math.ceil(fill_time * 2)

-- Load state
local last_tokens = tonumber(redis.call("get", tokens_key))
if last_tokens == nil then last_tokens = capacity end

local last_ts = tonumber(redis.call("get", ts_key))
if last_ts == nil then last_ts = now end

-- Refill
local delta = math.max(0, now - last_ts)
local filled_tokens = math.min(capacity, last_tokens + (delta * rate))
local allowed = 0
local remaining = filled_tokens
local reset_after = 0

if filled_tokens >= requested then
    allowed = 1
    filled_tokens = filled_tokens - requested
    remaining = filled_tokens
else
    allowed = 0
    remaining = filled_tokens
    reset_after = (requested - filled_tokens) / rate
end

if allowed == 1 then
    redis.call("set", tokens_key, filled_tokens, "EX", ttl)
    redis.call("set", ts_key, now, "EX", ttl)
end

return { allowed, remaining, reset_after }
`)

// Fallback in-memory limiter
type localLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

var (
	localLimiters = &sync.Map{}
	cleanupTicker *time.Ticker
	initOnce      sync.Once
)

func initCleanup() {
	initOnce.Do(func() {
		cleanupTicker = time.NewTicker(10 * time.Minute)
		go func() {
			for range cleanupTicker.C {
				now := time.Now()
				localLimiters.Range(func(key, value any) bool {
					l := value.(*localLimiter)
					if now.Sub(time.Unix(0, l.lastSeen.Load())) > 10*time.Minute {
						localLimiters.Delete(key)
					}
					return true
				})
			}
		}()
	})
}

// getLocalLimiter returns the bucket for key. Keys carry the limiter's
// prefix so differently configured limiters never share a bucket.
func getLocalLimiter(key string, r rate.Limit, b int) *rate.Limiter {
	initCleanup() // Ensure cleanup is running

	if val, ok := localLimiters.Load(key); ok {
		l := val.(*localLimiter)
		l.lastSeen.Store(time.Now().UnixNano())
		return l.limiter
	}

	l := &localLimiter{limiter: rate.NewLimiter(r, b)}
	l.lastSeen.Store(time.Now().UnixNano())
	actual, _ := localLimiters.LoadOrStore(key, l)
	return actual.(*localLimiter).limiter
}

// RateLimitMiddleware enforces a per-client token bucket in Redis and falls
// back to an in-memory limiter when Redis is unreachable.
func RateLimitMiddleware(rdb *redis.Client, cfg RateLimiterConfig) gin.HandlerFunc {
	cfg = cfg.withDefaults()
	limit := strconv.Itoa(cfg.Limit)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		keyPrefix := cfg.KeyPrefix + ":" + clientIP
		keys := []string{keyPrefix + ":tokens", keyPrefix + ":ts"}

		now := float64(time.Now().UnixMicro()) / 1e6
		args := []any{
			float64(cfg.Limit), // rate
			float64(cfg.Burst), // capacity
			now,
			1, // requested tokens
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 100*time.Millisecond)
		defer cancel()

		result, err := tokenBucketScript.Run(ctx, rdb, keys, args...).Result()
		if err != nil {
			logger.Warn("Redis rate limit failed, switching to local fallback",
				zap.Error(err),
				zap.String("ip", clientIP))

			limiter := getLocalLimiter(keyPrefix, rate.Limit(cfg.Limit), cfg.Burst)
			c.Header("X-RateLimit-Limit", limit)

			if !limiter.Allow() {
				c.Header("X-RateLimit-Remaining", "0")
				c.Header("X-RateLimit-Reset", "1")
				reject(c)
				return
			}

			c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))
			c.Next()
			return
		}

		resSlice, ok := result.([]any)
		if !ok || len(resSlice) != 3 {
			logger.Error("Invalid Redis rate limit response", zap.Any("response", result))
			c.Next()
			return
		}

		allowed := helperInt(resSlice[0]) == 1
		remaining := helperFloat(resSlice[1])
		resetAfter := helperFloat(resSlice[2])

		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(remaining)))
		resetTime := time.Now().Add(time.Duration(resetAfter * float64(time.Second)))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			reject(c)
			return
		}

		c.Next()
	}
}

// reject answers 429 in the format the client asked for; console form posts
// get plain text.
func reject(c *gin.Context) {
	switch c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) {
	case gin.MIMEHTML:
		c.String(http.StatusTooManyRequests, "Too many requests, please try again shortly.")
		c.Abort()
	default:
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too Many Requests"})
	}
}

func helperInt(v any) int64 {
	if val, ok := v.(int64); ok {
		return val
	}
	if val, ok := v.(float64); ok {
		return int64(val)
	}
	return 0
}

func helperFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int64:
		return float64(val)
	default:
		return 0
	}
}
