package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	rateLimitUserPrefix = "ratelimit:user:"
	rateLimitIPPrefix   = "ratelimit:ip:"
	rateLimitTTL        = 120 * time.Second
)

// RateLimitResult contains the result of a rate limit check.
type RateLimitResult struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// tokenBucketScript refills and consumes a token atomically.
var tokenBucketScript = redis.NewScript(`
	local key = KEYS[1]
	local rate = tonumber(ARGV[1])
	local burst = tonumber(ARGV[2])
	local now = tonumber(ARGV[3])
	local ttl = tonumber(ARGV[4])

	local data = redis.call('HMGET', key, 'tokens', 'last_update')
	local tokens = tonumber(data[1]) or burst
	local last_update = tonumber(data[2]) or now

	local elapsed = now - last_update
	tokens = math.min(burst, tokens + (elapsed * rate))

	local allowed = 0
	local retry_after = 0
	if tokens >= 1 then
		tokens = tokens - 1
		allowed = 1
	else
		retry_after = math.ceil((1 - tokens) / rate)
	end

	redis.call('HMSET', key, 'tokens', tokens, 'last_update', now)
	redis.call('EXPIRE', key, ttl)

	return {allowed, retry_after, math.floor(tokens)}
`)

// RateLimiter limits requests per caller with a token bucket of requestsPerMinute capacity.
type RateLimiter struct {
	cache             *Cache
	requestsPerMinute int
}

// NewRateLimiter returns a limiter. requestsPerMinute <= 0 disables limiting.
func NewRateLimiter(c *Cache, requestsPerMinute int) *RateLimiter {
	return &RateLimiter{cache: c, requestsPerMinute: requestsPerMinute}
}

// Allow consumes a token for the caller. userID is preferred; the IP is used (hashed) for
// anonymous requests. Redis errors fail open.
func (l *RateLimiter) Allow(ctx context.Context, userID, ip string) *RateLimitResult {
	if l.requestsPerMinute <= 0 {
		return &RateLimitResult{Allowed: true}
	}
	key := rateLimitKey(userID, ip)
	rate := float64(l.requestsPerMinute) / 60.0

	result, err := tokenBucketScript.Run(ctx, l.cache.client,
		[]string{key},
		rate, l.requestsPerMinute, time.Now().Unix(), int(rateLimitTTL.Seconds()),
	).Int64Slice()
	if err != nil || len(result) != 3 {
		return &RateLimitResult{Allowed: true, Remaining: int64(l.requestsPerMinute)}
	}

	return &RateLimitResult{
		Allowed:    result[0] == 1,
		RetryAfter: time.Duration(result[1]) * time.Second,
		Remaining:  result[2],
	}
}

func rateLimitKey(userID, ip string) string {
	if userID != "" {
		return rateLimitUserPrefix + userID
	}
	return rateLimitIPPrefix + hashIP(ip)
}

// hashIP creates a truncated SHA256 hash of an IP address.
func hashIP(ip string) string {
	hash := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(hash[:8])
}
