package client

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter - ограничитель исходящих запросов. После ответа 429
// запросы отклоняются без обращения к сервису до истечения Retry-After.
type RateLimiter struct {
	limiter      *rate.Limiter
	mu           sync.Mutex
	blockedUntil time.Time
	now          func() time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Inf, 1),
		now:     time.Now,
	}
}

func (rl *RateLimiter) Wait(ctx context.Context) error {
	rl.mu.Lock()
	remaining := rl.blockedUntil.Sub(rl.now())
	rl.mu.Unlock()
	if remaining > 0 {
		return &RateLimitError{RetryAfter: remaining}
	}
	return rl.limiter.Wait(ctx)
}

func (rl *RateLimiter) Update(limit rate.Limit, burst int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.limiter.SetLimit(limit)
	rl.limiter.SetBurst(burst)
}

func (rl *RateLimiter) BlockFor(duration time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	until := rl.now().Add(duration)
	if until.After(rl.blockedUntil) {
		rl.blockedUntil = until
	}
}

func ParseRetryAfter(headers http.Header) time.Duration {
	retryAfter := headers.Get("Retry-After")
	if retryAfter == "" {
		return time.Minute // default
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(retryAfter); err == nil {
		return time.Until(t)
	}

	return time.Minute // fallback
}
