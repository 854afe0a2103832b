package middleware

import (
	"net/http"
	"sync"
	"time"
)

// RateLimiter is a fixed-window in-memory rate limiter keyed by client IP.
// Good enough for a single instance; a shared deployment would want this
// backed by something external.
type RateLimiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	requests int
	length   time.Duration
}

type window struct {
	resetAt time.Time
	count   int
}

// NewRateLimiter creates a rate limiter allowing requests per window length
func NewRateLimiter(requests int, length time.Duration) *RateLimiter {
	rl := &RateLimiter{
		windows:  make(map[string]*window),
		requests: requests,
		length:   length,
	}
	go rl.sweep()
	return rl
}

// Middleware returns the chi-compatible middleware function
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now().UTC()
	win, ok := rl.windows[client]
	if !ok || now.After(win.resetAt) {
		rl.windows[client] = &window{count: 1, resetAt: now.Add(rl.length)}
		return true
	}

	if win.count >= rl.requests {
		return false
	}
	win.count++
	return true
}

// sweep drops expired windows so idle clients don't accumulate
func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(rl.length)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now().UTC()
		for client, win := range rl.windows {
			if now.After(win.resetAt) {
				delete(rl.windows, client)
			}
		}
		rl.mu.Unlock()
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
