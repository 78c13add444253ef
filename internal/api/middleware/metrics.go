package middleware

import (
	"net/http"
	"sync/atomic"
)

// Counters tallies request outcomes for the /metrics endpoint.
type Counters struct {
	Requests     atomic.Int64
	Errors       atomic.Int64
	SignInShown  atomic.Int64
	AccessDenied atomic.Int64
}

// Snapshot returns the current counter values keyed for JSON output.
func (c *Counters) Snapshot() map[string]int64 {
	return map[string]int64{
		"request_count":       c.Requests.Load(),
		"error_count":         c.Errors.Load(),
		"sign_in_shown_count": c.SignInShown.Load(),
		"access_denied_count": c.AccessDenied.Load(),
	}
}

// Metrics returns middleware that counts requests and their outcomes.
// Sign-in prompts (401) and denials (403) are tallied on top of the general
// 4xx/5xx error count.
func Metrics(c *Counters) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Requests.Add(1)

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			switch rw.statusCode {
			case http.StatusUnauthorized:
				c.SignInShown.Add(1)
			case http.StatusForbidden:
				c.AccessDenied.Add(1)
			}
			if rw.statusCode >= 400 {
				c.Errors.Add(1)
			}
		})
	}
}
