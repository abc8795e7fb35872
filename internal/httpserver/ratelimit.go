package httpserver

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// rateLimit bounds mutating requests per client IP. Limiters are kept
// per key and never expire; the keyspace is as small as the player
// base, so memory is a non-issue at this scale.
func rateLimit(rps, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		rps = 1
	}
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)
	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		if lim, ok := limiters[key]; ok {
			return lim
		}
		lim := rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), burst)
		limiters[key] = lim
		return lim
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.RemoteAddr
			if host, _, err := net.SplitHostPort(key); err == nil {
				key = host
			}
			if !limiterFor(key).Allow() {
				writeErro(w, http.StatusTooManyRequests, "Muitas requisições. Aguarde um instante.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
