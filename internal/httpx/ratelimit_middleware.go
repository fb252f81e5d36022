package httpx

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware limits requests per client address. Every request to
// this service fans out to the ILS, so the limit protects the upstream too.
type RateLimitMiddleware struct {
	limiters       map[string]*clientLimiter
	mu             sync.Mutex
	rate           rate.Limit
	burst          int
	idleTTL        time.Duration
	trustedProxies map[string]bool
	stop           chan struct{}
	stopOnce       sync.Once
}

func NewRateLimitMiddleware(rps float64, burst int) *RateLimitMiddleware {
	rl := &RateLimitMiddleware{
		limiters:       make(map[string]*clientLimiter),
		rate:           rate.Limit(rps),
		burst:          burst,
		idleTTL:        5 * time.Minute,
		trustedProxies: make(map[string]bool),
		stop:           make(chan struct{}),
	}

	go rl.cleanupLimiters()
	return rl
}

// TrustProxies lists the proxy addresses whose X-Forwarded-For header is
// honored. Requests from any other peer are keyed by their remote address.
// Call it before the middleware serves requests.
func (rl *RateLimitMiddleware) TrustProxies(addrs ...string) *RateLimitMiddleware {
	for _, addr := range addrs {
		rl.trustedProxies[addr] = true
	}
	return rl
}

// Close stops the idle limiter sweep.
func (rl *RateLimitMiddleware) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimitMiddleware) cleanupLimiters() {
	ticker := time.NewTicker(rl.idleTTL)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for key, l := range rl.limiters {
				if time.Since(l.lastSeen) > rl.idleTTL {
					delete(rl.limiters, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func (rl *RateLimitMiddleware) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, exists := rl.limiters[key]
	if !exists {
		l = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = l
	}
	l.lastSeen = time.Now()
	return l.limiter
}

func (rl *RateLimitMiddleware) clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if !rl.trustedProxies[host] {
		return host
	}
	// The last hop not added by one of our proxies is the client.
	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop != "" && !rl.trustedProxies[hop] {
			return hop
		}
	}
	return host
}

func (rl *RateLimitMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.getLimiter(rl.clientKey(r)).Allow() {
			w.Header().Set("Retry-After", "1")
			JSONError(w, r, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Too many requests", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
