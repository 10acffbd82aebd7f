package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/d60-Lab/social-stream/pkg/response"
)

const (
	// 超过该数量时触发一次闲置清理，限制每IP限流表的内存占用
	limiterSweepThreshold = 4096
	limiterIdleTTL        = 10 * time.Minute
)

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// ipLimiters 每客户端IP一个令牌桶；闲置条目在表增长到阈值时清理
type ipLimiters struct {
	mu             sync.Mutex
	entries        map[string]*limiterEntry
	rps            rate.Limit
	burst          int
	sweepThreshold int
	idleTTL        time.Duration
}

func newIPLimiters(rps rate.Limit, burst int) *ipLimiters {
	return &ipLimiters{
		entries:        make(map[string]*limiterEntry),
		rps:            rps,
		burst:          burst,
		sweepThreshold: limiterSweepThreshold,
		idleTTL:        limiterIdleTTL,
	}
}

func (l *ipLimiters) get(ip string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[ip]
	if !ok {
		if len(l.entries) >= l.sweepThreshold {
			l.sweep(now)
		}
		e = &limiterEntry{lim: rate.NewLimiter(l.rps, l.burst)}
		l.entries[ip] = e
	}
	e.lastSeen = now
	return e.lim
}

// sweep 删除闲置超过 idleTTL 的条目；调用方持锁
func (l *ipLimiters) sweep(now time.Time) {
	for ip, e := range l.entries {
		if now.Sub(e.lastSeen) > l.idleTTL {
			delete(l.entries, ip)
		}
	}
}

func (l *ipLimiters) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// RateLimit 按客户端IP限流（令牌桶）
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	limiters := newIPLimiters(rps, burst)
	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP(), time.Now()).Allow() {
			response.TooManyRequests(c, "rate limit exceeded")
			return
		}
		c.Next()
	}
}
