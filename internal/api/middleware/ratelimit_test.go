package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestIPLimitersReusePerIP(t *testing.T) {
	l := newIPLimiters(rate.Limit(1), 1)
	now := time.Now()

	lim := l.get("10.0.0.1", now)
	assert.Same(t, lim, l.get("10.0.0.1", now))
	assert.NotSame(t, lim, l.get("10.0.0.2", now))

	// burst=1：第一次放行，立刻第二次被限
	assert.True(t, lim.Allow())
	assert.False(t, lim.Allow())
}

func TestIPLimitersEvictIdleEntries(t *testing.T) {
	l := newIPLimiters(rate.Limit(1), 1)
	l.sweepThreshold = 2
	l.idleTTL = time.Minute

	base := time.Now()
	l.get("10.0.0.1", base)
	l.get("10.0.0.2", base)
	require.Equal(t, 2, l.len())

	// 阈值已到：新IP触发清理，闲置超过 TTL 的条目被移除
	l.get("10.0.0.3", base.Add(2*time.Minute))
	assert.Equal(t, 1, l.len())
}

func TestIPLimitersFreshEntriesSurviveSweep(t *testing.T) {
	l := newIPLimiters(rate.Limit(1), 1)
	l.sweepThreshold = 2
	l.idleTTL = time.Minute

	base := time.Now()
	l.get("10.0.0.1", base)
	l.get("10.0.0.2", base.Add(30*time.Second))

	l.get("10.0.0.3", base.Add(45*time.Second))
	assert.Equal(t, 3, l.len())
}
