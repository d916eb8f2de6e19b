package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Marypvlva/house-board/internal/error/code"
	"github.com/Marypvlva/house-board/internal/error/response"
)

// TokenBucket 简单的令牌桶限流器
type TokenBucket struct {
	rate       float64   // 每秒填充的令牌数
	capacity   int       // 桶的容量
	tokens     float64   // 当前令牌数
	lastRefill time.Time // 上次填充时间
	mu         sync.Mutex
}

// NewTokenBucket 创建新的令牌桶限流器
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow 尝试获取令牌
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	// 填充令牌
	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	// 尝试获取令牌
	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}

	return false
}

// RateLimiterConfig 限流器配置
type RateLimiterConfig struct {
	Rate       float64       // 每秒允许的请求数
	Burst      int           // 允许的突发请求数
	ExpiryTime time.Duration // 限流器过期时间
}

// DefaultRateLimiterConfig 默认限流器配置，用于认证入口
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:       1,             // 每秒1个请求
	Burst:      5,             // 允许5个突发请求
	ExpiryTime: 1 * time.Hour, // 1小时后过期
}

// ipLimiterStore 按客户端IP维护的限流器集合
// 每个中间件实例持有自己的集合，不同路由实例互不影响
type ipLimiterStore struct {
	limiters map[string]*TokenBucket
	mu       sync.RWMutex
	cfg      RateLimiterConfig
}

func newIPLimiterStore(cfg RateLimiterConfig) *ipLimiterStore {
	return &ipLimiterStore{
		limiters: make(map[string]*TokenBucket),
		cfg:      cfg,
	}
}

// get 获取指定IP的限流器，不存在时创建
func (s *ipLimiterStore) get(ip string) *TokenBucket {
	s.mu.RLock()
	limiter, exists := s.limiters[ip]
	s.mu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(s.cfg.Rate, s.cfg.Burst)
		s.mu.Lock()
		s.limiters[ip] = limiter
		s.mu.Unlock()

		// 设置过期时间
		if s.cfg.ExpiryTime > 0 {
			go func() {
				time.Sleep(s.cfg.ExpiryTime)
				s.mu.Lock()
				delete(s.limiters, ip)
				s.mu.Unlock()
			}()
		}
	}

	return limiter
}

// RateLimiter 创建按客户端IP限流的中间件
func RateLimiter(config ...RateLimiterConfig) gin.HandlerFunc {
	// 使用默认配置或自定义配置
	cfg := DefaultRateLimiterConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	store := newIPLimiterStore(cfg)

	return func(c *gin.Context) {
		if !store.get(c.ClientIP()).Allow() {
			response.Fail(c, code.ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
