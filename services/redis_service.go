package services

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Marypvlva/house-board/config"
)

// 登录失败计数的阈值和窗口
const (
	loginFailureLimit  = 10
	loginFailureWindow = 15 * time.Minute
)

// InterfaceRedisService 定义登录防护所用的Redis服务接口
type InterfaceRedisService interface {
	TooManyLoginFailures(email string) bool
	RecordLoginFailure(email string)
	ResetLoginFailures(email string)
}

// RedisService 基于Redis记录登录失败次数
// Redis不可用时所有操作降级为放行，不影响正常登录
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService 创建一个新的Redis服务
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// 1. TooManyLoginFailures 判断该邮箱近期登录失败是否超限
func (s *RedisService) TooManyLoginFailures(email string) bool {
	count, err := s.Client.Get(s.Ctx, failureKey(email)).Int()
	if err != nil {
		// 键不存在或Redis不可用都放行
		return false
	}
	return count >= loginFailureLimit
}

// 2. RecordLoginFailure 记录一次登录失败
func (s *RedisService) RecordLoginFailure(email string) {
	key := failureKey(email)
	if err := s.Client.Incr(s.Ctx, key).Err(); err != nil {
		return
	}
	s.Client.Expire(s.Ctx, key, loginFailureWindow)
}

// 3. ResetLoginFailures 登录成功后清除失败计数
func (s *RedisService) ResetLoginFailures(email string) {
	s.Client.Del(s.Ctx, failureKey(email))
}

// failureKey 生成登录失败计数的键
func failureKey(email string) string {
	return "login_failures:" + email
}
