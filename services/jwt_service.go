package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/Marypvlva/house-board/config"
	"github.com/Marypvlva/house-board/models"
	"github.com/Marypvlva/house-board/utils"
)

// InterfaceJWTService 定义JWT服务接口
type InterfaceJWTService interface {
	GenerateToken(email string) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractSubject(tokenString string) (string, error)
	Login(email, password string) (*LoginResult, error)
	LoginForHouse(slug, email, password string) (*LoginResult, error)
}

// LoginResult 表示登录结果
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// JWTService 提供JWT相关服务
type JWTService struct {
	secretKey string
	issuer    string
	tokenTTL  time.Duration
	DB        *gorm.DB
}

// NewJWTService 创建一个新的JWT服务
func NewJWTService(cfg *config.Config, db *gorm.DB) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "house-board",
		tokenTTL:  time.Duration(cfg.TokenTTLHours) * time.Hour,
		DB:        db,
	}
}

// 1. GenerateToken 生成JWT令牌，subject为用户邮箱
func (s *JWTService) GenerateToken(email string) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// 2. ValidateToken 验证JWT令牌的签名和有效期
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// 3. ExtractSubject 从令牌中提取subject（用户邮箱）
func (s *JWTService) ExtractSubject(tokenString string) (string, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", errors.New("token has no subject")
	}

	return subject, nil
}

// 4. Login 通用登录：校验凭据并签发令牌，不检查小区
func (s *JWTService) Login(email, password string) (*LoginResult, error) {
	user, err := s.authenticate(email, password)
	if err != nil {
		return nil, err
	}

	return s.issueFor(user)
}

// 5. LoginForHouse 小区入口登录：凭据正确之外还要求账号属于该入口的小区
func (s *JWTService) LoginForHouse(slug, email, password string) (*LoginResult, error) {
	user, err := s.authenticate(email, password)
	if err != nil {
		return nil, err
	}

	// 防止租户入口混淆：账号的小区必须和入口slug一致
	var house models.House
	if err := s.DB.First(&house, user.HouseID).Error; err != nil || house.Slug != slug {
		return nil, ErrWrongHouseLogin
	}

	return s.issueFor(user)
}

// authenticate 按邮箱查找用户并比较bcrypt哈希
// 用户不存在和密码错误返回同一个错误，不泄露账号是否存在
func (s *JWTService) authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrBadCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrBadCredentials
	}

	return &user, nil
}

// issueFor 为用户签发访问令牌
func (s *JWTService) issueFor(user *models.User) (*LoginResult, error) {
	token, err := s.GenerateToken(user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}
