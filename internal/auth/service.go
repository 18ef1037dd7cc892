package auth

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCredentials 表示登录信息不满足任何一条准入规则。
var ErrInvalidCredentials = errors.New("invalid credentials. Use a Gmail or GitHub account to register")

const accessTokenTTL = 24 * time.Hour

// Service 处理向导页的登录与开放注册。
// 注册用户只保存在内存中（持久化明确不在目标内），
// 重启后需要重新注册。
type Service struct {
	jwtSecret  []byte
	adminEmail string
	adminHash  string

	mu    sync.Mutex
	users map[string]string // email -> bcrypt hash
}

// TokenClaims 表示签发 Token 中的业务字段。
type TokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewService 构造 Service，管理员密码在此处完成哈希。
func NewService(jwtSecret, adminEmail, adminPassword string) (*Service, error) {
	if jwtSecret == "" {
		return nil, errors.New("jwt secret is required")
	}
	adminHash, err := HashPassword(adminPassword)
	if err != nil {
		return nil, err
	}
	return &Service{
		jwtSecret:  []byte(jwtSecret),
		adminEmail: adminEmail,
		adminHash:  adminHash,
		users:      make(map[string]string),
	}, nil
}

// Login 校验登录信息并签发访问令牌。
// 规则沿用向导页的约定：固定管理员账号直接登录；
// Gmail/GitHub 邮箱且密码不少于 6 位的首次登录视为注册。
func (s *Service) Login(email, password string) (token string, message string, err error) {
	if email == s.adminEmail && CheckPasswordHash(password, s.adminHash) {
		token, err = s.issueToken(email)
		return token, "Login successful", err
	}

	s.mu.Lock()
	hash, known := s.users[email]
	s.mu.Unlock()

	if known {
		if !CheckPasswordHash(password, hash) {
			return "", "", ErrInvalidCredentials
		}
		token, err = s.issueToken(email)
		return token, "Login successful", err
	}

	if !openRegistrationAllowed(email) || len(password) < 6 {
		return "", "", ErrInvalidCredentials
	}

	hash, err = HashPassword(password)
	if err != nil {
		return "", "", err
	}
	s.mu.Lock()
	s.users[email] = hash
	s.mu.Unlock()

	token, err = s.issueToken(email)
	return token, "New account registered & logged in!", err
}

// ValidateToken 解析并校验访问令牌。
func (s *Service) ValidateToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (s *Service) issueToken(email string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// openRegistrationAllowed 判断邮箱是否允许开放注册（Gmail 或 GitHub）。
func openRegistrationAllowed(email string) bool {
	return strings.Contains(email, "@gmail.com") ||
		strings.Contains(email, "github") ||
		strings.Contains(email, "@users.noreply.github.com")
}
