package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/d60-Lab/social-stream/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

const revokedKeyPrefix = "session:revoked:"

// TokenManager 签发/校验 JWT 会话令牌；注销走 redis 吊销名单，
// 吊销键 TTL 与令牌剩余有效期对齐，过期自动清理。
type TokenManager struct {
	secret []byte
	expire time.Duration
	rdb    *redis.Client
}

func NewTokenManager(secret string, expire time.Duration, rdb *redis.Client) *TokenManager {
	return &TokenManager{secret: []byte(secret), expire: expire, rdb: rdb}
}

// Issue 为用户签发带 jti 的 HS256 令牌
func (m *TokenManager) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		ID:        uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.expire)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Validate 校验签名与有效期，并确认未被吊销；返回用户ID
func (m *TokenManager) Validate(ctx context.Context, tokenStr string) (string, error) {
	claims, err := m.parse(tokenStr)
	if err != nil {
		return "", err
	}
	if m.rdb != nil && claims.ID != "" {
		n, err := m.rdb.Exists(ctx, revokedKeyPrefix+claims.ID).Result()
		if err != nil {
			return "", fmt.Errorf("check revocation: %w", err)
		}
		if n > 0 {
			return "", ErrInvalidToken
		}
	}
	return claims.Subject, nil
}

// Revoke 注销令牌（重复注销无副作用）
func (m *TokenManager) Revoke(ctx context.Context, tokenStr string) error {
	claims, err := m.parse(tokenStr)
	if err != nil {
		return err
	}
	if m.rdb == nil || claims.ID == "" {
		return nil
	}
	ttl := m.expire
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	return m.rdb.Set(ctx, revokedKeyPrefix+claims.ID, "1", ttl).Err()
}

func (m *TokenManager) parse(tokenStr string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
