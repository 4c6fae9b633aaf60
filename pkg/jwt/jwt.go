package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"heektime/backend/config"
)

var (
	ErrTokenExpired = errors.New("토큰이 만료되었습니다")
	ErrTokenInvalid = errors.New("토큰이 유효하지 않습니다")
)

// Claims 커스텀 JWT 클레임
type Claims struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	TokenType string `json:"tokenType"` // "access" | "refresh"
	jwtv5.RegisteredClaims
}

// Manager JWT 관리자
type Manager struct {
	secret          []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewManager JWT 관리자를 만든다
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:          []byte(cfg.JWTSecret),
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
	}
}

// GenerateAccessToken Access Token 을 발급한다
func (m *Manager) GenerateAccessToken(userID, username string) (string, error) {
	return m.generate(userID, username, "access", m.accessTokenTTL)
}

// GenerateRefreshToken Refresh Token 을 발급한다
func (m *Manager) GenerateRefreshToken(userID, username string) (string, error) {
	return m.generate(userID, username, "refresh", m.refreshTokenTTL)
}

func (m *Manager) generate(userID, username, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(ttl)),
			Issuer:    "heektime",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken 토큰을 해석하고 검증한다
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
