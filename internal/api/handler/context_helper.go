package handler

import (
	"github.com/gin-gonic/gin"

	"heektime/backend/pkg/jwt"
	"heektime/backend/pkg/response"
)

// MustGetUserID Gin 컨텍스트에서 user_id 를 안전하게 꺼낸다.
// JWT 미들웨어가 주입하지 않았으면 false 를 돌려주고 401 을 쓴다.
// 호출자는 ok=false 이면 바로 return 해야 한다.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	return s, true
}

// MustGetClaims Gin 컨텍스트에서 토큰 클레임을 안전하게 꺼낸다.
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("token_claims")
	if !exists {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok || claims == nil {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return nil, false
	}
	return claims, true
}
