package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"heektime/backend/pkg/jwt"
	"heektime/backend/pkg/response"
)

// TokenBlacklist 로그아웃된 토큰 조회 인터페이스 (Redis 구현)
type TokenBlacklist interface {
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// JWTAuth JWT 인증 미들웨어.
// Authorization: Bearer <token> 에서 Access Token 을 꺼내 검증하고
// 사용자 정보를 컨텍스트에 넣는다.
func JWTAuth(jwtMgr *jwt.Manager, blacklist TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "인증 헤더가 없습니다")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "인증 헤더 형식이 올바르지 않습니다")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "토큰이 유효하지 않거나 만료되었습니다")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "토큰 종류가 올바르지 않습니다")
			c.Abort()
			return
		}

		if blacklist != nil {
			blacklisted, err := blacklist.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				response.InternalError(c)
				c.Abort()
				return
			}
			if blacklisted {
				response.Unauthorized(c, 10002, "로그아웃된 토큰입니다")
				c.Abort()
				return
			}
		}

		// 사용자 정보를 컨텍스트에 주입한다
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("token_claims", claims)

		c.Next()
	}
}
