package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMaxLen 외부에서 전달한 Request-ID 의 최대 길이. 로그 주입을 막는다.
const requestIDMaxLen = 64

// RequestID 요청 추적 ID 미들웨어.
// X-Request-ID 헤더를 읽고 없으면 UUID 를 생성해 컨텍스트와 응답 헤더에 넣는다.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
