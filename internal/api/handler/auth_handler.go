package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"heektime/backend/internal/dto"
	"heektime/backend/internal/service"
	"heektime/backend/pkg/jwt"
	"heektime/backend/pkg/response"
)

// AuthHandler 인증 모듈 HTTP 처리기
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler AuthHandler 를 만든다
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register 회원가입
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			response.Conflict(c, 11002, "이미 사용 중인 아이디입니다")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, user)
}

// Login 로그인
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	tokens, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "아이디 또는 비밀번호가 올바르지 않습니다")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, tokens)
}

// Refresh 토큰 갱신
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	tokens, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenInvalid):
			response.Unauthorized(c, 11004, "Refresh Token 이 유효하지 않습니다")
		case errors.Is(err, service.ErrUserNotFound):
			response.Unauthorized(c, 11003, "사용자를 찾을 수 없습니다")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, tokens)
}

// Logout 로그아웃. 현재 Access Token 을 블랙리스트에 넣는다.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
