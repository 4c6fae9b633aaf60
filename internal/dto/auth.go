package dto

// RegisterRequest 회원가입 요청
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest 로그인 요청
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest 토큰 갱신 요청
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UserResponse 사용자 응답
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// TokenResponse 토큰 발급 응답
type TokenResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int          `json:"expiresIn"`
	User         UserResponse `json:"user"`
}
