package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"heektime/backend/config"
	"heektime/backend/internal/dto"
	"heektime/backend/internal/model"
	"heektime/backend/internal/repository"
	"heektime/backend/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("아이디 또는 비밀번호가 올바르지 않습니다")
	ErrUsernameTaken      = errors.New("이미 사용 중인 아이디입니다")
	ErrUserNotFound       = errors.New("사용자를 찾을 수 없습니다")
)

// TokenBlacklist 로그아웃된 토큰 저장소 (Redis 구현)
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// AuthService 인증 업무 인터페이스
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
}

type authService struct {
	cfg       *config.Config
	repo      *repository.Repository
	jwtMgr    *jwt.Manager
	blacklist TokenBlacklist
	logger    *zap.Logger
}

// NewAuthService AuthService 인스턴스를 만든다
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:       cfg,
		repo:      repo,
		jwtMgr:    jwtMgr,
		blacklist: blacklist,
		logger:    logger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	// 아이디 중복 확인
	if _, err := s.repo.User.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("사용자 조회 실패", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("비밀번호 해시 실패", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("사용자 생성 실패", zap.Error(err))
		return nil, err
	}

	return &dto.UserResponse{ID: user.UserID, Username: user.Username}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("사용자 조회 실패", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != "refresh" {
		return nil, jwt.ErrTokenInvalid
	}

	blacklisted, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		s.logger.Error("블랙리스트 조회 실패", zap.Error(err))
		return nil, err
	}
	if blacklisted {
		return nil, jwt.ErrTokenInvalid
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// 사용한 refresh token 은 재사용하지 못하게 블랙리스트에 넣는다
	if err := s.blacklist.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		s.logger.Error("토큰 블랙리스트 등록 실패", zap.Error(err))
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	return s.blacklist.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

func (s *authService) issueTokens(user *model.User) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Username)
	if err != nil {
		s.logger.Error("AccessToken 발급 실패", zap.Error(err))
		return nil, err
	}

	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Username)
	if err != nil {
		s.logger.Error("RefreshToken 발급 실패", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User: dto.UserResponse{
			ID:       user.UserID,
			Username: user.Username,
		},
	}, nil
}
