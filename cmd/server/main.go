package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"heektime/backend/config"
	"heektime/backend/internal/api/handler"
	"heektime/backend/internal/api/router"
	"heektime/backend/internal/repository"
	"heektime/backend/internal/service"
	"heektime/backend/pkg/database"
	"heektime/backend/pkg/jwt"
	applogger "heektime/backend/pkg/logger"
	"heektime/backend/pkg/redis"
	"heektime/backend/pkg/storage"
)

func main() {
	// 1. 설정 로드
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로거 초기화
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "로거 초기화 실패: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("애플리케이션 시작",
		zap.Int("port", cfg.Server.Port),
		zap.String("logLevel", cfg.Log.Level),
	)

	// 3. 데이터베이스 연결
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("데이터베이스 연결 실패", zap.Error(err))
	}
	logger.Info("데이터베이스 연결 완료")

	// 3.1 마이그레이션 실행
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("sql.DB 획득 실패", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("데이터베이스 마이그레이션 실패", zap.Error(err))
	}

	// 4. Redis 연결 (토큰 블랙리스트 저장소)
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Fatal("Redis 연결 실패", zap.Error(err))
	}

	// 5. 객체 저장소 연결 (강의 카탈로그)
	store, err := storage.NewClient(&cfg.Storage, logger)
	if err != nil {
		logger.Fatal("객체 저장소 연결 실패", zap.Error(err))
	}

	// 6. JWT 관리자 초기화
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 7. 의존성 주입: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, store, logger)
	h := handler.NewHandler(svc)

	// 7.1 카탈로그 워밍업 스케줄 시작
	if err := svc.Catalog.StartWarmup(cfg.Catalog.WarmupSchedule); err != nil {
		logger.Fatal("카탈로그 워밍업 스케줄 등록 실패", zap.Error(err))
	}

	// 8. 라우터 초기화
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 9. HTTP 서버 시작 (우아한 종료 지원)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 서버 시작", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 서버 오류", zap.Error(err))
		}
	}()

	// 10. 종료 신호를 기다렸다가 우아하게 닫는다
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("종료 신호 수신, 우아한 종료 시작", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("서버 종료 오류", zap.Error(err))
	}

	// 카탈로그 워밍업/세션 종료
	svc.Catalog.Close()

	// 데이터베이스 연결 종료
	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}

	// Redis 연결 종료
	rdb.Close()

	logger.Info("서버가 종료되었습니다")
}
