package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations 미적용 마이그레이션을 모두 적용한다
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("마이그레이션 파일 로드 실패: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("마이그레이션 드라이버 생성 실패: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("마이그레이션 인스턴스 초기화 실패: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("마이그레이션 실행 실패: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("마이그레이션이 dirty 상태입니다", zap.Uint("version", version))
	} else {
		logger.Info("마이그레이션 완료", zap.Uint("version", version))
	}

	return nil
}
