package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 애플리케이션 전역 설정
type Config struct {
	Server   ServerConfig  `mapstructure:"server"`
	Database DBConfig      `mapstructure:"db"`
	Redis    RedisConfig   `mapstructure:"redis"`
	Storage  StorageConfig `mapstructure:"storage"`
	Auth     AuthConfig    `mapstructure:"auth"`
	Catalog  CatalogConfig `mapstructure:"catalog"`
	Log      LogConfig     `mapstructure:"log"`
}

// ServerConfig HTTP 서버 설정
type ServerConfig struct {
	Port    int        `mapstructure:"port"`
	BaseURL string     `mapstructure:"base_url"`
	CORS    CORSConfig `mapstructure:"cors"`
}

// CORSConfig 교차 출처 설정
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DBConfig PostgreSQL 데이터베이스 설정
type DBConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Name         string `mapstructure:"name"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	SSLMode      string `mapstructure:"sslmode"`
	Timezone     string `mapstructure:"timezone"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// DSN PostgreSQL 연결 문자열 생성
func (c *DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig Redis 설정
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// StorageConfig 강의 카탈로그가 저장된 오브젝트 스토리지(MinIO) 설정
type StorageConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// AuthConfig JWT 인증 설정
type AuthConfig struct {
	JWTSecret       string        `mapstructure:"jwt_secret"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
}

// CatalogConfig 강의 카탈로그 캐시/갱신 설정
type CatalogConfig struct {
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	WarmupSchedule  string        `mapstructure:"warmup_schedule"` // cron 표현식, 빈 값이면 비활성
	DownloadTimeout time.Duration `mapstructure:"download_timeout"`
}

// LogConfig 로그 설정
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load 설정 파일과 환경 변수에서 설정을 읽는다.
// 우선순위: 환경 변수 > 설정 파일 > 기본값
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 기본값 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "heektime")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "Asia/Seoul")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("storage.endpoint", "localhost:9000")
	v.SetDefault("storage.bucket", "lectures")
	v.SetDefault("storage.use_ssl", false)

	v.SetDefault("auth.access_token_ttl", "15m")
	v.SetDefault("auth.refresh_token_ttl", "168h")

	v.SetDefault("catalog.cache_ttl", "30m")
	v.SetDefault("catalog.warmup_schedule", "")
	v.SetDefault("catalog.download_timeout", "30s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── 설정 파일 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 환경 변수 ──
	v.SetEnvPrefix("HEEKTIME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("설정 파일 읽기 실패: %w", err)
		}
		// 설정 파일이 없으면 기본값과 환경 변수만 사용
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("설정 파싱 실패: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 핵심 설정 항목 검증
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("설정 검증 실패: auth.jwt_secret 은 비어 있을 수 없습니다")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("설정 검증 실패: auth.jwt_secret 은 16자 이상이어야 합니다")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("설정 검증 실패: server.port 는 1-65535 범위여야 합니다")
	}
	return nil
}
