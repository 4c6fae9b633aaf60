package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"heektime/backend/config"
)

// Client 강의 카탈로그 오브젝트 스토리지(MinIO) 래퍼
type Client struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

// NewClient MinIO 클라이언트를 만든다
func NewClient(cfg *config.StorageConfig, logger *zap.Logger) (*Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("MinIO 클라이언트 생성 실패: %w", err)
	}

	logger.Info("오브젝트 스토리지 연결", zap.String("endpoint", cfg.Endpoint), zap.String("bucket", cfg.Bucket))

	return &Client{client: client, bucket: cfg.Bucket, logger: logger}, nil
}

// Download 오브젝트 전체를 읽어 돌려준다
func (c *Client) Download(ctx context.Context, objectPath string) ([]byte, error) {
	object, err := c.client.GetObject(ctx, c.bucket, objectPath, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("오브젝트 조회 실패: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("오브젝트 읽기 실패: %w", err)
	}
	return data, nil
}
