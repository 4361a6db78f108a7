package storage

import (
	"barbero-service/internal/app/config"
	"barbero-service/internal/app/contracts"
	"barbero-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

type minioStorageService struct {
	Client       *minio.Client
	DriverConfig *config.DriverConfig
}

func NewMinioStorageService(client *minio.Client, driverConfig *config.DriverConfig) contracts.ObjectStorageService {
	return &minioStorageService{
		Client:       client,
		DriverConfig: driverConfig,
	}
}

func (s *minioStorageService) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	bucketName := s.DriverConfig.Minio.BucketName
	_, err := s.Client.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}
	return fmt.Sprintf("%s/%s/%s", s.DriverConfig.Minio.PublicURL, bucketName, objectName), nil
}
