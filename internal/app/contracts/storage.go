package contracts

import (
	"barbero-service/internal/app/models"
	"barbero-service/internal/pkg/dto/responses"
	"context"
	"io"
)

type ObjectStorageService interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (url string, err error)
}

type FileUsecase interface {
	UploadAvatar(ctx context.Context, sessionData string, fileName, contentType string, size int64, reader io.Reader) (*responses.File, error)
}

type FileRepository interface {
	CreateFile(ctx context.Context, file *models.File) (string, error)
	FindByID(ctx context.Context, fileID string) (*models.File, error)
}
