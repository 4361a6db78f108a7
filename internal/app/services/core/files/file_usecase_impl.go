package files

import (
	"barbero-service/internal/app/config"
	"barbero-service/internal/app/contracts"
	"barbero-service/internal/app/models"
	"barbero-service/internal/pkg/constvars"
	"barbero-service/internal/pkg/dto/responses"
	"barbero-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fileUsecase struct {
	FileRepository       contracts.FileRepository
	UserRepository       contracts.UserRepository
	ObjectStorageService contracts.ObjectStorageService
	SessionService       contracts.SessionService
	InternalConfig       *config.InternalConfig
	Logger               *zap.Logger
}

var (
	fileUsecaseInstance contracts.FileUsecase
	onceFileUsecase     sync.Once
)

func NewFileUsecase(
	fileRepository contracts.FileRepository,
	userRepository contracts.UserRepository,
	objectStorageService contracts.ObjectStorageService,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.FileUsecase {
	onceFileUsecase.Do(func() {
		fileUsecaseInstance = &fileUsecase{
			FileRepository:       fileRepository,
			UserRepository:       userRepository,
			ObjectStorageService: objectStorageService,
			SessionService:       sessionService,
			InternalConfig:       internalConfig,
			Logger:               logger,
		}
	})
	return fileUsecaseInstance
}

var allowedAvatarContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

func (uc *fileUsecase) UploadAvatar(ctx context.Context, sessionData string, fileName, contentType string, size int64, reader io.Reader) (*responses.File, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Logger.Info("FileUsecase.UploadAvatar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("file_name", fileName),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	if !allowedAvatarContentTypes[contentType] {
		return nil, exceptions.ErrImageValidation(nil)
	}
	maxSize := uc.InternalConfig.App.AvatarMaxUploadSizeInMB * 1024 * 1024
	if size <= 0 || size > maxSize {
		return nil, exceptions.ErrImageValidation(nil)
	}

	objectName := fmt.Sprintf("avatars/%s%s", uuid.NewString(), strings.ToLower(filepath.Ext(fileName)))
	url, err := uc.ObjectStorageService.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	file := &models.File{
		Name:      fileName,
		Path:      objectName,
		URL:       url,
		OwnerID:   session.UserID,
		CreatedAt: time.Now(),
	}
	fileID, err := uc.FileRepository.CreateFile(ctx, file)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	user.AvatarFileID = fileID
	user.UpdatedAt = time.Now()
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.Logger.Info("FileUsecase.UploadAvatar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String("file_id", fileID),
	)
	return &responses.File{
		ID:   fileID,
		Name: file.Name,
		Path: file.Path,
		URL:  file.URL,
	}, nil
}
