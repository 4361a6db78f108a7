package controllers

import (
	"barbero-service/internal/app/config"
	"barbero-service/internal/app/contracts"
	"barbero-service/internal/pkg/constvars"
	"barbero-service/internal/pkg/exceptions"
	"barbero-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type FileController struct {
	Log            *zap.Logger
	FileUsecase    contracts.FileUsecase
	InternalConfig *config.InternalConfig
}

func NewFileController(logger *zap.Logger, fileUsecase contracts.FileUsecase, internalConfig *config.InternalConfig) *FileController {
	return &FileController{
		Log:            logger,
		FileUsecase:    fileUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *FileController) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("FileController.UploadAvatar requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		ctrl.Log.Error("FileController.UploadAvatar sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctrl.Log.Info("FileController.UploadAvatar called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	maxSize := ctrl.InternalConfig.App.AvatarMaxUploadSizeInMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)
	if err := r.ParseMultipartForm(maxSize); err != nil {
		ctrl.Log.Error("FileController.UploadAvatar Failed to parse multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		ctrl.Log.Error("FileController.UploadAvatar Failed to read form file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	contentType := header.Header.Get(constvars.HeaderContentType)
	response, err := ctrl.FileUsecase.UploadAvatar(ctx, sessionData, header.Filename, contentType, header.Size, file)
	if err != nil {
		ctrl.Log.Error("FileController.UploadAvatar FileUsecase.UploadAvatar error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("FileController.UploadAvatar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadFileSuccess, response)
}
