package controllers

import (
	"barbero-service/internal/app/contracts"
	"barbero-service/internal/pkg/constvars"
	"barbero-service/internal/pkg/exceptions"
	"barbero-service/internal/pkg/utils"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
	}
}

func (ctrl *AvailabilityController) GetProviderAvailability(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AvailabilityController.GetProviderAvailability requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	providerID := chi.URLParam(r, "providerID")

	// The date query parameter is the requested day in unix milliseconds.
	rawDate := r.URL.Query().Get("date")
	millis, err := strconv.ParseInt(rawDate, 10, 64)
	if err != nil {
		ctrl.Log.Error("AvailabilityController.GetProviderAvailability invalid date parameter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, rawDate),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(err))
		return
	}
	date := time.UnixMilli(millis).In(time.Local)

	ctrl.Log.Info("AvailabilityController.GetProviderAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
		zap.Time(constvars.LoggingDateKey, date))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AvailabilityUsecase.GetProviderAvailability(ctx, providerID, date)
	if err != nil {
		ctrl.Log.Error("AvailabilityController.GetProviderAvailability AvailabilityUsecase.GetProviderAvailability error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AvailabilityController.GetProviderAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccess, response)
}
