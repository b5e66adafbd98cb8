package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainLoad "load-analytics/internal/domain/load"
	"load-analytics/internal/logger"
	"load-analytics/internal/middleware"
	"load-analytics/internal/usecase/report"
	appErrors "load-analytics/pkg/errors"
	"load-analytics/pkg/utils"
)

func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, domainLoad.ErrLoadNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, report.ErrInvalidRange),
		errors.Is(err, domainLoad.ErrInvalidLeg),
		errors.Is(err, domainLoad.ErrInvalidEvent):
		utils.ErrorResponseWithCode(c, http.StatusBadRequest, appErrors.CodeValidation, err.Error())
	case errors.Is(err, domainLoad.ErrVerifiedTimeLocked):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, appErrors.ErrUnauthorized):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, appErrors.ErrInsufficientPermissions):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	default:
		if appErr, ok := appErrors.AsAppError(err); ok {
			message := appErr.Message
			if appErr.Code == appErrors.CodeValidation && appErr.Err != nil {
				message = message + ": " + utils.ValidationMessage(appErr.Err)
			}
			utils.ErrorResponseWithCode(c, http.StatusBadRequest, appErr.Code, message)
			return
		}

		requestID := middleware.GetRequestID(c)
		logger.Error("Internal server error",
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
