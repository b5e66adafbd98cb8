package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"load-analytics/internal/logger"
	"load-analytics/internal/usecase/load"
	appErrors "load-analytics/pkg/errors"
	"load-analytics/pkg/utils"
)

type LoadHandler struct {
	service *load.Service
}

func NewLoadHandler(service *load.Service) *LoadHandler {
	return &LoadHandler{service: service}
}

func (h *LoadHandler) RegisterRoutes(router *gin.RouterGroup) {
	loads := router.Group("/loads")
	{
		loads.GET("/:id", h.GetLoad)
	}
}

func (h *LoadHandler) RegisterDispatcherRoutes(router *gin.RouterGroup) {
	loads := router.Group("/loads")
	{
		// Dispatcher routes
		loads.PUT("/:id/actual-times", h.UpdateActualTimes)
	}
}

func (h *LoadHandler) GetLoad(c *gin.Context) {
	loadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithCode(c, http.StatusBadRequest, appErrors.CodeInvalidID, "Invalid load ID")
		return
	}

	result, err := h.service.GetLoad(c.Request.Context(), loadID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Load retrieved successfully", result)
}

func (h *LoadHandler) UpdateActualTimes(c *gin.Context) {
	loadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithCode(c, http.StatusBadRequest, appErrors.CodeInvalidID, "Invalid load ID")
		return
	}

	var req load.UpdateActualTimesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateActualTimes(c.Request.Context(), loadID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Get user ID from context (set by auth middleware)
	if userID, exists := c.Get("userID"); exists {
		logger.WithLoad(loadID).Info("Actual times changed by user",
			zap.Any("user_id", userID),
			zap.String("event", "actual_times_changed"),
		)
	}

	utils.SuccessResponse(c, http.StatusOK, "Actual times updated successfully", result)
}
