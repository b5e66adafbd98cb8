package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"load-analytics/internal/usecase/report"
	"load-analytics/pkg/utils"
)

const defaultRange = "3months"

type ReportHandler struct {
	service *report.Service
}

func NewReportHandler(service *report.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("", h.GetReport)
		reports.GET("/punctuality", h.GetPunctuality)
		reports.GET("/variance", h.GetTimeVariance)
		reports.GET("/backloads", h.GetBackloads)
	}
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	result, err := h.service.Report(c.Request.Context(), rangeParam(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Report retrieved successfully", result)
}

func (h *ReportHandler) GetPunctuality(c *gin.Context) {
	result, err := h.service.Punctuality(c.Request.Context(), rangeParam(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Punctuality retrieved successfully", result)
}

func (h *ReportHandler) GetTimeVariance(c *gin.Context) {
	result, err := h.service.TimeVariance(c.Request.Context(), rangeParam(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Time variance retrieved successfully", result)
}

func (h *ReportHandler) GetBackloads(c *gin.Context) {
	result, err := h.service.Backloads(c.Request.Context(), rangeParam(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Backloads retrieved successfully", result)
}

// rangeParam reads ?range=, defaulting to three months
func rangeParam(c *gin.Context) string {
	return utils.SanitizeToken(c.DefaultQuery("range", defaultRange))
}
