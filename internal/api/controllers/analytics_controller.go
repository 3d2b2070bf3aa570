package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"snapquiz/internal/models/request_models"
	"snapquiz/internal/services"
	"snapquiz/pkg/utils"
)

type AnalyticsController struct {
	analyticsService services.AnalyticsServiceInterface
}

func NewAnalyticsController(analyticsService services.AnalyticsServiceInterface) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// RecordClick is public: respondents are anonymous.
func (ac *AnalyticsController) RecordClick(c *gin.Context) {
	var req request_models.RecordClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Quiz ID required")
		return
	}

	if err := ac.analyticsService.RecordClick(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Click recorded")
}

func (ac *AnalyticsController) GetReport(c *gin.Context) {
	report, err := ac.analyticsService.BuildReport(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Fetched analytics successfully")
}
