package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"snapquiz/internal/models/request_models"
	"snapquiz/internal/services"
	"snapquiz/pkg/utils"
)

type PlayController struct {
	playService services.PlayServiceInterface
}

func NewPlayController(playService services.PlayServiceInterface) *PlayController {
	return &PlayController{
		playService: playService,
	}
}

func (pc *PlayController) GetQuiz(c *gin.Context) {
	quiz, err := pc.playService.GetQuizBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, quiz, "Fetched quiz successfully")
}

func (pc *PlayController) SubmitAnswers(c *gin.Context) {
	var req request_models.SubmitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := pc.playService.SubmitAnswers(c.Request.Context(), c.Param("slug"), req.Answers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Answers submitted successfully")
}
