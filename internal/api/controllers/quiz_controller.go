package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"snapquiz/internal/models/request_models"
	"snapquiz/internal/services"
	"snapquiz/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

func (qc *QuizController) ListQuizzes(c *gin.Context) {
	quizzes, err := qc.quizService.ListQuizzes(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, quizzes, "Fetched quizzes successfully")
}

func (qc *QuizController) CreateQuiz(c *gin.Context) {
	var req request_models.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	quiz, err := qc.quizService.CreateQuiz(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, quiz, "Quiz created successfully")
}

func (qc *QuizController) GetQuiz(c *gin.Context) {
	quiz, err := qc.quizService.GetQuiz(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, quiz, "Fetched quiz successfully")
}

// UpdateQuiz applies a partial metadata update; a questions array in the
// body replaces the quiz's question set wholesale.
func (qc *QuizController) UpdateQuiz(c *gin.Context) {
	var req request_models.UpdateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	quiz, err := qc.quizService.UpdateQuiz(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, quiz, "Quiz updated successfully")
}

func (qc *QuizController) DeleteQuiz(c *gin.Context) {
	if err := qc.quizService.DeleteQuiz(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Quiz deleted successfully")
}

// ExportQuiz streams the quiz as a pretty-printed JSON download.
func (qc *QuizController) ExportQuiz(c *gin.Context) {
	export, slug, err := qc.quizService.ExportQuiz(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", slug+"-export.json"))
	c.IndentedJSON(http.StatusOK, export)
}
