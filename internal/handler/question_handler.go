package handler

import (
	"net/http"

	"github.com/askboard/backend/internal/apperr"
	"github.com/askboard/backend/internal/models"
	"github.com/askboard/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *service.QuestionService
}

func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
	}
}

type QuestionRequest struct {
	Content string `json:"content" binding:"required"`
}

// Create posts a new question.
// POST /question/create
func (h *QuestionHandler) Create(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Unexpected("Invalid request body"))
		return
	}

	uuid, err := h.questionService.Create(req.Content, c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     uuid,
		"status": "QUESTION CREATED",
	})
}

// GetAll lists every question.
// GET /question/all
func (h *QuestionHandler) GetAll(c *gin.Context) {
	questions, err := h.questionService.GetAll(c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, questionListResponse(questions))
}

// Edit updates a question's content. Owner only.
// PUT /question/edit/{questionId}
func (h *QuestionHandler) Edit(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Unexpected("Invalid request body"))
		return
	}

	uuid, err := h.questionService.EditContent(c.Param("questionId"), req.Content, c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     uuid,
		"status": "QUESTION EDITED",
	})
}

// Delete removes a question. Owner or admin.
// DELETE /question/delete/{questionId}
func (h *QuestionHandler) Delete(c *gin.Context) {
	uuid, err := h.questionService.Delete(c.Param("questionId"), c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     uuid,
		"status": "QUESTION DELETED",
	})
}

// GetAllByUser lists the questions of one user.
// GET /question/all/{userId}
func (h *QuestionHandler) GetAllByUser(c *gin.Context) {
	questions, err := h.questionService.GetAllByUser(c.Param("userId"), c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, questionListResponse(questions))
}

func questionListResponse(questions []models.Question) []gin.H {
	result := make([]gin.H, 0, len(questions))
	for _, q := range questions {
		result = append(result, gin.H{
			"id":      q.UUID,
			"content": q.Content,
		})
	}
	return result
}
