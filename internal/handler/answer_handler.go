package handler

import (
	"net/http"

	"github.com/askboard/backend/internal/apperr"
	"github.com/askboard/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	answerService *service.AnswerService
}

func NewAnswerHandler(answerService *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{
		answerService: answerService,
	}
}

// Answer content is capped at the column width so oversize payloads are
// refused at the boundary instead of surfacing as a driver error.
type AnswerRequest struct {
	Answer string `json:"answer" binding:"required,max=255"`
}

type AnswerEditRequest struct {
	Content string `json:"content" binding:"required,max=255"`
}

// Create posts an answer to a question.
// POST /question/{questionId}/answer/create
func (h *AnswerHandler) Create(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Unexpected("Invalid request body"))
		return
	}

	uuid, err := h.answerService.Create(req.Answer, c.Param("questionId"), c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     uuid,
		"status": "ANSWER CREATED",
	})
}

// Edit updates an answer's content. Owner only.
// PUT /answer/edit/{answerId}
func (h *AnswerHandler) Edit(c *gin.Context) {
	var req AnswerEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Unexpected("Invalid request body"))
		return
	}

	uuid, err := h.answerService.EditContent(c.Param("answerId"), req.Content, c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     uuid,
		"status": "ANSWER EDITED",
	})
}

// Delete removes an answer. Owner or admin.
// DELETE /answer/delete/{answerId}
func (h *AnswerHandler) Delete(c *gin.Context) {
	uuid, err := h.answerService.Delete(c.Param("answerId"), c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     uuid,
		"status": "ANSWER DELETED",
	})
}

// ListForQuestion lists all answers to a question. Each row pairs the
// answer with the question content it addresses.
// GET /answer/all/{questionId}
func (h *AnswerHandler) ListForQuestion(c *gin.Context) {
	answers, err := h.answerService.ListForQuestion(c.Param("questionId"), c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, err)
		return
	}

	result := make([]gin.H, 0, len(answers))
	for _, a := range answers {
		result = append(result, gin.H{
			"id":              a.UUID,
			"questionContent": a.Question.Content,
			"answerContent":   a.Content,
		})
	}

	c.JSON(http.StatusOK, result)
}
