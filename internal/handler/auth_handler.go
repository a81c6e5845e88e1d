package handler

import (
	"net/http"

	"github.com/askboard/backend/internal/apperr"
	"github.com/askboard/backend/internal/models"
	"github.com/askboard/backend/internal/service"
	"github.com/askboard/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type SignupRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	UserName      string `json:"userName" binding:"required"`
	EmailAddress  string `json:"emailAddress" binding:"required"`
	Password      string `json:"password"`
	Country       string `json:"country"`
	AboutMe       string `json:"aboutMe"`
	Dob           string `json:"dob"`
	ContactNumber string `json:"contactNumber"`
}

// SignUp registers a new user.
// POST /user/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Sign-up request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		respondError(c, apperr.Unexpected("Invalid request body"))
		return
	}

	draft := &models.User{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		UserName:      req.UserName,
		Email:         req.EmailAddress,
		Country:       req.Country,
		AboutMe:       req.AboutMe,
		Dob:           req.Dob,
		ContactNumber: req.ContactNumber,
	}

	user, err := h.authService.SignUp(draft, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     user.UUID,
		"status": "USER SUCCESSFULLY REGISTERED",
	})
}

// SignIn exchanges a Basic credential for a session. The token travels
// back in the access_token response header, not the body.
// POST /user/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	session, err := h.authService.SignIn(c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("access_token", session.AccessToken)
	c.JSON(http.StatusOK, gin.H{
		"id":      session.User.UUID,
		"message": "SIGNED IN SUCCESSFULLY",
	})
}

// SignOut closes the session behind the presented token.
// POST /user/signout
func (h *AuthHandler) SignOut(c *gin.Context) {
	userUUID, err := h.authService.SignOut(c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      userUUID,
		"message": "SIGNED OUT SUCCESSFULLY",
	})
}
