package handler

import (
	"net/http"

	"github.com/askboard/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile returns the public profile of a user.
// GET /userprofile/{userId}
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userService.GetProfile(c.Param("userId"), c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"firstName":     user.FirstName,
		"lastName":      user.LastName,
		"userName":      user.UserName,
		"emailAddress":  user.Email,
		"country":       user.Country,
		"aboutMe":       user.AboutMe,
		"dob":           user.Dob,
		"contactNumber": user.ContactNumber,
	})
}
