package testutil

import (
	"encoding/base64"
	"time"

	"github.com/askboard/backend/internal/models"
	"github.com/askboard/backend/internal/utils"
	"github.com/google/uuid"
)

// CreateTestUser builds a user with properly hashed credentials.
func CreateTestUser(username, email, password string, role models.Role) (*models.User, error) {
	salt, hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		UUID:         uuid.NewString(),
		FirstName:    "Test",
		LastName:     "User",
		UserName:     username,
		Email:        email,
		PasswordHash: hash,
		Salt:         salt,
		Role:         role,
	}, nil
}

// DefaultTestUser returns a default nonadmin user
func DefaultTestUser() (*models.User, error) {
	return CreateTestUser("testuser", "test@example.com", "Test123456", models.RoleNonAdmin)
}

// DefaultAdminUser returns a default admin user
func DefaultAdminUser() (*models.User, error) {
	return CreateTestUser("admin", "admin@example.com", "Admin123456", models.RoleAdmin)
}

// CreateTestQuestion builds a question owned by the given user.
func CreateTestQuestion(userID uint, content string) *models.Question {
	return &models.Question{
		UUID:    uuid.NewString(),
		Content: content,
		Date:    time.Now(),
		UserID:  userID,
	}
}

// CreateTestAnswer builds an answer to the given question.
func CreateTestAnswer(userID, questionID uint, content string) *models.Answer {
	return &models.Answer{
		UUID:       uuid.NewString(),
		Content:    content,
		Date:       time.Now(),
		UserID:     userID,
		QuestionID: questionID,
	}
}

// CreateTestSession builds an open session for the user with the given token.
func CreateTestSession(userID uint, accessToken string, ttl time.Duration) *models.Session {
	now := time.Now()
	return &models.Session{
		UUID:        uuid.NewString(),
		AccessToken: accessToken,
		UserID:      userID,
		LoginAt:     now,
		ExpiresAt:   now.Add(ttl),
	}
}

// BasicAuth encodes credentials the way the sign-in endpoint expects them.
func BasicAuth(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}
