package main

import (
	"log"
	"os"

	"github.com/askboard/backend/internal/config"
	"github.com/askboard/backend/internal/database"
	"github.com/askboard/backend/internal/models"
	"github.com/askboard/backend/internal/utils"
	"github.com/google/uuid"
)

// Sign-up always forces the nonadmin role, so admin accounts are created
// here, out of band.
func main() {
	cfg := config.Load()
	database.Connect(cfg)
	database.Migrate()

	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminUsername == "" || adminEmail == "" || adminPassword == "" {
		log.Fatal("Missing environment variables: ADMIN_USERNAME, ADMIN_EMAIL, ADMIN_PASSWORD")
	}

	// Check if admin with this email already exists
	var admin models.User
	result := database.DB.Where("email = ?", adminEmail).First(&admin)

	if result.Error == nil {
		log.Println("Admin user already exists:", admin.UserName)
		return
	}

	salt, hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin = models.User{
		UUID:         uuid.NewString(),
		UserName:     adminUsername,
		Email:        adminEmail,
		PasswordHash: hash,
		Salt:         salt,
		Role:         models.RoleAdmin,
	}

	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Println("Admin user created successfully:", admin.UserName)
}
