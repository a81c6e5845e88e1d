package repository

import (
	"errors"
	"strings"

	"github.com/askboard/backend/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateUserName and ErrDuplicateEmail distinguish which unique
	// constraint a failed insert tripped, so the service can pick the
	// right client-visible code even when two sign-ups race.
	ErrDuplicateUserName = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")

	// ErrInvalidRole surfaces rows whose role column holds something other
	// than the two closed literals.
	ErrInvalidRole = errors.New("invalid role value in storage")
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{db: tx}
}

func (r *UserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

func (r *UserRepository) FindByUserName(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("user_name = ?", username).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if !user.Role.Valid() {
		return nil, ErrInvalidRole
	}

	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if !user.Role.Valid() {
		return nil, ErrInvalidRole
	}

	return &user, nil
}

func (r *UserRepository) FindByUUID(uuid string) (*models.User, error) {
	var user models.User
	err := r.db.Where("uuid = ?", uuid).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if !user.Role.Valid() {
		return nil, ErrInvalidRole
	}

	return &user, nil
}

// translateUniqueViolation maps driver-level unique constraint errors to
// the repository sentinels. Postgres reports "duplicate key value violates
// unique constraint ...", SQLite "UNIQUE constraint failed: ..."; both name
// the offending column or index.
func translateUniqueViolation(err error) error {
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "duplicate") && !strings.Contains(msg, "unique") {
		return err
	}
	if strings.Contains(msg, "email") {
		return ErrDuplicateEmail
	}
	return ErrDuplicateUserName
}
