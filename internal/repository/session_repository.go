package repository

import (
	"errors"

	"github.com/askboard/backend/internal/models"
	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *SessionRepository) WithTx(tx *gorm.DB) *SessionRepository {
	return &SessionRepository{db: tx}
}

func (r *SessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// FindByAccessToken resolves a token to its session, with the owning user
// loaded. Every authentication decision in the service layer starts here.
func (r *SessionRepository) FindByAccessToken(accessToken string) (*models.Session, error) {
	var session models.Session
	err := r.db.Preload("User").Where("access_token = ?", accessToken).First(&session).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

// Update persists changes to an existing session. Used once per session,
// when sign-out sets LogoutAt.
func (r *SessionRepository) Update(session *models.Session) error {
	return r.db.Save(session).Error
}
