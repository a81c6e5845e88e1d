package repository

import (
	"errors"

	"github.com/askboard/backend/internal/models"
	"gorm.io/gorm"
)

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *QuestionRepository) WithTx(tx *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: tx}
}

func (r *QuestionRepository) Create(question *models.Question) error {
	return r.db.Create(question).Error
}

func (r *QuestionRepository) FindByUUID(uuid string) (*models.Question, error) {
	var question models.Question
	err := r.db.Preload("User").Where("uuid = ?", uuid).First(&question).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &question, nil
}

func (r *QuestionRepository) Update(question *models.Question) error {
	return r.db.Save(question).Error
}

// Delete removes the question row; answers referencing it go with it
// through the cascading foreign key.
func (r *QuestionRepository) Delete(question *models.Question) error {
	return r.db.Delete(question).Error
}

func (r *QuestionRepository) ListAll() ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Order("date DESC").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) ListByUserID(userID uint) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&questions).Error
	return questions, err
}
