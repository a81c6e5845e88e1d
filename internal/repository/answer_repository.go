package repository

import (
	"errors"

	"github.com/askboard/backend/internal/models"
	"gorm.io/gorm"
)

type AnswerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *AnswerRepository) WithTx(tx *gorm.DB) *AnswerRepository {
	return &AnswerRepository{db: tx}
}

func (r *AnswerRepository) Create(answer *models.Answer) error {
	return r.db.Create(answer).Error
}

func (r *AnswerRepository) FindByUUID(uuid string) (*models.Answer, error) {
	var answer models.Answer
	err := r.db.Preload("User").Preload("Question").Where("uuid = ?", uuid).First(&answer).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &answer, nil
}

func (r *AnswerRepository) Update(answer *models.Answer) error {
	return r.db.Save(answer).Error
}

func (r *AnswerRepository) Delete(answer *models.Answer) error {
	return r.db.Delete(answer).Error
}

// ListByQuestionID returns all answers to a question, each with the
// question loaded for the listing projection.
func (r *AnswerRepository) ListByQuestionID(questionID uint) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.db.Preload("Question").Where("question_id = ?", questionID).Order("date ASC").Find(&answers).Error
	return answers, err
}
