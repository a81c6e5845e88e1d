package service

import (
	"time"

	"github.com/askboard/backend/internal/apperr"
	"github.com/askboard/backend/internal/models"
	"github.com/askboard/backend/internal/repository"
	"github.com/askboard/backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AnswerService struct {
	db        *gorm.DB
	answers   *repository.AnswerRepository
	questions *repository.QuestionRepository
	auth      *AuthService

	now     func() time.Time
	newUUID func() string
}

func NewAnswerService(db *gorm.DB, answers *repository.AnswerRepository, questions *repository.QuestionRepository, auth *AuthService) *AnswerService {
	return &AnswerService{
		db:        db,
		answers:   answers,
		questions: questions,
		auth:      auth,
		now:       time.Now,
		newUUID:   uuid.NewString,
	}
}

func (s *AnswerService) Create(content, questionUUID, authorization string) (string, error) {
	session, err := s.auth.RequireActiveSession(authorization,
		"User is signed out.Sign in first to post an answer")
	if err != nil {
		return "", err
	}

	var answer *models.Answer
	err = s.db.Transaction(func(tx *gorm.DB) error {
		question, err := s.questions.WithTx(tx).FindByUUID(questionUUID)
		if err != nil {
			return err
		}
		if question == nil {
			return apperr.NotFound("QUES-001", "The question entered is invalid")
		}

		answer = &models.Answer{
			UUID:       s.newUUID(),
			Content:    content,
			Date:       s.now(),
			UserID:     session.UserID,
			QuestionID: question.ID,
		}
		return s.answers.WithTx(tx).Create(answer)
	})
	if err != nil {
		logWarnOrError("Answer create failed", err, zap.String("question_uuid", questionUUID))
		return "", err
	}

	logger.Log.Info("Answer created",
		zap.String("answer_uuid", answer.UUID),
		zap.String("question_uuid", questionUUID),
	)
	return answer.UUID, nil
}

// EditContent updates the answer text. Only the owner may edit; an admin
// editing someone else's answer is refused like anyone else.
func (s *AnswerService) EditContent(answerUUID, content, authorization string) (string, error) {
	session, err := s.auth.RequireActiveSession(authorization,
		"User is signed out.Sign in first to edit an answer")
	if err != nil {
		return "", err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		answers := s.answers.WithTx(tx)

		answer, err := answers.FindByUUID(answerUUID)
		if err != nil {
			return err
		}
		if answer == nil {
			return apperr.NotFound("ANS-001", "Entered answer uuid does not exist")
		}
		if err := s.auth.RequireOwner(session, answer.UserID,
			"Only the answer owner can edit the answer"); err != nil {
			return err
		}

		answer.Content = content
		return answers.Update(answer)
	})
	if err != nil {
		logWarnOrError("Answer edit failed", err, zap.String("answer_uuid", answerUUID))
		return "", err
	}

	return answerUUID, nil
}

func (s *AnswerService) Delete(answerUUID, authorization string) (string, error) {
	session, err := s.auth.RequireActiveSession(authorization,
		"User is signed out.Sign in first to delete an answer")
	if err != nil {
		return "", err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		answers := s.answers.WithTx(tx)

		answer, err := answers.FindByUUID(answerUUID)
		if err != nil {
			return err
		}
		if answer == nil {
			return apperr.NotFound("ANS-001", "Entered answer uuid does not exist")
		}
		if err := s.auth.RequireOwnerOrAdmin(session, answer.UserID,
			"Only the answer owner or admin can delete the answer"); err != nil {
			return err
		}

		return answers.Delete(answer)
	})
	if err != nil {
		logWarnOrError("Answer delete failed", err, zap.String("answer_uuid", answerUUID))
		return "", err
	}

	logger.Log.Info("Answer deleted",
		zap.String("answer_uuid", answerUUID),
		zap.String("deleted_by", session.User.UUID),
	)
	return answerUUID, nil
}

// ListForQuestion returns all answers to a question, each carrying the
// question for the listing projection.
func (s *AnswerService) ListForQuestion(questionUUID, authorization string) ([]models.Answer, error) {
	_, err := s.auth.RequireActiveSession(authorization,
		"User is signed out.Sign in first to get the answers")
	if err != nil {
		return nil, err
	}

	question, err := s.questions.FindByUUID(questionUUID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperr.NotFound("QUES-001", "The question with entered uuid whose details are to be seen does not exist")
	}

	return s.answers.ListByQuestionID(question.ID)
}
