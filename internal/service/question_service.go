package service

import (
	"time"

	"github.com/askboard/backend/internal/apperr"
	"github.com/askboard/backend/internal/cache"
	"github.com/askboard/backend/internal/models"
	"github.com/askboard/backend/internal/repository"
	"github.com/askboard/backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuestionService struct {
	db        *gorm.DB
	questions *repository.QuestionRepository
	users     *repository.UserRepository
	auth      *AuthService
	cache     cache.QuestionCache

	now     func() time.Time
	newUUID func() string
}

// NewQuestionService wires the question operations. cache may be nil when
// no Redis is configured; the listing then always reads the database.
func NewQuestionService(db *gorm.DB, questions *repository.QuestionRepository, users *repository.UserRepository, auth *AuthService, questionCache cache.QuestionCache) *QuestionService {
	return &QuestionService{
		db:        db,
		questions: questions,
		users:     users,
		auth:      auth,
		cache:     questionCache,
		now:       time.Now,
		newUUID:   uuid.NewString,
	}
}

func (s *QuestionService) Create(content, authorization string) (string, error) {
	session, err := s.auth.RequireActiveSession(authorization,
		"User is signed out.Sign in first to post a question")
	if err != nil {
		return "", err
	}

	question := &models.Question{
		UUID:    s.newUUID(),
		Content: content,
		Date:    s.now(),
		UserID:  session.UserID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.questions.WithTx(tx).Create(question)
	})
	if err != nil {
		logger.Log.Error("Failed to create question", zap.Error(err))
		return "", err
	}

	s.invalidateCache()
	logger.Log.Info("Question created",
		zap.String("question_uuid", question.UUID),
		zap.String("user_uuid", session.User.UUID),
	)
	return question.UUID, nil
}

func (s *QuestionService) GetAll(authorization string) ([]models.Question, error) {
	_, err := s.auth.RequireActiveSession(authorization,
		"User is signed out.Sign in first to get all questions")
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if questions, ok := s.cache.GetAll(); ok {
			return questions, nil
		}
	}

	questions, err := s.questions.ListAll()
	if err != nil {
		logger.Log.Error("Failed to list questions", zap.Error(err))
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetAll(questions); err != nil {
			logger.Log.Warn("Failed to populate question cache", zap.Error(err))
		}
	}
	return questions, nil
}

func (s *QuestionService) EditContent(questionUUID, content, authorization string) (string, error) {
	session, err := s.auth.RequireActiveSession(authorization,
		"User is signed out.Sign in first to edit the question")
	if err != nil {
		return "", err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		questions := s.questions.WithTx(tx)

		question, err := questions.FindByUUID(questionUUID)
		if err != nil {
			return err
		}
		if question == nil {
			return apperr.NotFound("QUES-001", "Entered question uuid does not exist")
		}
		if err := s.auth.RequireOwner(session, question.UserID,
			"Only the question owner can edit the question"); err != nil {
			return err
		}

		question.Content = content
		return questions.Update(question)
	})
	if err != nil {
		logWarnOrError("Question edit failed", err, zap.String("question_uuid", questionUUID))
		return "", err
	}

	s.invalidateCache()
	return questionUUID, nil
}

func (s *QuestionService) Delete(questionUUID, authorization string) (string, error) {
	session, err := s.auth.RequireActiveSession(authorization,
		"User is signed out.Sign in first to delete a question")
	if err != nil {
		return "", err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		questions := s.questions.WithTx(tx)

		question, err := questions.FindByUUID(questionUUID)
		if err != nil {
			return err
		}
		if question == nil {
			return apperr.NotFound("QUES-001", "Entered question uuid does not exist")
		}
		if err := s.auth.RequireOwnerOrAdmin(session, question.UserID,
			"Only the question owner or admin can delete the question"); err != nil {
			return err
		}

		return questions.Delete(question)
	})
	if err != nil {
		logWarnOrError("Question delete failed", err, zap.String("question_uuid", questionUUID))
		return "", err
	}

	s.invalidateCache()
	logger.Log.Info("Question deleted",
		zap.String("question_uuid", questionUUID),
		zap.String("deleted_by", session.User.UUID),
	)
	return questionUUID, nil
}

func (s *QuestionService) GetAllByUser(userUUID, authorization string) ([]models.Question, error) {
	_, err := s.auth.RequireActiveSession(authorization,
		"User is signed out.Sign in first to get all questions posted by a specific user")
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByUUID(userUUID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("USR-001", "User with entered uuid whose question details are to be seen does not exist")
	}

	return s.questions.ListByUserID(user.ID)
}

func (s *QuestionService) invalidateCache() {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(); err != nil {
		logger.Log.Warn("Failed to invalidate question cache", zap.Error(err))
	}
}
