package service

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/askboard/backend/internal/apperr"
	"github.com/askboard/backend/internal/models"
	"github.com/askboard/backend/internal/repository"
	"github.com/askboard/backend/internal/utils"
	"github.com/askboard/backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthService struct {
	db          *gorm.DB
	users       *repository.UserRepository
	sessions    *repository.SessionRepository
	tokenSecret string
	sessionTTL  time.Duration

	// injectable for tests
	now     func() time.Time
	newUUID func() string
}

func NewAuthService(db *gorm.DB, users *repository.UserRepository, sessions *repository.SessionRepository, tokenSecret string, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		db:          db,
		users:       users,
		sessions:    sessions,
		tokenSecret: tokenSecret,
		sessionTTL:  sessionTTL,
		now:         time.Now,
		newUUID:     uuid.NewString,
	}
}

// SetClock overrides the time source. Intended for tests.
func (s *AuthService) SetClock(now func() time.Time) {
	s.now = now
}

// SignUp registers a new user. The draft's role is always forced to
// nonadmin; admin accounts are seeded out of band.
func (s *AuthService) SignUp(draft *models.User, password string) (*models.User, error) {
	logger.Log.Debug("Processing sign-up",
		zap.String("user_name", draft.UserName),
		zap.String("email", draft.Email),
	)

	if password == "" {
		logger.Log.Warn("Sign-up rejected: missing password",
			zap.String("user_name", draft.UserName),
		)
		return nil, apperr.SignupInvalid("SGR-003", "Password is required")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)

		existing, err := users.FindByUserName(draft.UserName)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperr.SignupRestricted("SGR-001", "Try any other Username, this Username has already been taken")
		}

		existing, err = users.FindByEmail(draft.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperr.SignupRestricted("SGR-002", "This user has already been registered, try with any other emailId")
		}

		salt, hash, err := utils.HashPassword(password)
		if err != nil {
			return err
		}

		draft.UUID = s.newUUID()
		draft.Role = models.RoleNonAdmin
		draft.Salt = salt
		draft.PasswordHash = hash

		// A racing sign-up can still slip past the pre-checks; the unique
		// constraints are the source of truth.
		if err := users.Create(draft); err != nil {
			switch err {
			case repository.ErrDuplicateUserName:
				return apperr.SignupRestricted("SGR-001", "Try any other Username, this Username has already been taken")
			case repository.ErrDuplicateEmail:
				return apperr.SignupRestricted("SGR-002", "This user has already been registered, try with any other emailId")
			}
			return err
		}
		return nil
	})
	if err != nil {
		logWarnOrError("Sign-up failed", err,
			zap.String("user_name", draft.UserName),
			zap.String("email", draft.Email),
		)
		return nil, err
	}

	logger.Log.Info("User registered",
		zap.String("user_uuid", draft.UUID),
		zap.String("user_name", draft.UserName),
	)
	return draft, nil
}

// SignIn verifies a Basic credential and opens a session bounded by the
// configured TTL.
func (s *AuthService) SignIn(authorization string) (*models.Session, error) {
	username, password, err := parseBasicAuth(authorization)
	if err != nil {
		logger.Log.Warn("Sign-in rejected: malformed Basic credential")
		return nil, err
	}

	logger.Log.Debug("Processing sign-in", zap.String("user_name", username))

	var session *models.Session
	err = s.db.Transaction(func(tx *gorm.DB) error {
		user, err := s.users.WithTx(tx).FindByUserName(username)
		if err != nil {
			return err
		}
		if user == nil {
			return apperr.AuthenticationFailed("ATH-001", "This username does not exist")
		}

		match, err := utils.VerifyPassword(password, user.Salt, user.PasswordHash)
		if err != nil {
			return err
		}
		if !match {
			return apperr.AuthenticationFailed("ATH-002", "Password failed")
		}

		now := s.now()
		expiresAt := now.Add(s.sessionTTL)
		sessionUUID := s.newUUID()

		token, err := utils.GenerateAccessToken(user.UUID, sessionUUID, s.tokenSecret, now, expiresAt)
		if err != nil {
			return err
		}

		session = &models.Session{
			UUID:        sessionUUID,
			AccessToken: token,
			UserID:      user.ID,
			LoginAt:     now,
			ExpiresAt:   expiresAt,
		}
		if err := s.sessions.WithTx(tx).Create(session); err != nil {
			return err
		}
		session.User = *user
		return nil
	})
	if err != nil {
		logWarnOrError("Sign-in failed", err, zap.String("user_name", username))
		return nil, err
	}

	logger.Log.Info("User signed in",
		zap.String("user_uuid", session.User.UUID),
		zap.Time("expires_at", session.ExpiresAt),
	)
	return session, nil
}

// SignOut terminally closes the session behind the token and returns the
// uuid of its user. A second sign-out with the same token fails and does
// not move LogoutAt.
func (s *AuthService) SignOut(authorization string) (string, error) {
	token := stripBearerPrefix(authorization)

	var userUUID string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		sessions := s.sessions.WithTx(tx)

		session, err := sessions.FindByAccessToken(token)
		if err != nil {
			return err
		}
		if session == nil || session.LogoutAt != nil {
			return apperr.SignoutRestricted("User is not Signed in")
		}

		now := s.now()
		session.LogoutAt = &now
		if err := sessions.Update(session); err != nil {
			return err
		}
		userUUID = session.User.UUID
		return nil
	})
	if err != nil {
		logWarnOrError("Sign-out failed", err)
		return "", err
	}

	logger.Log.Info("User signed out", zap.String("user_uuid", userUUID))
	return userUUID, nil
}

// RequireActiveSession resolves the Authorization header to an open
// session. The Bearer prefix is optional; a raw token is accepted for
// wire compatibility. signedOutMessage lets every operation phrase its
// own "sign in first to ..." variant.
func (s *AuthService) RequireActiveSession(authorization, signedOutMessage string) (*models.Session, error) {
	token := stripBearerPrefix(authorization)

	session, err := s.sessions.FindByAccessToken(token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperr.AuthorizationFailed("ATHR-001", "User has not signed in")
	}
	if session.LogoutAt != nil {
		return nil, apperr.AuthorizationFailed("ATHR-002", signedOutMessage)
	}
	if s.now().After(session.ExpiresAt) {
		return nil, apperr.AuthorizationFailed("ATHR-002", signedOutMessage)
	}
	return session, nil
}

// RequireOwner permits only the resource owner. Identity is compared on
// the internal key, not the public uuid, and admins get no exception.
func (s *AuthService) RequireOwner(session *models.Session, ownerID uint, message string) error {
	if session.UserID != ownerID {
		return apperr.AuthorizationFailed("ATHR-003", message)
	}
	return nil
}

// RequireOwnerOrAdmin permits the resource owner or any admin.
func (s *AuthService) RequireOwnerOrAdmin(session *models.Session, ownerID uint, message string) error {
	if session.UserID != ownerID && session.User.Role != models.RoleAdmin {
		return apperr.AuthorizationFailed("ATHR-003", message)
	}
	return nil
}

// parseBasicAuth decodes "Basic <base64(username:password)>".
func parseBasicAuth(authorization string) (username, password string, err error) {
	encoded := strings.TrimPrefix(authorization, "Basic ")
	if encoded == authorization {
		return "", "", apperr.Unexpected("Malformed Basic authentication header")
	}

	decoded, decodeErr := base64.StdEncoding.DecodeString(encoded)
	if decodeErr != nil {
		return "", "", apperr.Unexpected("Malformed Basic authentication header")
	}

	parts := strings.SplitN(string(decoded), ":", 2)
	if len(parts) != 2 {
		return "", "", apperr.Unexpected("Malformed Basic authentication header")
	}

	return parts[0], parts[1], nil
}

// stripBearerPrefix tolerates both "Bearer <token>" and a bare token.
func stripBearerPrefix(authorization string) string {
	return strings.TrimPrefix(authorization, "Bearer ")
}
