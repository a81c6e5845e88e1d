package service_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/askboard/backend/internal/models"
	"github.com/askboard/backend/internal/repository"
	"github.com/askboard/backend/internal/service"
	"github.com/askboard/backend/internal/testutil"
	"github.com/askboard/backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type QuestionServiceTestSuite struct {
	suite.Suite
	testDB    *testutil.TestDatabase
	users     *repository.UserRepository
	questions *repository.QuestionRepository
	auth      *service.AuthService
	svc       *service.QuestionService

	aliceToken string
	bobToken   string
	adminToken string
	alice      *models.User
}

func (s *QuestionServiceTestSuite) SetupSuite() {
	require.NoError(s.T(), logger.Init(false))

	s.testDB = testutil.SetupTestDatabase(s.T())
	s.users = repository.NewUserRepository(s.testDB.DB)
	s.questions = repository.NewQuestionRepository(s.testDB.DB)
	sessions := repository.NewSessionRepository(s.testDB.DB)
	s.auth = service.NewAuthService(s.testDB.DB, s.users, sessions, "test-secret-key", 8*time.Hour)
	s.svc = service.NewQuestionService(s.testDB.DB, s.questions, s.users, s.auth, nil)
}

func (s *QuestionServiceTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

// SetupTest seeds alice, bob and an admin, each with an open session.
func (s *QuestionServiceTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)

	alice, err := s.auth.SignUp(&models.User{UserName: "alice", Email: "alice@x.com"}, "Pass12345")
	require.NoError(s.T(), err)
	s.alice = alice
	_, err = s.auth.SignUp(&models.User{UserName: "bob", Email: "bob@x.com"}, "Pass12345")
	require.NoError(s.T(), err)

	admin, err := testutil.CreateTestUser("carol", "carol@x.com", "Admin12345", models.RoleAdmin)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.users.Create(admin))

	s.aliceToken = s.signIn("alice", "Pass12345")
	s.bobToken = s.signIn("bob", "Pass12345")
	s.adminToken = s.signIn("carol", "Admin12345")
}

func (s *QuestionServiceTestSuite) signIn(username, password string) string {
	session, err := s.auth.SignIn(testutil.BasicAuth(username, password))
	require.NoError(s.T(), err)
	return session.AccessToken
}

func (s *QuestionServiceTestSuite) TestCreate_Success() {
	uuid, err := s.svc.Create("What is a nil map?", s.aliceToken)

	require.NoError(s.T(), err)
	assert.NotEmpty(s.T(), uuid)

	stored, err := s.questions.FindByUUID(uuid)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), stored)
	assert.Equal(s.T(), s.alice.ID, stored.UserID, "The session user owns the question")
}

func (s *QuestionServiceTestSuite) TestCreate_NoSession() {
	_, err := s.svc.Create("anyone there?", "Bearer bogus")
	requireAppErr(s.T(), err, "ATHR-001", http.StatusForbidden)
}

func (s *QuestionServiceTestSuite) TestCreate_AfterSignOut() {
	_, err := s.auth.SignOut(s.aliceToken)
	require.NoError(s.T(), err)

	_, err = s.svc.Create("too late", s.aliceToken)

	appErr := requireAppErr(s.T(), err, "ATHR-002", http.StatusForbidden)
	assert.Contains(s.T(), appErr.Message, "post a question",
		"The signed-out message names the refused operation")
}

func (s *QuestionServiceTestSuite) TestGetAll() {
	_, err := s.svc.Create("first", s.aliceToken)
	require.NoError(s.T(), err)
	_, err = s.svc.Create("second", s.bobToken)
	require.NoError(s.T(), err)

	questions, err := s.svc.GetAll(s.aliceToken)

	require.NoError(s.T(), err)
	assert.Len(s.T(), questions, 2)
}

func (s *QuestionServiceTestSuite) TestEditContent_OwnerOnly() {
	uuid, err := s.svc.Create("originl", s.aliceToken)
	require.NoError(s.T(), err)

	// Owner edits
	edited, err := s.svc.EditContent(uuid, "original", s.aliceToken)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), uuid, edited)

	stored, err := s.questions.FindByUUID(uuid)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "original", stored.Content)

	// Non-owner is refused
	_, err = s.svc.EditContent(uuid, "bob was here", s.bobToken)
	appErr := requireAppErr(s.T(), err, "ATHR-003", http.StatusForbidden)
	assert.Equal(s.T(), "Only the question owner can edit the question", appErr.Message)

	// Admin too: edit authority is ownership, not role
	_, err = s.svc.EditContent(uuid, "admin override", s.adminToken)
	requireAppErr(s.T(), err, "ATHR-003", http.StatusForbidden)
}

func (s *QuestionServiceTestSuite) TestEditContent_MissingQuestion() {
	_, err := s.svc.EditContent("no-such-uuid", "content", s.aliceToken)

	appErr := requireAppErr(s.T(), err, "QUES-001", http.StatusNotFound)
	assert.Equal(s.T(), "Entered question uuid does not exist", appErr.Message)
}

func (s *QuestionServiceTestSuite) TestDelete_OwnerOrAdmin() {
	// A stranger cannot delete
	uuid1, err := s.svc.Create("to survive", s.aliceToken)
	require.NoError(s.T(), err)
	_, err = s.svc.Delete(uuid1, s.bobToken)
	appErr := requireAppErr(s.T(), err, "ATHR-003", http.StatusForbidden)
	assert.Equal(s.T(), "Only the question owner or admin can delete the question", appErr.Message)

	// The owner can
	_, err = s.svc.Delete(uuid1, s.aliceToken)
	require.NoError(s.T(), err)

	// An admin can delete a foreign question
	uuid2, err := s.svc.Create("admin target", s.aliceToken)
	require.NoError(s.T(), err)
	_, err = s.svc.Delete(uuid2, s.adminToken)
	require.NoError(s.T(), err)

	gone, err := s.questions.FindByUUID(uuid2)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), gone)
}

func (s *QuestionServiceTestSuite) TestDelete_MissingQuestion() {
	_, err := s.svc.Delete("no-such-uuid", s.aliceToken)
	requireAppErr(s.T(), err, "QUES-001", http.StatusNotFound)
}

func (s *QuestionServiceTestSuite) TestGetAllByUser() {
	_, err := s.svc.Create("alice q1", s.aliceToken)
	require.NoError(s.T(), err)
	_, err = s.svc.Create("alice q2", s.aliceToken)
	require.NoError(s.T(), err)
	_, err = s.svc.Create("bob q", s.bobToken)
	require.NoError(s.T(), err)

	questions, err := s.svc.GetAllByUser(s.alice.UUID, s.bobToken)

	require.NoError(s.T(), err)
	assert.Len(s.T(), questions, 2)
	for _, q := range questions {
		assert.Equal(s.T(), s.alice.ID, q.UserID)
	}
}

func (s *QuestionServiceTestSuite) TestGetAllByUser_UnknownUser() {
	_, err := s.svc.GetAllByUser("no-such-user", s.aliceToken)
	requireAppErr(s.T(), err, "USR-001", http.StatusNotFound)
}

func TestQuestionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuestionServiceTestSuite))
}
