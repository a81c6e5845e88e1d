package repository_test

import (
	"testing"

	"github.com/askboard/backend/internal/models"
	"github.com/askboard/backend/internal/repository"
	"github.com/askboard/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ContentRepositoryTestSuite struct {
	suite.Suite
	testDB    *testutil.TestDatabase
	users     *repository.UserRepository
	questions *repository.QuestionRepository
	answers   *repository.AnswerRepository

	owner *models.User
}

func (s *ContentRepositoryTestSuite) SetupSuite() {
	s.testDB = testutil.SetupTestDatabase(s.T())
	s.users = repository.NewUserRepository(s.testDB.DB)
	s.questions = repository.NewQuestionRepository(s.testDB.DB)
	s.answers = repository.NewAnswerRepository(s.testDB.DB)
}

func (s *ContentRepositoryTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *ContentRepositoryTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)

	owner, err := testutil.DefaultTestUser()
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.users.Create(owner))
	s.owner = owner
}

func (s *ContentRepositoryTestSuite) TestQuestionCreateFindUpdateDelete() {
	// Arrange
	question := testutil.CreateTestQuestion(s.owner.ID, "What is a goroutine?")

	// Act
	require.NoError(s.T(), s.questions.Create(question))

	// Assert: find resolves with the owner preloaded
	found, err := s.questions.FindByUUID(question.UUID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), found)
	assert.Equal(s.T(), "What is a goroutine?", found.Content)
	assert.Equal(s.T(), s.owner.UserName, found.User.UserName)

	// Update
	found.Content = "What is a goroutine, really?"
	require.NoError(s.T(), s.questions.Update(found))
	reloaded, err := s.questions.FindByUUID(question.UUID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "What is a goroutine, really?", reloaded.Content)

	// Delete
	require.NoError(s.T(), s.questions.Delete(reloaded))
	gone, err := s.questions.FindByUUID(question.UUID)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), gone)
}

func (s *ContentRepositoryTestSuite) TestQuestionListAllAndByUser() {
	// Arrange: second author with a question of their own
	other, err := testutil.CreateTestUser("other", "other@example.com", "Pass12345", models.RoleNonAdmin)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.users.Create(other))

	require.NoError(s.T(), s.questions.Create(testutil.CreateTestQuestion(s.owner.ID, "first")))
	require.NoError(s.T(), s.questions.Create(testutil.CreateTestQuestion(s.owner.ID, "second")))
	require.NoError(s.T(), s.questions.Create(testutil.CreateTestQuestion(other.ID, "third")))

	// Act + Assert
	all, err := s.questions.ListAll()
	require.NoError(s.T(), err)
	assert.Len(s.T(), all, 3)

	mine, err := s.questions.ListByUserID(s.owner.ID)
	require.NoError(s.T(), err)
	assert.Len(s.T(), mine, 2)
	for _, q := range mine {
		assert.Equal(s.T(), s.owner.ID, q.UserID)
	}
}

func (s *ContentRepositoryTestSuite) TestAnswerCreateAndListByQuestion() {
	// Arrange
	question := testutil.CreateTestQuestion(s.owner.ID, "How do channels work?")
	require.NoError(s.T(), s.questions.Create(question))

	require.NoError(s.T(), s.answers.Create(testutil.CreateTestAnswer(s.owner.ID, question.ID, "With goroutines.")))
	require.NoError(s.T(), s.answers.Create(testutil.CreateTestAnswer(s.owner.ID, question.ID, "By communicating.")))

	// Act
	answers, err := s.answers.ListByQuestionID(question.ID)

	// Assert: every row points back at the question, with its content loaded
	require.NoError(s.T(), err)
	require.Len(s.T(), answers, 2)
	for _, a := range answers {
		assert.Equal(s.T(), question.ID, a.QuestionID)
		assert.Equal(s.T(), "How do channels work?", a.Question.Content)
	}
}

func (s *ContentRepositoryTestSuite) TestAnswerFindMissingReturnsNil() {
	found, err := s.answers.FindByUUID("no-such-answer")
	require.NoError(s.T(), err)
	assert.Nil(s.T(), found)
}

func (s *ContentRepositoryTestSuite) TestDeleteQuestionCascadesToAnswers() {
	// Arrange
	question := testutil.CreateTestQuestion(s.owner.ID, "Will I be deleted?")
	require.NoError(s.T(), s.questions.Create(question))

	answer := testutil.CreateTestAnswer(s.owner.ID, question.ID, "Yes.")
	require.NoError(s.T(), s.answers.Create(answer))

	// Act
	require.NoError(s.T(), s.questions.Delete(question))

	// Assert: the answer went with its question
	gone, err := s.answers.FindByUUID(answer.UUID)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), gone)
}

func TestContentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ContentRepositoryTestSuite))
}
