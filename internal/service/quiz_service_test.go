package service

import (
	"testing"
	"time"

	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeQuizStore struct {
	attempts  map[string]*model.QuizAttempt
	questions []model.FinalQuizQuestion
	hasResult bool

	results        []*model.FinalQuizResult
	accesses       []*model.FinalAttemptCheatSheetAccess
	submittedMarks []string
}

func newFakeQuizStore() *fakeQuizStore {
	return &fakeQuizStore{attempts: make(map[string]*model.QuizAttempt)}
}

func (s *fakeQuizStore) CreateAttempt(attempt *model.QuizAttempt) error {
	s.attempts[attempt.ID] = attempt
	return nil
}

func (s *fakeQuizStore) FindAttemptByID(id string) (*model.QuizAttempt, error) {
	attempt, ok := s.attempts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return attempt, nil
}

func (s *fakeQuizStore) MarkAttemptSubmitted(id string, at time.Time) error {
	s.submittedMarks = append(s.submittedMarks, id)
	if attempt, ok := s.attempts[id]; ok {
		attempt.SubmittedAt = &at
	}
	return nil
}

func (s *fakeQuizStore) HasResult(uint) (bool, error) { return s.hasResult, nil }

func (s *fakeQuizStore) CreateResult(result *model.FinalQuizResult) error {
	s.results = append(s.results, result)
	return nil
}

func (s *fakeQuizStore) FindQuestions() ([]model.FinalQuizQuestion, error) {
	return s.questions, nil
}

func (s *fakeQuizStore) CreateCheatSheetAccess(access *model.FinalAttemptCheatSheetAccess) error {
	s.accesses = append(s.accesses, access)
	return nil
}

func (s *fakeQuizStore) CountCheatSheetAccesses(attemptID string) (int64, error) {
	var count int64
	for _, a := range s.accesses {
		if a.AttemptID == attemptID {
			count++
		}
	}
	return count, nil
}

func question(id uint, correct string) model.FinalQuizQuestion {
	q := model.FinalQuizQuestion{CorrectOption: correct}
	q.ID = id
	return q
}

func ownedAttempt(store *fakeQuizStore, id string, studentID uint) *model.QuizAttempt {
	attempt := &model.QuizAttempt{StudentID: studentID, StartedAt: time.Now()}
	attempt.ID = id
	store.attempts[id] = attempt
	return attempt
}

func TestStartAttemptBlockedAfterResult(t *testing.T) {
	store := newFakeQuizStore()
	store.hasResult = true
	svc := NewQuizService(store)

	attempt, err := svc.StartAttempt(1)
	assert.Nil(t, attempt)
	assert.ErrorIs(t, err, util.ErrQuizAlreadyTaken)
	assert.Empty(t, store.attempts)
}

func TestStartAttemptOpenGate(t *testing.T) {
	store := newFakeQuizStore()
	svc := NewQuizService(store)

	attempt, err := svc.StartAttempt(1)
	require.NoError(t, err)
	assert.NotEmpty(t, attempt.ID)
	assert.Equal(t, uint(1), attempt.StudentID)
	assert.Len(t, store.attempts, 1)
}

func TestSubmitScoresAgainstQuestionBank(t *testing.T) {
	store := newFakeQuizStore()
	store.questions = []model.FinalQuizQuestion{
		question(1, "A"), question(2, "B"), question(3, "C"), question(4, "D"),
	}
	ownedAttempt(store, "attempt-1", 5)
	svc := NewQuizService(store)

	result, err := svc.Submit(5, "attempt-1", map[uint]string{1: "A", 2: "B", 3: "C", 4: "A"})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Score)
	assert.Equal(t, 4, result.Total)
	assert.True(t, result.Passed) // 3/4 >= 0.7
	assert.Zero(t, result.CheatSheetUses)
	assert.Equal(t, []string{"attempt-1"}, store.submittedMarks)
}

func TestSubmitReportsCheatSheetUse(t *testing.T) {
	store := newFakeQuizStore()
	store.questions = []model.FinalQuizQuestion{question(1, "A")}
	ownedAttempt(store, "attempt-1", 5)
	svc := NewQuizService(store)

	require.NoError(t, svc.LogCheatSheetAccess(5, "attempt-1", 3))
	require.NoError(t, svc.LogCheatSheetAccess(5, "attempt-1", 4))

	result, err := svc.Submit(5, "attempt-1", map[uint]string{1: "A"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.CheatSheetUses)
}

func TestSubmitBelowPassMark(t *testing.T) {
	store := newFakeQuizStore()
	store.questions = []model.FinalQuizQuestion{
		question(1, "A"), question(2, "B"), question(3, "C"), question(4, "D"),
	}
	ownedAttempt(store, "attempt-1", 5)
	svc := NewQuizService(store)

	result, err := svc.Submit(5, "attempt-1", map[uint]string{1: "A", 2: "B"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Score)
	assert.False(t, result.Passed) // 2/4 < 0.7
}

func TestSubmitTwiceConflicts(t *testing.T) {
	store := newFakeQuizStore()
	store.questions = []model.FinalQuizQuestion{question(1, "A")}
	ownedAttempt(store, "attempt-1", 5)
	svc := NewQuizService(store)

	_, err := svc.Submit(5, "attempt-1", map[uint]string{1: "A"})
	require.NoError(t, err)

	_, err = svc.Submit(5, "attempt-1", map[uint]string{1: "A"})
	assert.Equal(t, util.KindConflict, util.KindOf(err))
	assert.Len(t, store.results, 1)
}

func TestSubmitForeignAttemptForbidden(t *testing.T) {
	store := newFakeQuizStore()
	ownedAttempt(store, "attempt-1", 5)
	svc := NewQuizService(store)

	_, err := svc.Submit(99, "attempt-1", nil)
	assert.ErrorIs(t, err, util.ErrAttemptNotOwned)
	assert.Empty(t, store.results)
}

func TestLogCheatSheetAccess(t *testing.T) {
	store := newFakeQuizStore()
	ownedAttempt(store, "attempt-1", 5)
	svc := NewQuizService(store)

	require.NoError(t, svc.LogCheatSheetAccess(5, "attempt-1", 3))
	require.Len(t, store.accesses, 1)
	assert.Equal(t, "attempt-1", store.accesses[0].AttemptID)
	assert.Equal(t, uint(3), store.accesses[0].PatternID)
}

func TestLogCheatSheetAccessForeignAttempt(t *testing.T) {
	// Ownership is checked before anything is written.
	store := newFakeQuizStore()
	ownedAttempt(store, "attempt-1", 5)
	svc := NewQuizService(store)

	err := svc.LogCheatSheetAccess(99, "attempt-1", 3)
	assert.ErrorIs(t, err, util.ErrAttemptNotOwned)
	assert.Empty(t, store.accesses)
}

func TestLogCheatSheetAccessUnknownAttempt(t *testing.T) {
	store := newFakeQuizStore()
	svc := NewQuizService(store)

	err := svc.LogCheatSheetAccess(5, "nope", 3)
	assert.ErrorIs(t, err, util.ErrAttemptNotFound)
	assert.Empty(t, store.accesses)
}
