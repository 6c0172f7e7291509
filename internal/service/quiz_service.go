package service

import (
	"errors"
	"time"

	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PassMark is the fraction of correct answers needed to pass the final quiz.
const PassMark = 0.7

type QuizStore interface {
	CreateAttempt(attempt *model.QuizAttempt) error
	FindAttemptByID(id string) (*model.QuizAttempt, error)
	MarkAttemptSubmitted(id string, at time.Time) error
	HasResult(studentID uint) (bool, error)
	CreateResult(result *model.FinalQuizResult) error
	FindQuestions() ([]model.FinalQuizQuestion, error)
	CreateCheatSheetAccess(access *model.FinalAttemptCheatSheetAccess) error
	CountCheatSheetAccesses(attemptID string) (int64, error)
}

type QuizService struct {
	Store QuizStore
}

func NewQuizService(store QuizStore) *QuizService {
	return &QuizService{Store: store}
}

// CanTake reports whether the student may start the final quiz. An existing
// result record closes the gate.
func (s *QuizService) CanTake(studentID uint) (bool, error) {
	taken, err := s.Store.HasResult(studentID)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

func (s *QuizService) StartAttempt(studentID uint) (*model.QuizAttempt, error) {
	open, err := s.CanTake(studentID)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, util.ErrQuizAlreadyTaken
	}

	attempt := &model.QuizAttempt{
		StudentID: studentID,
		StartedAt: time.Now(),
	}
	attempt.ID = uuid.New().String()

	if err := s.Store.CreateAttempt(attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

func (s *QuizService) Questions() ([]model.FinalQuizQuestion, error) {
	return s.Store.FindQuestions()
}

// Submit scores the attempt against the question bank and records the result.
func (s *QuizService) Submit(studentID uint, attemptID string, answers map[uint]string) (*model.FinalQuizResult, error) {
	attempt, err := s.findOwnedAttempt(studentID, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.SubmittedAt != nil {
		return nil, util.E(util.KindConflict, "attempt already submitted")
	}

	questions, err := s.Store.FindQuestions()
	if err != nil {
		return nil, err
	}

	score := 0
	for _, q := range questions {
		if answers[q.ID] == q.CorrectOption {
			score++
		}
	}

	total := len(questions)
	result := &model.FinalQuizResult{
		StudentID: studentID,
		AttemptID: attempt.ID,
		Score:     score,
		Total:     total,
		Passed:    total > 0 && float64(score) >= PassMark*float64(total),
	}

	if uses, err := s.Store.CountCheatSheetAccesses(attempt.ID); err == nil {
		result.CheatSheetUses = uses
	}

	if err := s.Store.CreateResult(result); err != nil {
		return nil, err
	}
	if err := s.Store.MarkAttemptSubmitted(attempt.ID, time.Now()); err != nil {
		return nil, err
	}
	return result, nil
}

// LogCheatSheetAccess records cheat-sheet use during an attempt. The attempt
// must belong to the authenticated student; nothing is inserted otherwise.
func (s *QuizService) LogCheatSheetAccess(studentID uint, attemptID string, patternID uint) error {
	if _, err := s.findOwnedAttempt(studentID, attemptID); err != nil {
		return err
	}

	return s.Store.CreateCheatSheetAccess(&model.FinalAttemptCheatSheetAccess{
		AttemptID: attemptID,
		PatternID: patternID,
	})
}

func (s *QuizService) findOwnedAttempt(studentID uint, attemptID string) (*model.QuizAttempt, error) {
	attempt, err := s.Store.FindAttemptByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	if attempt.StudentID != studentID {
		return nil, util.ErrAttemptNotOwned
	}
	return attempt, nil
}
