package service

import (
	"time"

	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/util"
)

type PracticeStore interface {
	FindQuestionsByPattern(patternID uint) ([]model.PracticeQuestion, error)
	CreateSubmission(submission *model.PracticeSubmission) error
	ListSubmissionsByStudent(studentID uint) ([]model.PracticeSubmission, error)
}

type PracticeService struct {
	Store    PracticeStore
	Profiles ProfileStore
}

func NewPracticeService(store PracticeStore, profiles ProfileStore) *PracticeService {
	return &PracticeService{Store: store, Profiles: profiles}
}

func (s *PracticeService) Questions(patternID uint) ([]model.PracticeQuestion, error) {
	return s.Store.FindQuestionsByPattern(patternID)
}

// Submit scores a practice run immediately. No gate, unlimited retries; the
// score feeds the student's learning profile for dashboard aggregation.
func (s *PracticeService) Submit(studentID, patternID uint, answers map[uint]string) (*model.PracticeSubmission, error) {
	questions, err := s.Store.FindQuestionsByPattern(patternID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.E(util.KindNotFound, "no practice questions for this pattern")
	}

	score := 0
	for _, q := range questions {
		if answers[q.ID] == q.CorrectOption {
			score++
		}
	}

	submission := &model.PracticeSubmission{
		StudentID:   studentID,
		PatternID:   patternID,
		Score:       score,
		Total:       len(questions),
		CompletedAt: time.Now(),
	}
	if err := s.Store.CreateSubmission(submission); err != nil {
		return nil, err
	}

	if err := s.Profiles.AddPracticePassed(studentID, patternID, score); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *PracticeService) History(studentID uint) ([]model.PracticeSubmission, error) {
	return s.Store.ListSubmissionsByStudent(studentID)
}
