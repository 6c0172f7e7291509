package service

import (
	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/repository"
)

type DashboardStore interface {
	CountStudents() (int64, error)
	CountFinalResults() (passed int64, total int64, err error)
	CountCheatSheetAccesses() (int64, error)
	ReflectionCompletionByPattern() ([]repository.PatternCompletionRow, error)
	RecentUmlSubmissions(limit int) ([]model.UmlSubmission, error)
}

// DashboardOverview is the educator landing payload. Pure aggregation, no
// state of its own.
type DashboardOverview struct {
	StudentCount         int64                             `json:"studentCount"`
	FinalQuizTaken       int64                             `json:"finalQuizTaken"`
	FinalQuizPassed      int64                             `json:"finalQuizPassed"`
	CheatSheetAccesses   int64                             `json:"cheatSheetAccesses"`
	ReflectionCompletion []repository.PatternCompletionRow `json:"reflectionCompletion"`
	RecentUmlSubmissions []model.UmlSubmission             `json:"recentUmlSubmissions"`
}

type DashboardService struct {
	Store DashboardStore
}

func NewDashboardService(store DashboardStore) *DashboardService {
	return &DashboardService{Store: store}
}

func (s *DashboardService) Overview() (*DashboardOverview, error) {
	students, err := s.Store.CountStudents()
	if err != nil {
		return nil, err
	}

	passed, total, err := s.Store.CountFinalResults()
	if err != nil {
		return nil, err
	}

	accesses, err := s.Store.CountCheatSheetAccesses()
	if err != nil {
		return nil, err
	}

	completion, err := s.Store.ReflectionCompletionByPattern()
	if err != nil {
		return nil, err
	}

	recent, err := s.Store.RecentUmlSubmissions(10)
	if err != nil {
		return nil, err
	}

	return &DashboardOverview{
		StudentCount:         students,
		FinalQuizTaken:       total,
		FinalQuizPassed:      passed,
		CheatSheetAccesses:   accesses,
		ReflectionCompletion: completion,
		RecentUmlSubmissions: recent,
	}, nil
}
