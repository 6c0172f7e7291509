package service

import "pattern_edu_backend/internal/model"

type ProfileStore interface {
	FindOrCreate(studentID, patternID uint) (*model.StudentPatternLearningProfile, error)
	ListByStudent(studentID uint) ([]model.StudentPatternLearningProfile, error)
	AddPracticePassed(studentID, patternID uint, passed int) error
}

type ProfileService struct {
	Store ProfileStore
}

func NewProfileService(store ProfileStore) *ProfileService {
	return &ProfileService{Store: store}
}

// GetForStudent returns the student's learning profile for the pattern,
// creating it lazily on first fetch.
func (s *ProfileService) GetForStudent(studentID, patternID uint) (*model.StudentPatternLearningProfile, error) {
	return s.Store.FindOrCreate(studentID, patternID)
}

func (s *ProfileService) ListForStudent(studentID uint) ([]model.StudentPatternLearningProfile, error) {
	return s.Store.ListByStudent(studentID)
}
