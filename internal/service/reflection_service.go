package service

import (
	"errors"

	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/util"

	"gorm.io/gorm"
)

type ReflectionStore interface {
	FindActiveFormByPattern(patternID uint) (*model.ReflectiveForm, error)
	FindQuestionsByForm(formID uint) ([]model.ReflectiveQuestionInstance, error)
	FindScaleOptions() ([]model.ReflectiveScaleOption, error)
	SaveResponses(studentID, patternID uint, responses []model.ReflectiveResponse) error
	ListResponsesByForm(formID uint, page, pageSize int) ([]model.ReflectiveResponse, int64, error)
}

// FormBundle is the reflection-form payload: the active form, its questions in
// position order, and the shared scale.
type FormBundle struct {
	Form         *model.ReflectiveForm              `json:"form"`
	Questions    []model.ReflectiveQuestionInstance `json:"questions"`
	ScaleOptions []model.ReflectiveScaleOption      `json:"scaleOptions"`
}

type ReflectionService struct {
	Store ReflectionStore
}

func NewReflectionService(store ReflectionStore) *ReflectionService {
	return &ReflectionService{Store: store}
}

// GetForm loads the single active form for the pattern. The two follow-up
// queries are dependent on the form lookup and run sequentially.
func (s *ReflectionService) GetForm(patternID uint) (*FormBundle, error) {
	form, err := s.Store.FindActiveFormByPattern(patternID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNoActiveForm
		}
		return nil, err
	}

	questions, err := s.Store.FindQuestionsByForm(form.ID)
	if err != nil {
		return nil, err
	}

	options, err := s.Store.FindScaleOptions()
	if err != nil {
		return nil, err
	}

	return &FormBundle{
		Form:         form,
		Questions:    questions,
		ScaleOptions: options,
	}, nil
}

// SubmitResponses records the student's answers to the pattern's active form
// and marks the reflection complete on their learning profile.
func (s *ReflectionService) SubmitResponses(studentID, patternID uint, answers map[uint]int) error {
	form, err := s.Store.FindActiveFormByPattern(patternID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNoActiveForm
		}
		return err
	}

	questions, err := s.Store.FindQuestionsByForm(form.ID)
	if err != nil {
		return err
	}

	responses := make([]model.ReflectiveResponse, 0, len(questions))
	for _, q := range questions {
		value, ok := answers[q.ID]
		if !ok {
			return util.E(util.KindValidation, "every question must be answered")
		}
		responses = append(responses, model.ReflectiveResponse{
			FormID:     form.ID,
			QuestionID: q.ID,
			ScaleValue: value,
		})
	}

	return s.Store.SaveResponses(studentID, patternID, responses)
}

func (s *ReflectionService) ListResponses(patternID uint, page, pageSize int) ([]model.ReflectiveResponse, int64, error) {
	form, err := s.Store.FindActiveFormByPattern(patternID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, util.ErrNoActiveForm
		}
		return nil, 0, err
	}
	return s.Store.ListResponsesByForm(form.ID, page, pageSize)
}
