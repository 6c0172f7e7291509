package service

import (
	"testing"

	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeReflectionStore struct {
	form      *model.ReflectiveForm
	questions []model.ReflectiveQuestionInstance
	options   []model.ReflectiveScaleOption
	saved     [][]model.ReflectiveResponse
}

func (s *fakeReflectionStore) FindActiveFormByPattern(patternID uint) (*model.ReflectiveForm, error) {
	if s.form == nil || s.form.PatternID != patternID {
		return nil, gorm.ErrRecordNotFound
	}
	return s.form, nil
}

func (s *fakeReflectionStore) FindQuestionsByForm(uint) ([]model.ReflectiveQuestionInstance, error) {
	return s.questions, nil
}

func (s *fakeReflectionStore) FindScaleOptions() ([]model.ReflectiveScaleOption, error) {
	return s.options, nil
}

func (s *fakeReflectionStore) SaveResponses(_, _ uint, responses []model.ReflectiveResponse) error {
	s.saved = append(s.saved, responses)
	return nil
}

func (s *fakeReflectionStore) ListResponsesByForm(uint, int, int) ([]model.ReflectiveResponse, int64, error) {
	return nil, 0, nil
}

func reflectionFixture() *fakeReflectionStore {
	form := &model.ReflectiveForm{PatternID: 3, Title: "Observer reflection", IsActive: true}
	form.ID = 10

	q1 := model.ReflectiveQuestionInstance{FormID: 10, QuestionText: "Did the intent make sense?", Position: 1}
	q1.ID = 100
	q2 := model.ReflectiveQuestionInstance{FormID: 10, QuestionText: "Could you apply it unaided?", Position: 2}
	q2.ID = 101

	return &fakeReflectionStore{
		form:      form,
		questions: []model.ReflectiveQuestionInstance{q1, q2},
		options: []model.ReflectiveScaleOption{
			{Label: "Disagree", Value: 1, Order: 1},
			{Label: "Agree", Value: 2, Order: 2},
		},
	}
}

func TestGetFormBundle(t *testing.T) {
	store := reflectionFixture()
	svc := NewReflectionService(store)

	bundle, err := svc.GetForm(3)
	require.NoError(t, err)
	assert.Equal(t, "Observer reflection", bundle.Form.Title)
	assert.Len(t, bundle.Questions, 2)
	assert.Len(t, bundle.ScaleOptions, 2)
}

func TestGetFormNoActiveForm(t *testing.T) {
	svc := NewReflectionService(reflectionFixture())

	bundle, err := svc.GetForm(999)
	assert.Nil(t, bundle)
	assert.ErrorIs(t, err, util.ErrNoActiveForm)
	assert.Equal(t, util.KindNotFound, util.KindOf(err))
}

func TestSubmitResponses(t *testing.T) {
	store := reflectionFixture()
	svc := NewReflectionService(store)

	err := svc.SubmitResponses(5, 3, map[uint]int{100: 2, 101: 1})
	require.NoError(t, err)

	require.Len(t, store.saved, 1)
	assert.Len(t, store.saved[0], 2)
	assert.Equal(t, uint(10), store.saved[0][0].FormID)
}

func TestSubmitResponsesMissingAnswer(t *testing.T) {
	store := reflectionFixture()
	svc := NewReflectionService(store)

	err := svc.SubmitResponses(5, 3, map[uint]int{100: 2})
	assert.Equal(t, util.KindValidation, util.KindOf(err))
	assert.Empty(t, store.saved)
}

func TestSubmitResponsesNoActiveForm(t *testing.T) {
	store := reflectionFixture()
	svc := NewReflectionService(store)

	err := svc.SubmitResponses(5, 999, map[uint]int{100: 2})
	assert.ErrorIs(t, err, util.ErrNoActiveForm)
	assert.Empty(t, store.saved)
}
