package repository

import (
	"pattern_edu_backend/internal/model"

	"gorm.io/gorm"
)

type ReflectionRepository struct {
	DB *gorm.DB
}

func NewReflectionRepository(db *gorm.DB) *ReflectionRepository {
	return &ReflectionRepository{DB: db}
}

// FindActiveFormByPattern returns the single active form for the pattern.
// The is_active flag is maintained by form authors; the app only reads it.
func (r *ReflectionRepository) FindActiveFormByPattern(patternID uint) (*model.ReflectiveForm, error) {
	var form model.ReflectiveForm
	err := r.DB.Where("pattern_id = ? AND is_active = ?", patternID, true).First(&form).Error
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *ReflectionRepository) FindQuestionsByForm(formID uint) ([]model.ReflectiveQuestionInstance, error) {
	var questions []model.ReflectiveQuestionInstance
	err := r.DB.Where("form_id = ?", formID).Order("position ASC").Find(&questions).Error
	return questions, err
}

func (r *ReflectionRepository) FindScaleOptions() ([]model.ReflectiveScaleOption, error) {
	var options []model.ReflectiveScaleOption
	err := r.DB.Order("scale_order ASC").Find(&options).Error
	return options, err
}

// SaveResponses stores the student's answers and flips the learning-profile
// reflection flag in the same transaction.
func (r *ReflectionRepository) SaveResponses(studentID, patternID uint, responses []model.ReflectiveResponse) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range responses {
			responses[i].StudentID = studentID
			if err := tx.Save(&responses[i]).Error; err != nil {
				return err
			}
		}

		profile := model.StudentPatternLearningProfile{
			StudentID: studentID,
			PatternID: patternID,
		}
		err := tx.Where("student_id = ? AND pattern_id = ?", studentID, patternID).
			FirstOrCreate(&profile).Error
		if err != nil {
			return err
		}

		return tx.Model(&profile).Update("has_completed_reflection", true).Error
	})
}

func (r *ReflectionRepository) ListResponsesByForm(formID uint, page, pageSize int) ([]model.ReflectiveResponse, int64, error) {
	var responses []model.ReflectiveResponse
	var total int64

	query := r.DB.Model(&model.ReflectiveResponse{}).Where("form_id = ?", formID)
	query.Count(&total)

	offset := (page - 1) * pageSize
	err := query.Order("student_id ASC, question_id ASC").Offset(offset).Limit(pageSize).Find(&responses).Error
	return responses, total, err
}
