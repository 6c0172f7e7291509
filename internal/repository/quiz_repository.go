package repository

import (
	"time"

	"pattern_edu_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) CreateAttempt(attempt *model.QuizAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *QuizRepository) FindAttemptByID(id string) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.DB.First(&attempt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *QuizRepository) MarkAttemptSubmitted(id string, at time.Time) error {
	return r.DB.Model(&model.QuizAttempt{}).
		Where("id = ?", id).
		Update("submitted_at", at).
		Error
}

// HasResult reports whether the student already holds a final quiz result.
// The gate that blocks retakes.
func (r *QuizRepository) HasResult(studentID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.FinalQuizResult{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	return count > 0, err
}

func (r *QuizRepository) CreateResult(result *model.FinalQuizResult) error {
	return r.DB.Create(result).Error
}

func (r *QuizRepository) FindQuestions() ([]model.FinalQuizQuestion, error) {
	var questions []model.FinalQuizQuestion
	err := r.DB.Order("id ASC").Find(&questions).Error
	return questions, err
}

func (r *QuizRepository) CreateCheatSheetAccess(access *model.FinalAttemptCheatSheetAccess) error {
	return r.DB.Create(access).Error
}

func (r *QuizRepository) CountCheatSheetAccesses(attemptID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.FinalAttemptCheatSheetAccess{}).
		Where("attempt_id = ?", attemptID).
		Count(&count).Error
	return count, err
}
