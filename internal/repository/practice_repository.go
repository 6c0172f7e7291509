package repository

import (
	"pattern_edu_backend/internal/model"

	"gorm.io/gorm"
)

type PracticeRepository struct {
	DB *gorm.DB
}

func NewPracticeRepository(db *gorm.DB) *PracticeRepository {
	return &PracticeRepository{DB: db}
}

func (r *PracticeRepository) FindQuestionsByPattern(patternID uint) ([]model.PracticeQuestion, error) {
	var questions []model.PracticeQuestion
	err := r.DB.Where("pattern_id = ?", patternID).Order("id ASC").Find(&questions).Error
	return questions, err
}

func (r *PracticeRepository) CreateSubmission(submission *model.PracticeSubmission) error {
	return r.DB.Create(submission).Error
}

func (r *PracticeRepository) ListSubmissionsByStudent(studentID uint) ([]model.PracticeSubmission, error) {
	var submissions []model.PracticeSubmission
	err := r.DB.Where("student_id = ?", studentID).Order("created_at DESC").Find(&submissions).Error
	return submissions, err
}
