package repository

import (
	"pattern_edu_backend/internal/model"

	"gorm.io/gorm"
)

type UmlRepository struct {
	DB *gorm.DB
}

func NewUmlRepository(db *gorm.DB) *UmlRepository {
	return &UmlRepository{DB: db}
}

func (r *UmlRepository) FindExercisesByPattern(patternID uint) ([]model.UmlExercise, error) {
	var exercises []model.UmlExercise
	err := r.DB.Where("pattern_id = ?", patternID).Order("id ASC").Find(&exercises).Error
	return exercises, err
}

func (r *UmlRepository) FindExerciseByID(id uint) (*model.UmlExercise, error) {
	var exercise model.UmlExercise
	err := r.DB.First(&exercise, id).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *UmlRepository) CreateSubmission(submission *model.UmlSubmission) error {
	return r.DB.Create(submission).Error
}

func (r *UmlRepository) ListSubmissionsByExercise(exerciseID uint, page, pageSize int) ([]model.UmlSubmission, int64, error) {
	var submissions []model.UmlSubmission
	var total int64

	query := r.DB.Model(&model.UmlSubmission{}).Where("exercise_id = ?", exerciseID)
	query.Count(&total)

	offset := (page - 1) * pageSize
	err := query.Preload("Student").Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&submissions).Error
	return submissions, total, err
}

func (r *UmlRepository) ListSubmissionsByStudent(studentID uint) ([]model.UmlSubmission, error) {
	var submissions []model.UmlSubmission
	err := r.DB.Preload("Exercise").Where("student_id = ?", studentID).Order("created_at DESC").Find(&submissions).Error
	return submissions, err
}
