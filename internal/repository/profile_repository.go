package repository

import (
	"pattern_edu_backend/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

// FindOrCreate returns the student's profile for the pattern, creating the
// row on first access.
func (r *ProfileRepository) FindOrCreate(studentID, patternID uint) (*model.StudentPatternLearningProfile, error) {
	profile := model.StudentPatternLearningProfile{
		StudentID: studentID,
		PatternID: patternID,
	}
	err := r.DB.Where("student_id = ? AND pattern_id = ?", studentID, patternID).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) ListByStudent(studentID uint) ([]model.StudentPatternLearningProfile, error) {
	var profiles []model.StudentPatternLearningProfile
	err := r.DB.Preload("Pattern").Where("student_id = ?", studentID).Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepository) AddPracticePassed(studentID, patternID uint, passed int) error {
	profile, err := r.FindOrCreate(studentID, patternID)
	if err != nil {
		return err
	}
	return r.DB.Model(profile).
		Update("practice_questions_passed", gorm.Expr("practice_questions_passed + ?", passed)).
		Error
}
