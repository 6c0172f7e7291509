package repository

import (
	"pattern_edu_backend/internal/model"

	"gorm.io/gorm"
)

// PatternCompletionRow is one line of the educator dashboard's per-pattern
// reflection completion breakdown.
type PatternCompletionRow struct {
	PatternID   uint   `json:"patternId"`
	PatternName string `json:"patternName"`
	Completed   int64  `json:"completed"`
}

type DashboardRepository struct {
	DB *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{DB: db}
}

func (r *DashboardRepository) CountStudents() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("role = ?", model.Student).Count(&count).Error
	return count, err
}

func (r *DashboardRepository) CountFinalResults() (passed int64, total int64, err error) {
	err = r.DB.Model(&model.FinalQuizResult{}).Count(&total).Error
	if err != nil {
		return 0, 0, err
	}
	err = r.DB.Model(&model.FinalQuizResult{}).Where("passed = ?", true).Count(&passed).Error
	return passed, total, err
}

func (r *DashboardRepository) CountCheatSheetAccesses() (int64, error) {
	var count int64
	err := r.DB.Model(&model.FinalAttemptCheatSheetAccess{}).Count(&count).Error
	return count, err
}

func (r *DashboardRepository) ReflectionCompletionByPattern() ([]PatternCompletionRow, error) {
	var rows []PatternCompletionRow
	err := r.DB.Model(&model.StudentPatternLearningProfile{}).
		Select("design_patterns.id AS pattern_id, design_patterns.name AS pattern_name, COUNT(*) AS completed").
		Joins("JOIN design_patterns ON design_patterns.id = student_pattern_learning_profiles.pattern_id").
		Where("student_pattern_learning_profiles.has_completed_reflection = ?", true).
		Group("design_patterns.id, design_patterns.name").
		Order("design_patterns.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *DashboardRepository) RecentUmlSubmissions(limit int) ([]model.UmlSubmission, error) {
	var submissions []model.UmlSubmission
	err := r.DB.Preload("Student").Preload("Exercise").
		Order("created_at DESC").Limit(limit).Find(&submissions).Error
	return submissions, err
}
