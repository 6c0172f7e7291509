package repository

import (
	"pattern_edu_backend/internal/model"

	"gorm.io/gorm"
)

type PatternRepository struct {
	DB *gorm.DB
}

func NewPatternRepository(db *gorm.DB) *PatternRepository {
	return &PatternRepository{DB: db}
}

func (r *PatternRepository) FindAll() ([]model.DesignPattern, error) {
	var patterns []model.DesignPattern
	err := r.DB.Order("name ASC").Find(&patterns).Error
	return patterns, err
}

func (r *PatternRepository) FindByID(id uint) (*model.DesignPattern, error) {
	var pattern model.DesignPattern
	err := r.DB.First(&pattern, id).Error
	if err != nil {
		return nil, err
	}
	return &pattern, nil
}
