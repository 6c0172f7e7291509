package service

import (
	"errors"
	"sort"

	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/util"

	"gorm.io/gorm"
)

type PatternStore interface {
	FindAll() ([]model.DesignPattern, error)
	FindByID(id uint) (*model.DesignPattern, error)
}

type PatternService struct {
	Store PatternStore
}

func NewPatternService(store PatternStore) *PatternService {
	return &PatternService{Store: store}
}

// List returns the catalog ordered alphabetically by name.
func (s *PatternService) List() ([]model.DesignPattern, error) {
	patterns, err := s.Store.FindAll()
	if err != nil {
		return nil, err
	}
	sort.Slice(patterns, func(i, j int) bool {
		return patterns[i].Name < patterns[j].Name
	})
	return patterns, nil
}

func (s *PatternService) Get(id uint) (*model.DesignPattern, error) {
	pattern, err := s.Store.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPatternNotFound
		}
		return nil, err
	}
	return pattern, nil
}
