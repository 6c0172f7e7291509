package service

import (
	"testing"

	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePatternStore struct {
	patterns []model.DesignPattern
}

func (s *fakePatternStore) FindAll() ([]model.DesignPattern, error) {
	return append([]model.DesignPattern(nil), s.patterns...), nil
}

func (s *fakePatternStore) FindByID(id uint) (*model.DesignPattern, error) {
	for i := range s.patterns {
		if s.patterns[i].ID == id {
			return &s.patterns[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func namedPattern(id uint, name string) model.DesignPattern {
	p := model.DesignPattern{Name: name}
	p.ID = id
	return p
}

func TestListPatternsAlphabetical(t *testing.T) {
	store := &fakePatternStore{patterns: []model.DesignPattern{
		namedPattern(1, "Strategy"),
		namedPattern(2, "Adapter"),
		namedPattern(3, "Observer"),
	}}
	svc := NewPatternService(store)

	patterns, err := svc.List()
	require.NoError(t, err)

	names := make([]string, len(patterns))
	for i, p := range patterns {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"Adapter", "Observer", "Strategy"}, names)
}

func TestGetPattern(t *testing.T) {
	store := &fakePatternStore{patterns: []model.DesignPattern{namedPattern(1, "Observer")}}
	svc := NewPatternService(store)

	pattern, err := svc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Observer", pattern.Name)

	_, err = svc.Get(99)
	assert.ErrorIs(t, err, util.ErrPatternNotFound)
}
