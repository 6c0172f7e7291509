package service

import "pattern_edu_backend/internal/model"

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	ListStudents(page, pageSize int) ([]model.User, int64, error)
}

type UserService struct {
	Store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{Store: store}
}

func (s *UserService) Get(id uint) (*model.User, error) {
	return s.Store.FindByID(id)
}

func (s *UserService) ListStudents(page, pageSize int) ([]model.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.Store.ListStudents(page, pageSize)
}
