package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UmlStore interface {
	FindExercisesByPattern(patternID uint) ([]model.UmlExercise, error)
	FindExerciseByID(id uint) (*model.UmlExercise, error)
	CreateSubmission(submission *model.UmlSubmission) error
	ListSubmissionsByExercise(exerciseID uint, page, pageSize int) ([]model.UmlSubmission, int64, error)
	ListSubmissionsByStudent(studentID uint) ([]model.UmlSubmission, error)
}

type UmlService struct {
	Store   UmlStore
	Storage *StorageService
}

func NewUmlService(store UmlStore, storage *StorageService) *UmlService {
	return &UmlService{Store: store, Storage: storage}
}

func (s *UmlService) Exercises(patternID uint) ([]model.UmlExercise, error) {
	return s.Store.FindExercisesByPattern(patternID)
}

// SubmitDiagram stores the uploaded diagram image and records the submission.
func (s *UmlService) SubmitDiagram(ctx context.Context, studentID, exerciseID uint, filename string, reader io.Reader, size int64, contentType, note string) (*model.UmlSubmission, error) {
	if _, err := s.Store.FindExerciseByID(exerciseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.E(util.KindNotFound, "uml exercise not found")
		}
		return nil, err
	}

	objectName := fmt.Sprintf("uml/%d/%s%s", exerciseID, uuid.New().String(), filepath.Ext(filename))
	path, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	submission := &model.UmlSubmission{
		StudentID:  studentID,
		ExerciseID: exerciseID,
		ImagePath:  path,
		Note:       note,
	}
	if err := s.Store.CreateSubmission(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *UmlService) SubmissionsForExercise(exerciseID uint, page, pageSize int) ([]model.UmlSubmission, int64, error) {
	return s.Store.ListSubmissionsByExercise(exerciseID, page, pageSize)
}

func (s *UmlService) SubmissionsForStudent(studentID uint) ([]model.UmlSubmission, error) {
	return s.Store.ListSubmissionsByStudent(studentID)
}
