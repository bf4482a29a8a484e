// File: internal/service/student.go
package service

import (
	"context"

	"student-registry/internal/model"
	"student-registry/internal/store"
)

// Students is the student CRUD contract. Callers authorize before calling;
// it never sees tokens.
type Students struct {
	store store.Students
}

func NewStudents(s store.Students) *Students {
	return &Students{store: s}
}

func (s *Students) Create(ctx context.Context, st model.Student) (*model.Student, error) {
	st.ID = 0
	if err := s.store.CreateStudent(ctx, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *Students) List(ctx context.Context) ([]model.Student, error) {
	return s.store.ListStudents(ctx)
}

func (s *Students) Get(ctx context.Context, id int64) (*model.Student, error) {
	return s.store.GetStudentByID(ctx, id)
}

// UpdateFull replaces every field of student id.
func (s *Students) UpdateFull(ctx context.Context, id int64, st model.Student) (*model.Student, error) {
	return s.store.UpdateStudent(ctx, id, st.Full())
}

// UpdatePartial changes only the fields set in patch.
func (s *Students) UpdatePartial(ctx context.Context, id int64, patch model.StudentPatch) (*model.Student, error) {
	return s.store.UpdateStudent(ctx, id, patch)
}

// Delete removes student id and returns the row as it was.
func (s *Students) Delete(ctx context.Context, id int64) (*model.Student, error) {
	return s.store.DeleteStudentByID(ctx, id)
}
