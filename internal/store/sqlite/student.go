package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"student-registry/internal/apperrors"
	"student-registry/internal/model"
)

func (s *Store) CreateStudent(ctx context.Context, st *model.Student) error {
	result, err := s.DB.ExecContext(ctx,
		"INSERT INTO students (name, email, age, course) VALUES (?, ?, ?, ?)",
		st.Name,
		st.Email,
		st.Age,
		st.Course,
	)
	if err != nil {
		return fmt.Errorf("CreateStudent: %w", studentErr(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("CreateStudent: last insert id: %w", err)
	}
	st.ID = id
	return nil
}

func (s *Store) ListStudents(ctx context.Context) ([]model.Student, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT id, name, email, age, course FROM students ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("ListStudents: query: %w", err)
	}
	defer rows.Close()

	students := make([]model.Student, 0)
	for rows.Next() {
		var st model.Student
		if err := scanStudent(rows, &st); err != nil {
			return nil, fmt.Errorf("ListStudents: scan row: %w", err)
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListStudents: rows iteration: %w", err)
	}
	return students, nil
}

func (s *Store) GetStudentByID(ctx context.Context, id int64) (*model.Student, error) {
	row := s.DB.QueryRowContext(ctx,
		"SELECT id, name, email, age, course FROM students WHERE id = ? LIMIT 1",
		id,
	)
	st := &model.Student{}
	if err := scanStudent(row, st); err != nil {
		return nil, fmt.Errorf("GetStudentByID: %w", studentErr(err))
	}
	return st, nil
}

func (s *Store) UpdateStudent(ctx context.Context, id int64, patch model.StudentPatch) (*model.Student, error) {
	row := s.DB.QueryRowContext(ctx,
		`UPDATE students SET
		     name   = COALESCE(?, name),
		     email  = COALESCE(?, email),
		     age    = COALESCE(?, age),
		     course = COALESCE(?, course)
		 WHERE id = ?
		 RETURNING id, name, email, age, course`,
		patch.Name,
		patch.Email,
		patch.Age,
		patch.Course,
		id,
	)
	st := &model.Student{}
	if err := scanStudent(row, st); err != nil {
		return nil, fmt.Errorf("UpdateStudent: %w", studentErr(err))
	}
	return st, nil
}

func (s *Store) DeleteStudentByID(ctx context.Context, id int64) (*model.Student, error) {
	row := s.DB.QueryRowContext(ctx,
		"DELETE FROM students WHERE id = ? RETURNING id, name, email, age, course",
		id,
	)
	st := &model.Student{}
	if err := scanStudent(row, st); err != nil {
		return nil, fmt.Errorf("DeleteStudentByID: %w", studentErr(err))
	}
	return st, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStudent(row scanner, st *model.Student) error {
	return row.Scan(
		&st.ID,
		&st.Name,
		&st.Email,
		&st.Age,
		&st.Course,
	)
}

func studentErr(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return apperrors.ErrStudentNotFound
	case isDuplicate(err):
		return apperrors.ErrDuplicateEmail
	default:
		return err
	}
}
