// File: internal/store/postgres/student.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"student-registry/internal/apperrors"
	"student-registry/internal/model"

	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateStudent(ctx context.Context, st *model.Student) error {
	row := s.db.QueryRow(ctx,
		`INSERT INTO students (name, email, age, course)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		st.Name,
		st.Email,
		st.Age,
		st.Course,
	)
	if err := row.Scan(&st.ID); err != nil {
		return fmt.Errorf("CreateStudent: %w", studentErr(err))
	}
	return nil
}

func (s *Store) ListStudents(ctx context.Context) ([]model.Student, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, email, age, course FROM students ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListStudents: %w", err)
	}
	defer rows.Close()

	students := make([]model.Student, 0)
	for rows.Next() {
		var st model.Student
		if err := scanStudent(rows, &st); err != nil {
			return nil, fmt.Errorf("ListStudents: %w", err)
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListStudents: %w", err)
	}
	return students, nil
}

func (s *Store) GetStudentByID(ctx context.Context, id int64) (*model.Student, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, name, email, age, course FROM students WHERE id = $1`,
		id,
	)
	st := &model.Student{}
	if err := scanStudent(row, st); err != nil {
		return nil, fmt.Errorf("GetStudentByID: %w", studentErr(err))
	}
	return st, nil
}

func (s *Store) UpdateStudent(ctx context.Context, id int64, patch model.StudentPatch) (*model.Student, error) {
	row := s.db.QueryRow(ctx,
		`UPDATE students SET
		     name   = COALESCE($1::varchar, name),
		     email  = COALESCE($2::varchar, email),
		     age    = COALESCE($3::integer, age),
		     course = COALESCE($4::varchar, course)
		 WHERE id = $5
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
	row := s.db.QueryRow(ctx,
		`DELETE FROM students WHERE id = $1
		 RETURNING id, name, email, age, course`,
		id,
	)
	st := &model.Student{}
	if err := scanStudent(row, st); err != nil {
		return nil, fmt.Errorf("DeleteStudentByID: %w", studentErr(err))
	}
	return st, nil
}

func scanStudent(row pgx.Row, st *model.Student) error {
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
	case errors.Is(err, pgx.ErrNoRows):
		return apperrors.ErrStudentNotFound
	case isDuplicate(err, emailConstraint):
		return apperrors.ErrDuplicateEmail
	default:
		return err
	}
}
