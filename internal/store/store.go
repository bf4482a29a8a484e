// Package store defines the persistence contract for users and students.
// Implementations must make every write a single atomic statement and report
// uniqueness and absence through the apperrors sentinels.
package store

import (
	"context"

	"student-registry/internal/model"
)

// Users is the credential store.
type Users interface {
	// CreateUser inserts u and fills in ID and CreatedAt.
	// Fails with apperrors.ErrDuplicateUsername.
	CreateUser(ctx context.Context, u *model.User) error
	// GetUserByUsername fails with apperrors.ErrUserNotFound.
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	AdminExists(ctx context.Context) (bool, error)
}

// Students is the student store.
type Students interface {
	// CreateStudent inserts s and fills in ID. Fails with apperrors.ErrDuplicateEmail.
	CreateStudent(ctx context.Context, s *model.Student) error
	// ListStudents returns every student ordered by id, never nil.
	ListStudents(ctx context.Context) ([]model.Student, error)
	// GetStudentByID fails with apperrors.ErrStudentNotFound.
	GetStudentByID(ctx context.Context, id int64) (*model.Student, error)
	// UpdateStudent overwrites the non-nil fields of patch and returns the
	// stored row. Fails with ErrStudentNotFound or ErrDuplicateEmail; on
	// failure the row is unchanged.
	UpdateStudent(ctx context.Context, id int64, patch model.StudentPatch) (*model.Student, error)
	// DeleteStudentByID returns the deleted row. Fails with ErrStudentNotFound.
	DeleteStudentByID(ctx context.Context, id int64) (*model.Student, error)
}

// Store is what the service needs from a backend.
type Store interface {
	Users
	Students
	Ping(ctx context.Context) error
	Close() error
}
