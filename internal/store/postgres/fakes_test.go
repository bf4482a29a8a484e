package postgres

import (
	"time"

	"student-registry/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- fakes ---------- */

// fakeUserRow covers the Scan shapes of the user queries:
// 6 dest → GetUserByUsername, 2 dest → CreateUser, 1 dest → AdminExists.
type fakeUserRow struct {
	scanErr error
	user    *model.User
	exists  bool
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 6:
		*dest[0].(*int64) = u.ID
		*dest[1].(*string) = u.Username
		*dest[2].(*string) = u.PasswordHash
		*dest[3].(*string) = u.Role
		*dest[4].(*bool) = u.IsActive
		*dest[5].(*time.Time) = u.CreatedAt
	case 2:
		*dest[0].(*int64) = u.ID
		*dest[1].(*time.Time) = u.CreatedAt
	case 1:
		*dest[0].(*bool) = r.exists
	default:
		panic("fakeUserRow.Scan: unexpected dest count")
	}
	return nil
}

// fakeStudentRow: 5 dest → full row, 1 dest → CreateStudent id.
type fakeStudentRow struct {
	scanErr error
	student model.Student
}

func (r *fakeStudentRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	s := r.student
	switch len(dest) {
	case 5:
		*dest[0].(*int64) = s.ID
		*dest[1].(*string) = s.Name
		*dest[2].(*string) = s.Email
		*dest[3].(*int) = s.Age
		*dest[4].(*string) = s.Course
	case 1:
		*dest[0].(*int64) = s.ID
	default:
		panic("fakeStudentRow.Scan: unexpected dest count")
	}
	return nil
}

// fakeRows implements pgx.Rows over a slice of students.
type fakeRows struct {
	data    []model.Student
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	row := &fakeStudentRow{student: r.data[r.idx]}
	r.idx++
	return row.Scan(dest...)
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

func uniqueErr(constraint string) error {
	return &pgconn.PgError{Code: uniqueViolation, ConstraintName: constraint}
}
