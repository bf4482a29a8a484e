// File: internal/model/student.go
package model

type Student struct {
	ID     int64  `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Email  string `db:"email" json:"email"`
	Age    int    `db:"age" json:"age"`
	Course string `db:"course" json:"course"`
}

// StudentPatch holds the fields of a partial update; nil means keep the stored value.
type StudentPatch struct {
	Name   *string
	Email  *string
	Age    *int
	Course *string
}

// Full turns a complete record into a patch that overwrites every field.
func (s Student) Full() StudentPatch {
	return StudentPatch{Name: &s.Name, Email: &s.Email, Age: &s.Age, Course: &s.Course}
}
