// File: internal/dto/student_request.go
package dto

import "student-registry/internal/model"

// StudentRequest is the body of create and full update. Pointers let
// "required" tell a missing age apart from age 0. Limits follow the
// students table columns.
// swagger:model dto.StudentRequest
type StudentRequest struct {
	Name   *string `json:"name" validate:"required,min=1,max=100" example:"Bob"`
	Email  *string `json:"email" validate:"required,email,max=150" example:"bob@x.com"`
	Age    *int    `json:"age" validate:"required,gte=0,lte=150" example:"20"`
	Course *string `json:"course" validate:"required,max=100" example:"CS"`
}

// Student must only be called after validation.
func (r StudentRequest) Student() model.Student {
	return model.Student{
		Name:   *r.Name,
		Email:  *r.Email,
		Age:    *r.Age,
		Course: *r.Course,
	}
}

// StudentPatchRequest is the body of a partial update. Absent or null
// fields keep their stored value.
// swagger:model dto.StudentPatchRequest
type StudentPatchRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitnil,min=1,max=100" example:"Bob"`
	Email  *string `json:"email,omitempty" validate:"omitnil,email,max=150" example:"bob@x.com"`
	Age    *int    `json:"age,omitempty" validate:"omitnil,gte=0,lte=150" example:"21"`
	Course *string `json:"course,omitempty" validate:"omitnil,max=100" example:"CS"`
}

func (r StudentPatchRequest) Patch() model.StudentPatch {
	return model.StudentPatch{
		Name:   r.Name,
		Email:  r.Email,
		Age:    r.Age,
		Course: r.Course,
	}
}
