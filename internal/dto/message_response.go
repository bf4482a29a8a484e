// File: internal/dto/message_response.go
package dto

import "student-registry/internal/model"

// swagger:model dto.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Successfully deleted"`
}

// swagger:model dto.UpdateStudentResponse
type UpdateStudentResponse struct {
	Message string        `json:"message" example:"Successfully updated"`
	Data    model.Student `json:"data"`
}
