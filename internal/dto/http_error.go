// File: internal/dto/http_error.go
package dto

// HTTPError is the body of every non-2xx response.
// swagger:model dto.HTTPError
type HTTPError struct {
	Message string `json:"message" example:"Student not found"`
}
