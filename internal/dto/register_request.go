// File: internal/dto/register_request.go
package dto

// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50" example:"alice"`
	// bcrypt refuses passwords over 72 bytes
	Password string `json:"password" validate:"required,maxbytes=72" example:"Secret123!"`
}
