// File: internal/dto/login_request.go
package dto

// LoginRequest is accepted as JSON or as an OAuth2 password form post.
// swagger:model dto.LoginRequest
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required" example:"alice"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}
