package dto

import "bloghub/internal/microservices/http-api/models"

// Data Transfer Objects for authentication requests and responses

// SignUpRequest: payload for account creation
type SignUpRequest struct {
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,min=6,max=72"` // bcrypt ignores bytes past 72
	Name     string `validate:"required,max=100"`
}

// SignInRequest: payload for sign in
type SignInRequest struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// AuthResult: the issued session token and its owner
type AuthResult struct {
	Token string
	User  *models.User
}
