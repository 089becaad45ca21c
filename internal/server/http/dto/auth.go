package dto

import "github.com/polkiloo/userhub/internal/domain/model"

// RegisterRequest describes the sign-up payload.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Registration converts the payload to the domain input.
func (r RegisterRequest) Registration() model.Registration {
	return model.Registration{FirstName: r.FirstName, LastName: r.LastName, Email: r.Email, Password: r.Password}
}

// LoginRequest describes email/password payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials converts the payload to the domain input.
func (r LoginRequest) Credentials() model.Credentials {
	return model.Credentials{Email: r.Email, Password: r.Password}
}

// MessageResponse is a bare confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the issued token and the public user projection.
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}
