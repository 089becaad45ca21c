package dto

import "github.com/polkiloo/userhub/internal/domain/model"

// UserResponse is the public projection of a user. It never carries the password.
type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// NewUserResponse maps a profile to its wire form.
func NewUserResponse(p model.Profile) UserResponse {
	return UserResponse{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName, Email: p.Email}
}

// UsersResponse is one page of the user directory.
type UsersResponse struct {
	TotalUsers  int64          `json:"totalUsers"`
	TotalPages  int64          `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Users       []UserResponse `json:"users"`
}

// NewUsersResponse maps a page to its wire form.
func NewUsersResponse(page *model.UserPage) UsersResponse {
	users := make([]UserResponse, 0, len(page.Users))
	for _, p := range page.Users {
		users = append(users, NewUserResponse(p))
	}
	return UsersResponse{
		TotalUsers:  page.TotalUsers,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		Users:       users,
	}
}
