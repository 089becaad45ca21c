package model

import "time"

// User represents a registered account. PasswordHash always holds the
// output of the password hasher, never the plaintext.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile is the public projection of a user.
type Profile struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}

// Profile returns the user's public fields.
func (u User) Profile() Profile {
	return Profile{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}

// Registration carries the input of a sign-up request.
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Credentials carries the input of a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
