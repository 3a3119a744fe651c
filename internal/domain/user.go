// Package domain defines the core entities of the social network record
// keeper: users, their status updates, and their pictures.
package domain

import "time"

// User is an account holder. IDs are caller-chosen handles, not generated.
type User struct {
	ID        string    `json:"id" validate:"required,max=32,handle"`
	Email     string    `json:"email" validate:"required,email,max=100"`
	Name      string    `json:"name" validate:"required,max=30"`
	LastName  string    `json:"last_name" validate:"required,max=100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Touch updates the entity's UpdatedAt timestamp.
func (u *User) Touch() {
	u.UpdatedAt = time.Now()
}
