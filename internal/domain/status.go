package domain

import "time"

// Status is a short text update posted by a user.
type Status struct {
	ID        string    `json:"id" validate:"required,max=32,handle"`
	UserID    string    `json:"user_id" validate:"required,max=32,handle"`
	Text      string    `json:"text" validate:"required,max=140"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Touch updates the entity's UpdatedAt timestamp.
func (s *Status) Touch() {
	s.UpdatedAt = time.Now()
}
