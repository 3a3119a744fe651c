package domain

import (
	"fmt"
	"time"
)

// Picture is a database record describing an image a user posted. The image
// bytes themselves are out of scope; each record is mirrored on disk by a
// small pointer file whose location is derived from the picture's tags.
type Picture struct {
	ID     string   `json:"id" validate:"required,max=32,handle"`
	UserID string   `json:"user_id" validate:"required,max=32,handle"`
	Tags   []string `json:"tags"`
	// FileName is derived from Seq at creation time ("%010d.png").
	FileName string `json:"file_name"`
	// Seq is the store's monotonic row number for this picture. It names
	// both FileName and the on-disk pointer file.
	Seq       int64     `json:"seq"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Touch updates the entity's UpdatedAt timestamp.
func (p *Picture) Touch() {
	p.UpdatedAt = time.Now()
}

// ImageFileName returns the zero-padded image name for a sequence number.
func ImageFileName(seq int64) string {
	return fmt.Sprintf("%010d.png", seq)
}

// PointerFileName returns the zero-padded pointer-file name for this picture.
func (p *Picture) PointerFileName() string {
	return fmt.Sprintf("%010d.txt", p.Seq)
}
