// Package pointer manages the on-disk pointer files that mirror picture
// records. Each picture gets a small text file under a directory tree
// derived from its owner and tags:
//
//	<root>/<user_id>/<tag1>/<tag2>/.../<seq>.txt
//
// The files exist so the database and the filesystem can drift apart and
// be reconciled; they carry enough content to recover the picture ID by
// scanning.
package pointer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/umckinney/social-network-simulator/internal/domain"
	"github.com/umckinney/social-network-simulator/internal/normalize"
)

// Dir returns the directory a picture's pointer file belongs in, or ""
// when the picture is missing its ID or user ID. Tags are one path
// segment each, in their normalized order; an untagged picture sits
// directly under the user's directory.
func Dir(root string, p *domain.Picture) string {
	if root == "" || p == nil || p.ID == "" || p.UserID == "" {
		return ""
	}
	segments := append([]string{root, p.UserID}, p.Tags...)
	return filepath.Join(segments...)
}

// Path returns the full pointer-file path for a picture, or "" when Dir
// cannot be derived.
func Path(root string, p *domain.Picture) string {
	dir := Dir(root, p)
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, p.PointerFileName())
}

// Content renders the pointer file body for a picture.
func Content(p *domain.Picture) string {
	tags, err := normalize.EncodeTags(p.Tags)
	if err != nil {
		tags = "[]"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Pointer file for picture_id: %s\n", p.ID)
	fmt.Fprintf(&b, "User ID: %s\n", p.UserID)
	fmt.Fprintf(&b, "Tags: %s\n", tags)
	return b.String()
}

// Writer creates pointer files on disk.
type Writer struct {
	root   string
	logger *slog.Logger
}

// NewWriter creates a Writer rooted at the given directory.
func NewWriter(root string, logger *slog.Logger) *Writer {
	return &Writer{root: root, logger: logger}
}

// Root returns the writer's root directory.
func (w *Writer) Root() string {
	return w.root
}

// Create writes the pointer file for a picture, creating the tag
// directory chain as needed. Failures are logged and reported as false
// rather than aborting the caller; a missed pointer file shows up later
// as a reconciliation difference.
func (w *Writer) Create(p *domain.Picture) bool {
	if p.Seq <= 0 {
		w.logger.Warn("picture has no storage sequence", "picture_id", p.ID)
		return false
	}

	path := Path(w.root, p)
	if path == "" {
		w.logger.Warn("cannot derive pointer path", "picture_id", p.ID)
		return false
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		w.logger.Warn("create pointer directory failed",
			"picture_id", p.ID, "dir", filepath.Dir(path), "error", err)
		return false
	}

	if err := os.WriteFile(path, []byte(Content(p)), 0o644); err != nil {
		w.logger.Warn("write pointer file failed",
			"picture_id", p.ID, "path", path, "error", err)
		return false
	}

	w.logger.Debug("pointer file written", "picture_id", p.ID, "path", path)
	return true
}
