package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/umckinney/social-network-simulator/internal/domain"
	"github.com/umckinney/social-network-simulator/internal/normalize"
	"github.com/umckinney/social-network-simulator/internal/store"
)

// pictureColumns is the ordered list of columns selected in picture queries.
// Must match the scan order in scanPicture.
const pictureColumns = `seq, id, user_id, tags, file_name, created_at, updated_at`

// scanPicture scans a sql.Row (or sql.Rows via its Scan method) into a domain.Picture.
func scanPicture(scanner interface{ Scan(dest ...any) error }) (*domain.Picture, error) {
	var p domain.Picture
	var tags, createdAt, updatedAt string

	err := scanner.Scan(
		&p.Seq,
		&p.ID,
		&p.UserID,
		&tags,
		&p.FileName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Tags = normalize.DecodeTags(tags)

	p.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	p.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// CreatePicture inserts a new picture record. The store assigns the row
// sequence number and derives the image file name from it; both are
// written back to the passed picture.
// Returns store.ErrAlreadyExists if the picture ID already exists and
// store.ErrNotFound if the referenced user does not exist.
func (s *Store) CreatePicture(ctx context.Context, picture *domain.Picture) error {
	tags, err := normalize.EncodeTags(picture.Tags)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO pictures (id, user_id, tags, file_name, created_at, updated_at)
		VALUES (?, ?, ?, '', ?, ?)`,
		picture.ID,
		picture.UserID,
		tags,
		formatTime(picture.CreatedAt),
		formatTime(picture.UpdatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return store.ErrNotFound
		}
		return err
	}

	seq, err := result.LastInsertId()
	if err != nil {
		return err
	}

	// Second step: the file name depends on the assigned sequence number.
	fileName := domain.ImageFileName(seq)
	if _, err := s.db.ExecContext(ctx,
		`UPDATE pictures SET file_name = ? WHERE seq = ?`, fileName, seq); err != nil {
		return err
	}

	picture.Seq = seq
	picture.FileName = fileName
	return nil
}

// GetPicture retrieves a picture by ID.
// Returns store.ErrNotFound if the picture does not exist.
func (s *Store) GetPicture(ctx context.Context, id string) (*domain.Picture, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+pictureColumns+` FROM pictures WHERE id = ?`, id)

	p, err := scanPicture(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListPictures returns all pictures ordered by sequence number.
func (s *Store) ListPictures(ctx context.Context) ([]*domain.Picture, error) {
	return s.queryPictures(ctx,
		`SELECT `+pictureColumns+` FROM pictures ORDER BY seq ASC`)
}

// ListPicturesByUser returns all pictures posted by the given user.
func (s *Store) ListPicturesByUser(ctx context.Context, userID string) ([]*domain.Picture, error) {
	return s.queryPictures(ctx,
		`SELECT `+pictureColumns+` FROM pictures WHERE user_id = ? ORDER BY seq ASC`,
		userID)
}

func (s *Store) queryPictures(ctx context.Context, query string, args ...any) ([]*domain.Picture, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pictures []*domain.Picture
	for rows.Next() {
		p, err := scanPicture(rows)
		if err != nil {
			return nil, err
		}
		pictures = append(pictures, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return pictures, nil
}

// UpdatePicture performs a full row update on an existing picture.
// Seq and FileName are fixed at creation and not updatable.
// Returns store.ErrNotFound if the picture does not exist.
func (s *Store) UpdatePicture(ctx context.Context, picture *domain.Picture) error {
	tags, err := normalize.EncodeTags(picture.Tags)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE pictures SET
			user_id = ?,
			tags = ?,
			created_at = ?,
			updated_at = ?
		WHERE id = ?`,
		picture.UserID,
		tags,
		formatTime(picture.CreatedAt),
		formatTime(picture.UpdatedAt),
		picture.ID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return store.ErrNotFound
		}
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeletePicture removes a picture record. The on-disk pointer file, if
// any, is left for reconciliation to report.
// Returns store.ErrNotFound if the picture does not exist.
func (s *Store) DeletePicture(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM pictures WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
