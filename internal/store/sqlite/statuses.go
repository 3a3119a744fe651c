package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/umckinney/social-network-simulator/internal/domain"
	"github.com/umckinney/social-network-simulator/internal/store"
)

// statusColumns is the ordered list of columns selected in status queries.
// Must match the scan order in scanStatus.
const statusColumns = `id, user_id, text, created_at, updated_at`

// scanStatus scans a sql.Row (or sql.Rows via its Scan method) into a domain.Status.
func scanStatus(scanner interface{ Scan(dest ...any) error }) (*domain.Status, error) {
	var st domain.Status
	var createdAt, updatedAt string

	err := scanner.Scan(
		&st.ID,
		&st.UserID,
		&st.Text,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	st.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	st.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &st, nil
}

// CreateStatus inserts a new status update.
// Returns store.ErrAlreadyExists if the status ID already exists and
// store.ErrNotFound if the referenced user does not exist.
func (s *Store) CreateStatus(ctx context.Context, status *domain.Status) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO statuses (id, user_id, text, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		status.ID,
		status.UserID,
		status.Text,
		formatTime(status.CreatedAt),
		formatTime(status.UpdatedAt),
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
	return nil
}

// GetStatus retrieves a status by ID.
// Returns store.ErrNotFound if the status does not exist.
func (s *Store) GetStatus(ctx context.Context, id string) (*domain.Status, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+statusColumns+` FROM statuses WHERE id = ?`, id)

	st, err := scanStatus(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

// ListStatuses returns all statuses ordered by creation time.
func (s *Store) ListStatuses(ctx context.Context) ([]*domain.Status, error) {
	return s.queryStatuses(ctx,
		`SELECT `+statusColumns+` FROM statuses ORDER BY created_at ASC, id ASC`)
}

// ListStatusesByUser returns all statuses posted by the given user.
func (s *Store) ListStatusesByUser(ctx context.Context, userID string) ([]*domain.Status, error) {
	return s.queryStatuses(ctx,
		`SELECT `+statusColumns+` FROM statuses WHERE user_id = ? ORDER BY created_at ASC, id ASC`,
		userID)
}

func (s *Store) queryStatuses(ctx context.Context, query string, args ...any) ([]*domain.Status, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []*domain.Status
	for rows.Next() {
		st, err := scanStatus(rows)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return statuses, nil
}

// UpdateStatus performs a full row update on an existing status.
// Returns store.ErrNotFound if the status does not exist.
func (s *Store) UpdateStatus(ctx context.Context, status *domain.Status) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE statuses SET
			user_id = ?,
			text = ?,
			created_at = ?,
			updated_at = ?
		WHERE id = ?`,
		status.UserID,
		status.Text,
		formatTime(status.CreatedAt),
		formatTime(status.UpdatedAt),
		status.ID,
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

// DeleteStatus removes a status.
// Returns store.ErrNotFound if the status does not exist.
func (s *Store) DeleteStatus(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM statuses WHERE id = ?`, id)
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
