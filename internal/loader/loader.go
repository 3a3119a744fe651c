// Package loader ingests CSV files of users, statuses, and pictures.
//
// Headers are matched by name, so column order does not matter. Rows
// with any empty field are skipped and counted rather than aborting the
// load; so are rows the services reject (duplicates, unknown users,
// validation failures).
package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/umckinney/social-network-simulator/internal/service"
)

// Summary reports the outcome of one CSV load.
type Summary struct {
	Inserted int
	Skipped  int
}

// Total returns the number of data rows processed.
func (s Summary) Total() int {
	return s.Inserted + s.Skipped
}

// Loader reads CSV files and feeds them through the services.
type Loader struct {
	users    *service.UserService
	statuses *service.StatusService
	pictures *service.PictureService
	logger   *slog.Logger
}

// New creates a Loader.
func New(u *service.UserService, st *service.StatusService, p *service.PictureService, logger *slog.Logger) *Loader {
	return &Loader{users: u, statuses: st, pictures: p, logger: logger}
}

// LoadUsers loads user accounts from a CSV file with columns
// USER_ID, EMAIL, NAME, LASTNAME.
func (l *Loader) LoadUsers(ctx context.Context, path string) (Summary, error) {
	return l.load(ctx, path, []string{"USER_ID", "EMAIL", "NAME", "LASTNAME"},
		func(row map[string]string) error {
			_, err := l.users.Create(ctx, service.CreateUserInput{
				ID:       row["USER_ID"],
				Email:    row["EMAIL"],
				Name:     row["NAME"],
				LastName: row["LASTNAME"],
			})
			return err
		})
}

// LoadStatuses loads status updates from a CSV file with columns
// STATUS_ID, USER_ID, STATUS_TEXT.
func (l *Loader) LoadStatuses(ctx context.Context, path string) (Summary, error) {
	return l.load(ctx, path, []string{"STATUS_ID", "USER_ID", "STATUS_TEXT"},
		func(row map[string]string) error {
			_, err := l.statuses.Create(ctx, service.CreateStatusInput{
				ID:     row["STATUS_ID"],
				UserID: row["USER_ID"],
				Text:   row["STATUS_TEXT"],
			})
			return err
		})
}

// LoadPictures loads picture records from a CSV file with columns
// PICTURE_ID, USER_ID, TAGS.
func (l *Loader) LoadPictures(ctx context.Context, path string) (Summary, error) {
	return l.load(ctx, path, []string{"PICTURE_ID", "USER_ID", "TAGS"},
		func(row map[string]string) error {
			_, err := l.pictures.Create(ctx, service.CreatePictureInput{
				ID:     row["PICTURE_ID"],
				UserID: row["USER_ID"],
				Tags:   row["TAGS"],
			})
			return err
		})
}

// load drives one CSV file through an insert function row by row.
func (l *Loader) load(ctx context.Context, path string, required []string, insert func(map[string]string) error) (Summary, error) {
	f, err := os.Open(strings.TrimSpace(path)) //#nosec G304 -- path is operator input
	if err != nil {
		return Summary{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return Summary{}, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, field := range required {
		if _, ok := index[field]; !ok {
			return Summary{}, fmt.Errorf("missing required column %s", field)
		}
	}

	var sum Summary
	for {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return sum, fmt.Errorf("read row: %w", err)
		}

		row := make(map[string]string, len(required))
		empty := false
		for _, field := range required {
			value := strings.TrimSpace(record[index[field]])
			if value == "" {
				empty = true
				break
			}
			row[field] = value
		}
		if empty {
			l.logger.Warn("skipping row with empty fields", "file", path, "row", record)
			sum.Skipped++
			continue
		}

		if err := insert(row); err != nil {
			l.logger.Warn("skipping rejected row", "file", path, "error", err)
			sum.Skipped++
			continue
		}
		sum.Inserted++
	}

	l.logger.Info("csv load complete",
		"file", path, "inserted", sum.Inserted, "skipped", sum.Skipped)
	return sum, nil
}
