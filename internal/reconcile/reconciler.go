package reconcile

import (
	"context"
	"log/slog"
	"slices"

	"github.com/umckinney/social-network-simulator/internal/errors"
	"github.com/umckinney/social-network-simulator/internal/pointer"
	"github.com/umckinney/social-network-simulator/internal/store"
)

// Result is the symmetric difference between a user's picture records
// and the pointer files on disk. Both slices are sorted ascending.
type Result struct {
	OnlyInDB   []string `json:"only_in_db"`
	OnlyOnDisk []string `json:"only_on_disk"`
}

// InSync reports whether the database and disk agree.
func (r Result) InSync() bool {
	return len(r.OnlyInDB) == 0 && len(r.OnlyOnDisk) == 0
}

// Reconciler compares the picture store against the pointer-file tree.
type Reconciler struct {
	store  store.Store
	writer *pointer.Writer
	logger *slog.Logger
}

// New creates a Reconciler.
func New(s store.Store, w *pointer.Writer, logger *slog.Logger) *Reconciler {
	return &Reconciler{store: s, writer: w, logger: logger}
}

// Run reconciles one user (userID non-empty) or every user (userID
// empty) and returns results keyed by user ID. An unknown user is not
// an error: it is logged and yields an empty map, matching the menu's
// forgiving behavior.
func (r *Reconciler) Run(ctx context.Context, userID string) (map[string]Result, error) {
	var userIDs []string

	if userID != "" {
		if _, err := r.store.GetUser(ctx, userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				r.logger.Warn("reconcile requested for unknown user", "user_id", userID)
				return map[string]Result{}, nil
			}
			return nil, err
		}
		userIDs = []string{userID}
	} else {
		users, err := r.store.ListUsers(ctx)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			userIDs = append(userIDs, u.ID)
		}
	}

	results := make(map[string]Result, len(userIDs))
	for _, uid := range userIDs {
		res, err := r.reconcileUser(ctx, uid)
		if err != nil {
			return nil, err
		}
		results[uid] = res
	}
	return results, nil
}

func (r *Reconciler) reconcileUser(ctx context.Context, userID string) (Result, error) {
	pictures, err := r.store.ListPicturesByUser(ctx, userID)
	if err != nil {
		return Result{}, err
	}

	dbIDs := make(map[string]bool, len(pictures))
	for _, p := range pictures {
		dbIDs[p.ID] = true
	}

	diskIDs := scanDiskIDs(r.writer.Root(), userID, r.logger)

	res := Result{OnlyInDB: []string{}, OnlyOnDisk: []string{}}
	for id := range dbIDs {
		if !diskIDs[id] {
			res.OnlyInDB = append(res.OnlyInDB, id)
		}
	}
	for id := range diskIDs {
		if !dbIDs[id] {
			res.OnlyOnDisk = append(res.OnlyOnDisk, id)
		}
	}
	slices.Sort(res.OnlyInDB)
	slices.Sort(res.OnlyOnDisk)

	if !res.InSync() {
		r.logger.Info("reconcile found differences",
			"user_id", userID,
			"only_in_db", len(res.OnlyInDB),
			"only_on_disk", len(res.OnlyOnDisk))
	}
	return res, nil
}

// Backfill writes pointer files for the given picture IDs and returns
// how many were written. IDs that no longer resolve to a record, or
// whose record belongs to another user, are logged and skipped.
func (r *Reconciler) Backfill(ctx context.Context, userID string, pictureIDs []string) (int, error) {
	written := 0
	for _, id := range pictureIDs {
		p, err := r.store.GetPicture(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				r.logger.Warn("backfill skipping missing picture", "picture_id", id)
				continue
			}
			return written, err
		}
		if userID != "" && p.UserID != userID {
			r.logger.Warn("backfill skipping picture owned by another user",
				"picture_id", id, "owner", p.UserID, "requested", userID)
			continue
		}
		if r.writer.Create(p) {
			written++
		}
	}
	return written, nil
}
