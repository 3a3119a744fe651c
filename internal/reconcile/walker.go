// Package reconcile compares picture records in the database with the
// pointer files on disk and reports the differences per user. It can
// also backfill missing pointer files from surviving records.
package reconcile

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
)

// pictureIDPattern recovers a picture ID from pointer-file content. The
// scan is deliberately form-tolerant: any "picture_id: <word>" line
// counts, so hand-edited or partially corrupted files still resolve.
var pictureIDPattern = regexp.MustCompile(`picture_id:\s*(\w+)`)

// scanDiskIDs walks a user's pointer-file tree and returns the set of
// picture IDs found in it. Every regular file is content-scanned, so
// renamed or extensionless pointer files still count. Unreadable files
// and files without a recognizable ID are logged and skipped; a missing
// tree yields an empty set.
func scanDiskIDs(root, userID string, logger *slog.Logger) map[string]bool {
	ids := make(map[string]bool)
	userDir := filepath.Join(root, userID)

	err := filepath.WalkDir(userDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return filepath.SkipAll
			}
			logger.Warn("walk error", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			return nil
		}

		data, err := os.ReadFile(path) //#nosec G304 -- paths come from walking our own tree
		if err != nil {
			logger.Warn("read pointer file failed", "path", path, "error", err)
			return nil
		}

		m := pictureIDPattern.FindSubmatch(data)
		if m == nil {
			logger.Warn("pointer file has no picture id", "path", path)
			return nil
		}
		ids[string(m[1])] = true
		return nil
	})
	if err != nil {
		logger.Warn("walk failed", "dir", userDir, "error", err)
	}

	return ids
}
