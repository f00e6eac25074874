package snapshot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/streamlens/streamlens-data/internal/config"
)

// ErrArchiveCollision is returned when the dated archive file for a snapshot
// key already exists. The date-token scheme makes this abnormal; the write
// for that key fails and is never overwritten.
var ErrArchiveCollision = errors.New("archive file already exists")

// Writer persists snapshot payloads to two sinks per key:
//
//   - archive: <base>/<YYYY>/<MM_YYYY>/<stat>_<media>_<DD_MM_YY>.json,
//     append-only, one file per run date;
//   - latest:  <base>/latest/<stat>_<media>_latest.json plus an upsert into
//     the stats table keyed (stat_type, media_type).
//
// The run timestamp is fixed at construction so every key of a run shares
// the same date token and created_at.
type Writer struct {
	baseDir string
	pool    *pgxpool.Pool // nil disables the database latest sink
	runDate time.Time
	logger  *slog.Logger
}

// NewWriter creates a Writer for a single pipeline run.
func NewWriter(baseDir string, pool *pgxpool.Pool, runDate time.Time, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{baseDir: baseDir, pool: pool, runDate: runDate, logger: logger}
}

// RunDate returns the timestamp all of this run's snapshots carry.
func (w *Writer) RunDate() time.Time { return w.runDate }

// Write persists one (stat_type, media_type) payload to both sinks. Sink
// failures are joined, not short-circuited, so a collision on the archive
// still lets the latest pointer advance and vice versa.
func (w *Writer) Write(ctx context.Context, statType string, media config.MediaKind, payload any) error {
	body, err := Marshal(payload)
	if err != nil {
		return err
	}

	var errs []error
	if err := w.writeArchive(statType, media, body); err != nil {
		errs = append(errs, err)
	}
	if err := w.writeLatest(ctx, statType, media, body); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// writeArchive creates the immutable dated file. O_EXCL guards the
// append-only invariant.
func (w *Writer) writeArchive(statType string, media config.MediaKind, body []byte) error {
	dir := filepath.Join(w.baseDir,
		w.runDate.Format("2006"),
		w.runDate.Format("01_2006"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s_%s.json", statType, media, w.runDate.Format("02_01_06"))
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrArchiveCollision, path)
		}
		return fmt.Errorf("create archive file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(body); err != nil {
		return fmt.Errorf("write archive file %s: %w", path, err)
	}
	return nil
}

// writeLatest overwrites the fixed-name latest file and upserts the stats
// row. Both are idempotent: a second write for the same key replaces, never
// duplicates.
func (w *Writer) writeLatest(ctx context.Context, statType string, media config.MediaKind, body []byte) error {
	dir := filepath.Join(w.baseDir, "latest")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create latest dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s_latest.json", statType, media))
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write latest file %s: %w", path, err)
	}

	if w.pool == nil {
		return nil
	}
	if _, err := w.pool.Exec(ctx, "upsert_latest_stat",
		statType, string(media), body, w.runDate); err != nil {
		return fmt.Errorf("upsert latest stat %s/%s: %w", statType, media, err)
	}
	return nil
}
