package index

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"hara/internal/catalog"
)

var paperColumns = []string{"position", "id", "title", "subject", "abstract", "meta", "pdf", "title_fold", "abstract_fold"}

// Build describes one recorded Rebuild.
type Build struct {
	RunID   string
	BuiltAt time.Time
	Records int
}

// Rebuild replaces the indexed records with c, preserving catalog order. The
// previous contents stay visible until the transaction commits.
func (s *Store) Rebuild(ctx context.Context, runID string, c catalog.Catalog) error {
	ctx = ensureContext(ctx)
	return retryOnBusy(ctx, func() error {
		return s.rebuild(ctx, runID, c)
	})
}

func (s *Store) rebuild(ctx context.Context, runID string, c catalog.Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rebuild tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM papers"); err != nil {
		return fmt.Errorf("clear papers: %w", err)
	}
	for position, rec := range c {
		if err := insertRecord(ctx, tx, position, rec); err != nil {
			return err
		}
	}

	query, args, err := sq.Insert("builds").
		Columns("run_id", "built_at", "records").
		Values(runID, time.Now().UTC().Format(time.RFC3339Nano), len(c)).
		Suffix("ON CONFLICT(run_id) DO UPDATE SET built_at = excluded.built_at, records = excluded.records").
		ToSql()
	if err != nil {
		return fmt.Errorf("build history query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("record build: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rebuild: %w", err)
	}
	return nil
}

func insertRecord(ctx context.Context, tx *sql.Tx, position int, rec catalog.Record) error {
	query, args, err := sq.Insert("papers").
		Columns(paperColumns...).
		Values(position, rec.ID, rec.Title, rec.Subject, rec.Abstract, rec.Meta, rec.PDF,
			catalog.Fold(rec.Title), catalog.Fold(rec.Abstract)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert %q: %w", rec.ID, err)
	}
	return nil
}

// LastBuild returns the most recent recorded Rebuild. ok is false when the
// index has never been built.
func (s *Store) LastBuild(ctx context.Context) (Build, bool, error) {
	ctx = ensureContext(ctx)
	query, args, err := sq.Select("run_id", "built_at", "records").
		From("builds").
		OrderBy("rowid DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return Build{}, false, fmt.Errorf("build history query: %w", err)
	}

	var (
		build   Build
		builtAt string
	)
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&build.RunID, &builtAt, &build.Records)
	if err == sql.ErrNoRows {
		return Build{}, false, nil
	}
	if err != nil {
		return Build{}, false, fmt.Errorf("read last build: %w", err)
	}
	build.BuiltAt, err = time.Parse(time.RFC3339Nano, builtAt)
	if err != nil {
		return Build{}, false, fmt.Errorf("parse build time: %w", err)
	}
	return build, true, nil
}
