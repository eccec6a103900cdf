package index

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"hara/internal/catalog"
)

// Search returns indexed records matching q in catalog order, with the same
// semantics as catalog.Query.Matches.
func (s *Store) Search(ctx context.Context, q catalog.Query) (catalog.Catalog, error) {
	ctx = ensureContext(ctx)

	builder := sq.Select("id", "title", "subject", "abstract", "meta", "pdf").
		From("papers").
		OrderBy("position")
	if q.Subject != "" {
		builder = builder.Where(sq.Eq{"subject": q.Subject})
	}
	if q.Text != "" {
		needle := catalog.Fold(q.Text)
		builder = builder.Where(sq.Or{
			sq.Expr("instr(title_fold, ?) > 0", needle),
			sq.Expr("instr(abstract_fold, ?) > 0", needle),
		})
	}
	if q.Limit > 0 {
		builder = builder.Limit(uint64(q.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search papers: %w", err)
	}
	defer rows.Close()

	out := catalog.Catalog{}
	for rows.Next() {
		var rec catalog.Record
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Subject, &rec.Abstract, &rec.Meta, &rec.PDF); err != nil {
			return nil, fmt.Errorf("scan paper: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate papers: %w", err)
	}
	return out, nil
}

// Count returns the number of indexed records.
func (s *Store) Count(ctx context.Context) (int, error) {
	ctx = ensureContext(ctx)
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM papers").Scan(&count); err != nil {
		return 0, fmt.Errorf("count papers: %w", err)
	}
	return count, nil
}
