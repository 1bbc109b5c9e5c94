package catalogsrc

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/omx-assistant/internal/domain/faq"
)

const loadEntriesQuery = `
	SELECT id, question, answer
	FROM faq_entries
	ORDER BY position, id
`

// PostgresSource loads the catalog from the faq_entries table.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource constructs the source over an existing pool.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

func (s *PostgresSource) Name() string { return "postgres:faq_entries" }

func (s *PostgresSource) Load(ctx context.Context) ([]faq.Entry, error) {
	rows, err := s.pool.Query(ctx, loadEntriesQuery)
	if err != nil {
		return nil, fmt.Errorf("query faq entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

type rowIterator interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEntries(rows rowIterator) ([]faq.Entry, error) {
	var entries []faq.Entry
	for rows.Next() {
		var entry faq.Entry
		if err := rows.Scan(&entry.ID, &entry.Question, &entry.Answer); err != nil {
			return nil, fmt.Errorf("scan faq entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

var (
	_ faq.CatalogSource = (*PostgresSource)(nil)
	_ rowIterator       = (pgx.Rows)(nil)
)
