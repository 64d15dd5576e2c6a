// Package postgres implements a corpus.Provider backed by PostgreSQL. It is
// read-only with respect to the search core: Snapshot scans the current
// rows into a corpus.Snapshot and the index is rebuilt from that snapshot
// entirely in memory, giving the core no disk persistence of its own.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pkgsearch/search-core/corpus"
)

// Columns names the packages-table columns to pull into each document's
// Fields and OrderingFields, letting the provider stay agnostic of any one
// field-collection's schema.
type Columns struct {
	// FieldColumns map a packages-table text column to the Fields key it
	// becomes, e.g. {"name": "name", "readme_text": "readme"}.
	FieldColumns map[string]string
	// OrderingColumns map a packages-table numeric column to the
	// OrderingFields key it becomes, e.g. {"like_count": "likes"}.
	OrderingColumns map[string]string
}

// Provider queries a packages table and a package_tags table and streams
// the result into a corpus.Snapshot.
type Provider struct {
	pool    *pgxpool.Pool
	columns Columns
}

// Open connects to databaseURL and returns a ready Provider.
func Open(ctx context.Context, databaseURL string, columns Columns) (*Provider, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 1
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Provider{pool: pool, columns: columns}, nil
}

// Close releases the connection pool.
func (p *Provider) Close() {
	p.pool.Close()
}

// Snapshot queries packages and package_tags and assembles a corpus.Snapshot.
func (p *Provider) Snapshot(ctx context.Context) (corpus.Snapshot, error) {
	snapshot, err := p.scanPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("scanning packages: %w", err)
	}

	if err := p.attachTags(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("scanning package_tags: %w", err)
	}

	return snapshot, nil
}

func (p *Provider) scanPackages(ctx context.Context) (corpus.Snapshot, error) {
	query, selected := p.buildPackagesQuery()

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshot := make(corpus.Snapshot)
	for rows.Next() {
		doc, err := scanDocument(rows, selected, p.columns)
		if err != nil {
			return nil, err
		}
		snapshot[doc.ID] = doc
	}
	return snapshot, rows.Err()
}

// selectedColumn is one packages-table column pulled out of the row, with
// the document key it maps to and whether it's a field or ordering column.
type selectedColumn struct {
	docKey   string
	ordering bool
}

func (p *Provider) buildPackagesQuery() (string, []selectedColumn) {
	selected := []selectedColumn{}
	cols := "id"
	for column, key := range p.columns.FieldColumns {
		cols += ", " + column
		selected = append(selected, selectedColumn{docKey: key, ordering: false})
	}
	for column, key := range p.columns.OrderingColumns {
		cols += ", " + column
		selected = append(selected, selectedColumn{docKey: key, ordering: true})
	}
	return "SELECT " + cols + " FROM packages", selected
}

func scanDocument(rows pgx.Rows, selected []selectedColumn, columns Columns) (corpus.Document, error) {
	doc := corpus.Document{
		Fields:         make(map[string]string, len(columns.FieldColumns)),
		Tags:           make(map[string]struct{}),
		OrderingFields: make(map[string]float64, len(columns.OrderingColumns)),
	}

	// One scan target per selected column, in the same order buildPackagesQuery
	// listed them: a *string for a field column, a *float64 for an ordering
	// column.
	targets := make([]any, len(selected))
	for i, col := range selected {
		if col.ordering {
			targets[i] = new(float64)
		} else {
			targets[i] = new(string)
		}
	}

	values := append([]any{&doc.ID}, targets...)
	if err := rows.Scan(values...); err != nil {
		return corpus.Document{}, err
	}

	for i, col := range selected {
		if col.ordering {
			doc.OrderingFields[col.docKey] = *targets[i].(*float64)
		} else {
			doc.Fields[col.docKey] = *targets[i].(*string)
		}
	}
	return doc, nil
}

func (p *Provider) attachTags(ctx context.Context, snapshot corpus.Snapshot) error {
	rows, err := p.pool.Query(ctx, "SELECT package_id, tag FROM package_tags")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var packageID, tag string
		if err := rows.Scan(&packageID, &tag); err != nil {
			return err
		}
		doc, ok := snapshot[packageID]
		if !ok {
			continue
		}
		doc.Tags[tag] = struct{}{}
	}
	return rows.Err()
}
