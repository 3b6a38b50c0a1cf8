// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // DuckDB driver
)

// DuckDBSource reads the dataset through DuckDB's read_csv_auto, which
// sniffs delimiters, quoting and encodings that encoding/csv rejects.
type DuckDBSource struct {
	Path string
}

// NewDuckDBSource creates a DuckDB-backed source for path.
func NewDuckDBSource(path string) *DuckDBSource {
	return &DuckDBSource{Path: path}
}

// Name implements Source.
func (s *DuckDBSource) Name() string {
	return "duckdb"
}

// Read implements Source.
func (s *DuckDBSource) Read(ctx context.Context) (*Dataset, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close()

	// all_varchar keeps cell parsing identical to the CSV source.
	query := fmt.Sprintf(
		"SELECT * FROM read_csv_auto('%s', header = true, all_varchar = true)",
		escapeLiteral(s.Path),
	)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query dataset: %w", err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var table [][]string
	for rows.Next() {
		cells := make([]sql.NullString, len(header))
		dest := make([]any, len(header))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(table)+1, err)
		}

		record := make([]string, len(header))
		for i, c := range cells {
			if c.Valid {
				record[i] = c.String
			}
		}
		table = append(table, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return buildDataset(header, table)
}

func escapeLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
