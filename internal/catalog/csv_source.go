// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// CSVSource reads the dataset with encoding/csv.
type CSVSource struct {
	Path string
}

// NewCSVSource creates a CSV source for path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

// Name implements Source.
func (s *CSVSource) Name() string {
	return "csv"
}

// Read implements Source.
func (s *CSVSource) Read(ctx context.Context) (*Dataset, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return readCSV(ctx, f)
}

func readCSV(ctx context.Context, r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDataset
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, record)
	}

	return buildDataset(header, rows)
}
