// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Source reads a raw activity table.
type Source interface {
	// Read returns the raw dataset. Implementations must honor ctx cancellation.
	Read(ctx context.Context) (*Dataset, error)

	// Name identifies the source in logs and metrics.
	Name() string
}

// column identifies one logical dataset column.
type column int

const (
	colName column = iota
	colCategory
	colPrice
	colParticipants
	colDescription
)

// columnAliases maps normalized header names to logical columns.
var columnAliases = map[string]column{
	"activity":     colName,
	"name":         colName,
	"type":         colCategory,
	"category":     colCategory,
	"price":        colPrice,
	"cost":         colPrice,
	"participants": colParticipants,
	"group size":   colParticipants,
	"group_size":   colParticipants,
	"description":  colDescription,
	"summary":      colDescription,
}

// normalizeHeader canonicalizes a header cell for alias lookup.
func normalizeHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = norm.NFKC.String(s)
	s = cases.Fold().String(s)
	return strings.Join(strings.Fields(s), " ")
}

// resolveColumns maps each logical column to its index in header.
// The first matching header wins.
func resolveColumns(header []string) map[column]int {
	idx := make(map[column]int)
	for i, h := range header {
		col, ok := columnAliases[normalizeHeader(h)]
		if !ok {
			continue
		}
		if _, dup := idx[col]; !dup {
			idx[col] = i
		}
	}
	return idx
}

// buildDataset converts a header and string rows into a Dataset.
// Fully blank rows are skipped. Unparsable or empty numeric cells become 0.
func buildDataset(header []string, rows [][]string) (*Dataset, error) {
	idx := resolveColumns(header)
	nameIdx, ok := idx[colName]
	if !ok {
		return nil, fmt.Errorf("%w: Activity", ErrMissingColumn)
	}

	_, hasCategory := idx[colCategory]
	_, hasPrice := idx[colPrice]
	_, hasParticipants := idx[colParticipants]
	_, hasDescription := idx[colDescription]

	ds := &Dataset{
		Records:         make([]Record, 0, len(rows)),
		HasCategory:     hasCategory,
		HasPrice:        hasPrice,
		HasParticipants: hasParticipants,
		HasDescription:  hasDescription,
	}

	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		rec := Record{
			Name:         cell(row, nameIdx),
			Category:     optionalCell(row, idx, colCategory),
			Price:        parseNumber(optionalCell(row, idx, colPrice)),
			Participants: parseNumber(optionalCell(row, idx, colParticipants)),
			Description:  optionalCell(row, idx, colDescription),
		}
		ds.Records = append(ds.Records, rec)
	}

	if len(ds.Records) == 0 {
		return nil, ErrEmptyDataset
	}
	return ds, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func optionalCell(row []string, idx map[column]int, col column) string {
	i, ok := idx[col]
	if !ok {
		return ""
	}
	return cell(row, i)
}

// parseNumber parses a numeric cell, tolerating a leading currency sign
// and thousands separators. Anything else yields 0.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "$€£")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
