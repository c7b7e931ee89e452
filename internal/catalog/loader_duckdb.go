// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	// DuckDB driver, used in-memory to scan the dataset with read_csv
	_ "github.com/duckdb/duckdb-go/v2"
)

// LoadDuckDB reads the dataset through an in-memory DuckDB connection. Every
// column is read as VARCHAR so rows go through the same decoding and
// validation as the encoding/csv loader.
func LoadDuckDB(ctx context.Context, path string) ([]Song, LoadReport, error) {
	var report LoadReport

	if _, err := os.Stat(path); err != nil {
		return nil, report, &DataLoadError{Path: path, Err: err}
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, report, &DataLoadError{Path: path, Err: fmt.Errorf("open duckdb: %w", err)}
	}
	defer db.Close() //nolint:errcheck // in-memory database, nothing to flush

	source := fmt.Sprintf("read_csv(%s, header = true, all_varchar = true)", quoteLiteral(path))

	columns, err := describeColumns(ctx, db, source)
	if err != nil {
		return nil, report, &DataLoadError{Path: path, Err: err}
	}

	selectList := make([]string, len(RequiredColumns))
	for i, col := range RequiredColumns {
		actual, ok := columns[col]
		if !ok {
			return nil, report, &DataLoadError{Path: path, Column: col}
		}
		selectList[i] = quoteIdentifier(actual)
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(selectList, ", "), source)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, report, &DataLoadError{Path: path, Err: fmt.Errorf("scan dataset: %w", err)}
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	raw := make([]sql.NullString, len(RequiredColumns))
	dest := make([]any, len(raw))
	for i := range raw {
		dest[i] = &raw[i]
	}
	values := make([]string, len(RequiredColumns))

	songs := make([]Song, 0, 1024)
	row := 1
	for rows.Next() {
		row++
		report.Rows++
		if err := rows.Scan(dest...); err != nil {
			report.skip(row, err)
			continue
		}
		for i := range raw {
			values[i] = raw[i].String
		}
		song, err := decodeRow(values)
		if err != nil {
			report.skip(row, err)
			continue
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, report, &DataLoadError{Path: path, Err: fmt.Errorf("iterate rows: %w", err)}
	}
	return songs, report, nil
}

// describeColumns maps normalized header names to the names DuckDB detected.
func describeColumns(ctx context.Context, db *sql.DB, source string) (map[string]string, error) {
	rows, err := db.QueryContext(ctx, "DESCRIBE SELECT * FROM "+source)
	if err != nil {
		return nil, fmt.Errorf("describe dataset: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("describe dataset: %w", err)
	}

	columns := make(map[string]string)
	for rows.Next() {
		// DESCRIBE returns column_name first; the rest is type metadata.
		fields := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range fields {
			dest[i] = &fields[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("describe dataset: %w", err)
		}
		name := fields[0].String
		key := normalizeHeader(name)
		if _, seen := columns[key]; !seen {
			columns[key] = name
		}
	}
	return columns, rows.Err()
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteIdentifier(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
