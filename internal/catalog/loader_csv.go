// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadReport counts what a loader saw.
type LoadReport struct {
	Rows    int // data rows read, excluding the header
	Skipped int // rows rejected as malformed
	// FirstErrors keeps up to maxReportedErrors row errors for the log.
	FirstErrors []string
}

const maxReportedErrors = 5

func (r *LoadReport) skip(row int, err error) {
	r.Skipped++
	if len(r.FirstErrors) < maxReportedErrors {
		r.FirstErrors = append(r.FirstErrors, fmt.Sprintf("row %d: %v", row, err))
	}
}

// LoadCSV reads the dataset at path with encoding/csv.
func LoadCSV(path string) ([]Song, LoadReport, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, LoadReport{}, &DataLoadError{Path: path, Err: err}
	}
	defer f.Close()
	return ReadCSV(f, path)
}

// ReadCSV decodes a dataset from r. name is only used in errors. Columns are
// matched by header name, so extra columns and any column order are accepted.
func ReadCSV(r io.Reader, name string) ([]Song, LoadReport, error) {
	var report LoadReport

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty file")
		}
		return nil, report, &DataLoadError{Path: name, Err: err}
	}

	positions := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, seen := positions[key]; !seen {
			positions[key] = i
		}
	}
	columns := make([]int, len(RequiredColumns))
	for i, col := range RequiredColumns {
		pos, ok := positions[col]
		if !ok {
			return nil, report, &DataLoadError{Path: name, Column: col}
		}
		columns[i] = pos
	}

	songs := make([]Song, 0, 1024)
	values := make([]string, len(RequiredColumns))
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				report.Rows++
				report.skip(line, err)
				continue
			}
			return nil, report, &DataLoadError{Path: name, Err: err}
		}
		report.Rows++

		short := false
		for i, pos := range columns {
			if pos >= len(record) {
				short = true
				break
			}
			values[i] = record[pos]
		}
		if short {
			report.skip(line, fmt.Errorf("expected at least %d fields, got %d", len(header), len(record)))
			continue
		}

		song, err := decodeRow(values)
		if err != nil {
			report.skip(line, err)
			continue
		}
		songs = append(songs, song)
	}
	return songs, report, nil
}
