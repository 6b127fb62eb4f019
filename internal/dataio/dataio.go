// Package dataio reads candidate matrices from CSV or JSON and writes
// estimated centers back out in the same formats.
package dataio

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/TrevorS/clusterest"
)

// Format is an on-disk matrix encoding.
type Format string

const (
	// FormatCSV is one point per line, comma separated. Lines starting
	// with '#' are comments. A header row is not allowed.
	FormatCSV Format = "csv"
	// FormatJSON is a JSON array of integer arrays.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want csv or json)", s)
	}
}

// Read decodes a matrix in format f from r.
func Read(r io.Reader, f Format) (clusterest.Matrix, error) {
	switch f {
	case FormatCSV:
		return ReadCSV(r)
	case FormatJSON:
		return ReadJSON(r)
	default:
		return clusterest.Matrix{}, fmt.Errorf("unknown format %q", f)
	}
}

// Write encodes m in format f to w.
func Write(w io.Writer, m clusterest.Matrix, f Format) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, m)
	case FormatJSON:
		return WriteJSON(w, m)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// ReadCSV parses integer rows. Every row must have the same number of fields
// and every value must fit in an int16.
func ReadCSV(r io.Reader) (clusterest.Matrix, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var rows [][]int16
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return clusterest.Matrix{}, fmt.Errorf("read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		row := make([]int16, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 16)
			if err != nil {
				return clusterest.Matrix{}, fmt.Errorf("read csv: line %d field %d: %w", line, j+1, err)
			}
			row[j] = int16(v)
		}
		rows = append(rows, row)
	}
	return clusterest.NewMatrix(rows)
}

// WriteCSV writes one row per line.
func WriteCSV(w io.Writer, m clusterest.Matrix) error {
	cw := csv.NewWriter(w)
	rec := make([]string, m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := range rec {
			rec[j] = strconv.Itoa(int(m.At(i, j)))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// ReadJSON parses a JSON array of integer arrays. Values outside the int16
// range are rejected by the decoder.
func ReadJSON(r io.Reader) (clusterest.Matrix, error) {
	var rows [][]int16
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return clusterest.Matrix{}, fmt.Errorf("read json: %w", err)
	}
	return clusterest.NewMatrix(rows)
}

// WriteJSON writes m as a JSON array of arrays followed by a newline. An empty
// matrix is written as [].
func WriteJSON(w io.Writer, m clusterest.Matrix) error {
	rows := m.ToSlices()
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
