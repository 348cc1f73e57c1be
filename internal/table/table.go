// Package table renders typed rows through column descriptors: a field
// accessor plus header per column, over a statically known row type. It
// replaces stringly-typed field lookup with compile-time checked accessors.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Column describes one rendered column for rows of type T.
type Column[T any] struct {
	Key    string
	Header string
	Value  func(T) string
}

// Render writes a header row followed by one CSV record per row.
func Render[T any](w io.Writer, columns []Column[T], rows []T) error {
	cw := csv.NewWriter(w)

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("table: write header: %w", err)
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = col.Value(row)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("table: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
