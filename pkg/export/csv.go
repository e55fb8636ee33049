// Package export renders the dashboard datasets as CSV documents and as a
// styled multi-sheet XLSX workbook.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/mountainpath/nifty-dashboard/internal/dataset"
)

// CSV renders one dataset table as a CSV document with a header row. The
// output is deterministic: encoding the same table twice yields identical
// bytes, and parsing the output reproduces the table's cells exactly.
func CSV(table dataset.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(table.Columns); err != nil {
		return nil, fmt.Errorf("write header for %s: %w", table.Name, err)
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return nil, fmt.Errorf("write rows for %s: %w", table.Name, err)
	}

	return buf.Bytes(), nil
}
