// Package csvstore implements read-only repositories over flat CSV files.
// The files are the system's only data source: they are opened, read fully,
// and closed within a single call, and nothing is ever written back.
package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"retail/internal/pkg/errs"
)

// ReadRecords reads all data rows from the CSV file at path.
// The first row must be a header matching expectedHeader (case-insensitive);
// every data row must have the same number of fields as the header.
//
// A missing file, a missing or mismatched header, or a malformed row fails
// the whole read. The file handle is scoped to the call.
func ReadRecords(path string, expectedHeader []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(expectedHeader)

	header, err := reader.Read()
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"header",
			fmt.Errorf("%s: header row required: %w", path, err),
		)
	}
	for i, want := range expectedHeader {
		if got := strings.ToLower(strings.TrimSpace(header[i])); got != want {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"header",
				fmt.Errorf("%s: column %d is %q, want %q", path, i, header[i], want),
			)
		}
	}

	return reader.ReadAll()
}
