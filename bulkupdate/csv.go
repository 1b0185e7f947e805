package bulkupdate

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Row is one data line of the input CSV.
type Row struct {
	Line         int
	Organization string
	Value        string
}

// ReadRows parses the input CSV. The header row must be exactly
// "organization,customfieldvalue"; anything else is a validation failure
// before any network call happens.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if len(header) != 2 || header[0] != "organization" || header[1] != "customfieldvalue" {
		return nil, fmt.Errorf("csv header must be exactly \"organization,customfieldvalue\"")
	}
	var rows []Row
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		line++
		rows = append(rows, Row{Line: line, Organization: rec[0], Value: rec[1]})
	}
	return rows, nil
}
