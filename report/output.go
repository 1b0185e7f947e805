package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/xuri/excelize/v2"
)

// WriteTable renders a header row plus records as an aligned console table.
func WriteTable(w io.Writer, headers []string, records [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(headers, "\t")); err != nil {
		return err
	}
	for _, rec := range records {
		if _, err := fmt.Fprintln(tw, strings.Join(rec, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteCSV writes a header row plus records, one line per record.
func WriteCSV(w io.Writer, headers []string, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the report as a single-sheet workbook.
func WriteXLSX(path, sheet string, headers []string, records [][]string) error {
	f := excelize.NewFile()
	defer f.Close()
	if sheet == "" {
		sheet = "Report"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	row := func(n int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, n)
		if err != nil {
			return err
		}
		return f.SetSheetRow(sheet, cell, &values)
	}
	if err := row(1, headers); err != nil {
		return err
	}
	for i, rec := range records {
		if err := row(i+2, rec); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
