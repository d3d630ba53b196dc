package tabular

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"orcidscout/internal/lookup"
)

// Output formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)

// Columns is the header of every results file.
var Columns = []string{"author_id", "name", "orcid", "affiliated"}

const resultsSheet = "Results"

// Record is the serialized form of one result row.
type Record struct {
	AuthorID   string `json:"author_id"`
	Name       string `json:"name"`
	ORCID      string `json:"orcid"`
	Affiliated string `json:"affiliated"`
}

// Records converts result rows to their serialized form.
func Records(rows []lookup.ResultRow) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, Record{
			AuthorID:   row.AuthorID,
			Name:       row.Name,
			ORCID:      row.ORCIDCell(),
			Affiliated: row.Affiliation.String(),
		})
	}
	return records
}

func (r Record) cells() []string {
	return []string{r.AuthorID, r.Name, r.ORCID, r.Affiliated}
}

// FormatForPath infers the output format from the file extension, returning
// fallback for unknown extensions.
func FormatForPath(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".xlsx":
		return FormatXLSX
	case ".json":
		return FormatJSON
	default:
		return fallback
	}
}

// WriteResults serializes rows to w in the given format.
func WriteResults(w io.Writer, format string, rows []lookup.ResultRow) error {
	records := Records(rows)
	switch strings.ToLower(format) {
	case FormatCSV, "":
		return writeCSV(w, records)
	case FormatXLSX:
		return writeWorkbook(w, records)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func writeCSV(w io.Writer, records []Record) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Columns); err != nil {
		return err
	}
	for _, record := range records {
		if err := writer.Write(record.cells()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeWorkbook(w io.Writer, records []Record) error {
	book := excelize.NewFile()
	defer book.Close()

	if err := book.SetSheetName(book.GetSheetName(0), resultsSheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	header := make([]any, len(Columns))
	for i, name := range Columns {
		header[i] = name
	}
	if err := book.SetSheetRow(resultsSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := book.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := book.SetRowStyle(resultsSheet, 1, 1, bold); err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := record.cells()
		row := make([]any, len(values))
		for j, value := range values {
			row[j] = value
		}
		if err := book.SetSheetRow(resultsSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if err := book.SetColWidth(resultsSheet, "A", "D", 24); err != nil {
		return fmt.Errorf("column width: %w", err)
	}
	if err := book.SetColWidth(resultsSheet, "C", "C", 42); err != nil {
		return fmt.Errorf("column width: %w", err)
	}
	_, err = book.WriteTo(w)
	return err
}
