package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"orcidscout/internal/lookup"
	"orcidscout/internal/services"
)

// ErrColumnNotFound reports a requested column missing from the header row.
var ErrColumnNotFound = errors.New("column not found")

// ReadOptions selects which part of the input table holds author ids.
type ReadOptions struct {
	// Column is the header of the author id column. Empty selects the first column.
	Column string
	// Sheet is the workbook sheet to read. Empty selects the first sheet.
	Sheet string
}

// ReadAuthors loads author ids from a .csv or .xlsx file. The first row is the
// header. Rows with only blank cells are skipped; all other rows produce one
// InputRow each, in file order.
func ReadAuthors(path string, opts ReadOptions) ([]lookup.InputRow, error) {
	var (
		records [][]string
		err     error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		records, err = readCSV(path)
	case ".xlsx", ".xlsm":
		records, err = readWorkbook(path, opts.Sheet)
	default:
		return nil, services.Wrap(services.ErrValidation, "tabular", "read input",
			fmt.Sprintf("unsupported input type %q (use .csv or .xlsx)", ext), nil)
	}
	if err != nil {
		return nil, err
	}
	return authorRows(records, opts.Column)
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := csv.NewReader(transform.NewReader(file, decoder))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, services.Wrap(services.ErrDecode, "tabular", "read csv", filepath.Base(path), err)
	}
	return records, nil
}

func readWorkbook(path, sheet string) ([][]string, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer book.Close()

	if sheet == "" {
		sheets := book.GetSheetList()
		if len(sheets) == 0 {
			return nil, services.Wrap(services.ErrValidation, "tabular", "read workbook", "workbook has no sheets", nil)
		}
		sheet = sheets[0]
	}
	if idx, err := book.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, services.Wrap(services.ErrValidation, "tabular", "read workbook",
			fmt.Sprintf("sheet %q not found", sheet), err)
	}
	// Raw values keep long numeric ids from being rendered in scientific notation.
	rows, err := book.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, services.Wrap(services.ErrDecode, "tabular", "read workbook", sheet, err)
	}
	return rows, nil
}

func authorRows(records [][]string, column string) ([]lookup.InputRow, error) {
	if len(records) == 0 {
		return nil, services.Wrap(services.ErrValidation, "tabular", "read input", "input has no header row", nil)
	}
	idx, err := columnIndex(records[0], column)
	if err != nil {
		return nil, err
	}

	rows := make([]lookup.InputRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if blank(record) {
			continue
		}
		var value string
		if idx < len(record) {
			value = strings.TrimSpace(record[idx])
		}
		rows = append(rows, lookup.InputRow{AuthorID: value})
	}
	return rows, nil
}

func columnIndex(header []string, column string) (int, error) {
	column = strings.TrimSpace(column)
	if column == "" {
		return 0, nil
	}
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), column) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (available: %s)", ErrColumnNotFound, column, strings.Join(header, ", "))
}

func blank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
