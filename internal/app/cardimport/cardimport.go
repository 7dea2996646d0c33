// Package cardimport reads flashcards from spreadsheet files.
//
// Both formats use the same column order:
//
//	front | back | subject | difficulty | tags | notes
//
// Tags are separated by ';'. A first row whose first cell is "front" is
// treated as a header and skipped. Blank rows are ignored.
package cardimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
	"github.com/heartmarshall/studyquest-backend/internal/service/study"
)

// Format is a supported input file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ErrUnsupportedFormat is returned for files that are neither .xlsx nor .csv.
var ErrUnsupportedFormat = errors.New("unsupported import format")

const (
	colFront = iota
	colBack
	colSubject
	colDifficulty
	colTags
	colNotes
)

// RowError reports a row that could not be turned into a card.
// Row is 1-based as shown by spreadsheet editors.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string { return fmt.Sprintf("row %d: %v", e.Row, e.Err) }

// Result holds the valid cards and the rejected rows of one file.
type Result struct {
	Cards  []study.CreateCardInput
	Errors []RowError
}

// FormatFromFilename picks the format from the file extension.
func FormatFromFilename(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnsupportedFormat)
	}
}

// Parse reads all rows of r. sheet selects the worksheet of an xlsx file;
// empty means the first sheet. It is ignored for csv.
func Parse(r io.Reader, format Format, sheet string) (*Result, error) {
	var (
		rows [][]string
		err  error
	)
	switch format {
	case FormatXLSX:
		rows, err = readXLSX(r, sheet)
	case FormatCSV:
		rows, err = readCSV(r)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}
	return parseRows(rows), nil
}

func readXLSX(r io.Reader, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("xlsx has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

func parseRows(rows [][]string) *Result {
	res := &Result{}
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		if isBlank(row) {
			continue
		}

		input := rowToInput(row)
		if err := input.Validate(); err != nil {
			res.Errors = append(res.Errors, RowError{Row: i + 1, Err: err})
			continue
		}
		res.Cards = append(res.Cards, input)
	}
	return res
}

func rowToInput(row []string) study.CreateCardInput {
	return study.CreateCardInput{
		Front:      cell(row, colFront),
		Back:       cell(row, colBack),
		Subject:    cell(row, colSubject),
		Difficulty: domain.Difficulty(strings.ToLower(cell(row, colDifficulty))),
		Tags:       splitTags(cell(row, colTags)),
		Notes:      cell(row, colNotes),
	}
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(s, ";") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func isHeader(row []string) bool {
	return strings.EqualFold(cell(row, colFront), "front")
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
