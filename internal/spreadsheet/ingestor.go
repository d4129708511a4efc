// Package spreadsheet parses uploaded contact files (xlsx, xls, csv)
// into a header list plus raw rows for the extraction pipeline. Parsing
// is all-or-nothing: a malformed file yields a single error and no
// partial result.
package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ignite/mersal-sms/internal/contacts"
)

// Sheet is the parsed form of an uploaded file: the header row plus one
// RawRow per data row, keyed by header.
type Sheet struct {
	Headers []string
	Rows    []contacts.RawRow
}

// Parse reads an uploaded file and returns its headers and rows. The
// format is chosen by file extension; anything that is not .csv is
// handed to excelize, which covers xlsx and legacy xls workbooks.
func Parse(r io.Reader, filename string) (*Sheet, error) {
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		return parseCSV(r)
	}
	return parseWorkbook(r)
}

func parseWorkbook(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, ErrEmptyFile
	}

	// Only the first sheet is used; the upload UI promises as much.
	rows, err := f.GetRows(sheetList[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	return buildSheet(rows)
}

func parseCSV(r io.Reader) (*Sheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are tolerated

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	return buildSheet(records)
}

// buildSheet converts a raw cell grid into headers + keyed rows. The
// first row is always the header row. Columns with a blank header are
// dropped; rows with no non-empty cells are skipped.
func buildSheet(grid [][]string) (*Sheet, error) {
	if len(grid) == 0 {
		return nil, ErrEmptyFile
	}

	var headers []string
	headerIdx := map[int]string{}
	for i, h := range grid[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		headers = append(headers, h)
		headerIdx[i] = h
	}
	if len(headers) == 0 {
		return nil, ErrNoHeaders
	}

	var rows []contacts.RawRow
	for _, record := range grid[1:] {
		row := contacts.RawRow{}
		hasData := false
		for i, cell := range record {
			header, ok := headerIdx[i]
			if !ok {
				continue
			}
			row[header] = cell
			if strings.TrimSpace(cell) != "" {
				hasData = true
			}
		}
		if hasData {
			rows = append(rows, row)
		}
	}

	return &Sheet{Headers: headers, Rows: rows}, nil
}
