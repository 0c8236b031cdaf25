package Importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// AcceptedExtensions are the upload extensions the import endpoint allows.
var AcceptedExtensions = []string{".xlsx", ".xls", ".csv"}

// Accepted reports whether the filename carries an accepted import extension.
func Accepted(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range AcceptedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ReadRows turns an uploaded file into rows of cells, dispatching on the file
// extension. Fully blank rows are dropped, matching how exports' spacer rows
// are skipped on re-import.
func ReadRows(filename string, r io.Reader) ([][]string, error) {
	if strings.ToLower(filepath.Ext(filename)) == ".csv" {
		return readCSV(r)
	}
	return readWorkbook(r)
}

func readWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return dropBlankRows(rows), nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return dropBlankRows(rows), nil
}

func dropBlankRows(rows [][]string) [][]string {
	var out [][]string
	for _, row := range rows {
		blank := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				blank = false
				break
			}
		}
		if !blank {
			out = append(out, row)
		}
	}
	return out
}
