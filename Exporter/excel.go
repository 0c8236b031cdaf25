package Exporter

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"ChecklistPro/Checklist"
	"ChecklistPro/Locales"
)

const (
	checklistSheet = "Checklist"
	templateSheet  = "Tasks"
)

// Workbook renders the whole document to an xlsx workbook: the four header
// label/value rows, a spacer, the column header row, then one row per task in
// list order with localized answer labels and group names.
func Workbook(doc *Checklist.Document, tr Locales.Translator) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(checklistSheet)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	rows := [][]interface{}{
		{tr.T("title"), doc.Header.Title},
		{tr.T("investorHeader"), doc.Header.Investor},
		{tr.T("contractorHeader"), doc.Header.Contractor},
		{tr.T("dateHeader"), doc.Header.Date},
		{}, // spacer
		{tr.T("task"), tr.T("answer"), tr.T("group")},
	}
	for _, task := range doc.Tasks {
		rows = append(rows, []interface{}{
			task.Text,
			tr.T(string(task.Answer)),
			doc.GroupName(task.GroupID, tr),
		})
	}

	for rowIndex, row := range rows {
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+1)
			f.SetCellValue(checklistSheet, cell, value)
		}
	}

	f.SetColWidth(checklistSheet, "A", "A", 60)
	f.SetColWidth(checklistSheet, "B", "B", 15)
	f.SetColWidth(checklistSheet, "C", "C", 20)

	if f.GetSheetName(0) != checklistSheet {
		f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing workbook to buffer: %w", err)
	}
	return &buf, nil
}

// Template renders the fixed two-row example sheet offered for download,
// independent of document state. Only the column headers are localized.
func Template(tr Locales.Translator) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(templateSheet)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	rows := [][]interface{}{
		{tr.T("task"), tr.T("group")},
		{"Pay electricity bill", "Finances"},
		{"Buy groceries", "Home"},
	}
	for rowIndex, row := range rows {
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+1)
			f.SetCellValue(templateSheet, cell, value)
		}
	}

	f.SetColWidth(templateSheet, "A", "A", 40)
	f.SetColWidth(templateSheet, "B", "B", 20)

	if f.GetSheetName(0) != templateSheet {
		f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing template to buffer: %w", err)
	}
	return &buf, nil
}
