package Exporter

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"ChecklistPro/Checklist"
	"ChecklistPro/Locales"
)

const (
	pageMargin     = 15.0
	answerColWidth = 30.0
	rowHeight      = 8.0
	// A table whose heading would start below this line moves to a new page.
	tableBreakY = 265.0
	// A row that would cross this line pushes the rest of the table to a new
	// page, repeating the column header there.
	rowBreakY = 277.0
)

type fillColor struct{ r, g, b int }

// Answer cell fills are keyed by the underlying answer value, not its
// localized label.
var answerFills = map[Checklist.Answer]fillColor{
	Checklist.AnswerYes: {40, 167, 69},
	Checklist.AnswerNo:  {220, 53, 69},
	Checklist.AnswerNA:  {108, 117, 125},
}

type pdfRenderer struct {
	pdf       *gofpdf.Fpdf
	tr        Locales.Translator
	translate func(string) string
	pageWidth float64
	y         float64
}

// PDF renders the document as a paginated file: title line, investor and
// contractor block, right-aligned date, then one bordered table per partition
// with the ungrouped tasks first and empty groups skipped.
func PDF(doc *Checklist.Document, tr Locales.Translator) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pageWidth, _ := pdf.GetPageSize()
	r := &pdfRenderer{
		pdf: pdf,
		tr:  tr,
		// Core fonts are single-byte; cp1250 covers the Polish locale.
		translate: pdf.UnicodeTranslatorFromDescriptor("cp1250"),
		pageWidth: pageWidth,
	}
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	r.drawHeader(doc.Header)
	r.y = 45

	for _, section := range doc.Sections(Checklist.FilterAll) {
		if len(section.Tasks) == 0 {
			continue
		}
		title := tr.T("uncategorized")
		if section.Group != nil {
			title = section.Group.Name
		}
		r.drawTable(title, section.Tasks, section.Group != nil)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error rendering pdf: %w", err)
	}
	return &buf, nil
}

func (r *pdfRenderer) drawHeader(h Checklist.HeaderData) {
	r.pdf.SetFont("Helvetica", "B", 22)
	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.Text(pageMargin, 20, r.translate(h.Title))

	r.pdf.SetFont("Helvetica", "", 11)
	r.pdf.SetTextColor(100, 100, 100)
	r.pdf.Text(pageMargin, 30, r.translate(r.tr.T("investorHeader")+" "+h.Investor))
	r.pdf.Text(pageMargin, 35, r.translate(r.tr.T("contractorHeader")+" "+h.Contractor))

	date := r.translate(r.tr.T("dateHeader") + " " + h.Date)
	r.pdf.Text(r.pageWidth-pageMargin-r.pdf.GetStringWidth(date), 30, date)
}

func (r *pdfRenderer) drawTable(title string, tasks []Checklist.Task, grouped bool) {
	if r.y > tableBreakY {
		r.pdf.AddPage()
		r.y = 20
	}

	r.pdf.SetFont("Helvetica", "B", 14)
	r.pdf.SetTextColor(40, 40, 40)
	r.pdf.Text(pageMargin, r.y, r.translate(title))
	r.y += 2

	taskWidth := r.pageWidth - 2*pageMargin - answerColWidth
	r.drawColumnHeader(taskWidth, grouped)

	r.pdf.SetFont("Helvetica", "", 10)
	for i, task := range tasks {
		lines := r.pdf.SplitText(r.translate(task.Text), taskWidth-4)
		height := float64(len(lines))*5 + 3
		if height < rowHeight {
			height = rowHeight
		}
		if r.y+height > rowBreakY {
			r.pdf.AddPage()
			r.y = 20
			r.drawColumnHeader(taskWidth, grouped)
			r.pdf.SetFont("Helvetica", "", 10)
		}
		r.drawRow(task, lines, taskWidth, height, i%2 == 1)
	}

	r.y += 15
}

func (r *pdfRenderer) drawColumnHeader(taskWidth float64, grouped bool) {
	if grouped {
		r.pdf.SetFillColor(22, 160, 133)
	} else {
		r.pdf.SetFillColor(52, 73, 94)
	}
	r.pdf.SetDrawColor(200, 200, 200)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Helvetica", "B", 10)
	r.pdf.SetXY(pageMargin, r.y)
	r.pdf.CellFormat(taskWidth, rowHeight, r.translate(r.tr.T("task")), "1", 0, "L", true, 0, "")
	r.pdf.CellFormat(answerColWidth, rowHeight, r.translate(r.tr.T("answer")), "1", 1, "C", true, 0, "")
	r.y += rowHeight
}

func (r *pdfRenderer) drawRow(task Checklist.Task, lines []string, taskWidth, height float64, striped bool) {
	if striped {
		r.pdf.SetFillColor(245, 245, 245)
	} else {
		r.pdf.SetFillColor(255, 255, 255)
	}

	r.pdf.Rect(pageMargin, r.y, taskWidth, height, "FD")
	r.pdf.SetTextColor(0, 0, 0)
	for j, line := range lines {
		r.pdf.Text(pageMargin+2, r.y+5.5+float64(j)*5, line)
	}

	answerX := pageMargin + taskWidth
	if fill, ok := answerFills[task.Answer]; ok {
		r.pdf.SetFillColor(fill.r, fill.g, fill.b)
		r.pdf.SetTextColor(255, 255, 255)
	} else {
		r.pdf.SetTextColor(0, 0, 0)
	}
	r.pdf.Rect(answerX, r.y, answerColWidth, height, "FD")
	label := r.translate(r.tr.T(string(task.Answer)))
	r.pdf.Text(answerX+(answerColWidth-r.pdf.GetStringWidth(label))/2, r.y+height/2+1.5, label)

	r.y += height
}
