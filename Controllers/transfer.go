package Controllers

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"

	"ChecklistPro/Checklist"
	"ChecklistPro/Exporter"
	"ChecklistPro/Importer"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TransferController handles the import and export endpoints.
type TransferController struct {
	Service *DocumentService
}

// NewTransferController creates a new TransferController
func NewTransferController(service *DocumentService) *TransferController {
	return &TransferController{Service: service}
}

// Import accepts an uploaded .xlsx/.xls/.csv file and merges its tasks and
// groups into the document. Structural failures leave the document unchanged
// and come back as localized notices.
func (c *TransferController) Import(ctx *fiber.Ctx) error {
	tr := c.Service.Translator(ctx.Query("lang"))

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"notice": tr.T("fileReadError")})
	}
	if !Importer.Accepted(fileHeader.Filename) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"notice": tr.T("importError")})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"notice": tr.T("fileReadError")})
	}
	defer src.Close()

	rows, err := Importer.ReadRows(fileHeader.Filename, src)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"notice": tr.T("importError")})
	}

	report, persistErr, importErr := c.Service.ImportRows(rows, tr)
	if importErr != nil {
		switch {
		case errors.Is(importErr, Importer.ErrEmptyFile):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"notice": tr.T("importEmptyFile")})
		case errors.Is(importErr, Importer.ErrNoNewTasks):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"notice": tr.T("importNoNewTasks")})
		default:
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"notice": tr.T("importError")})
		}
	}

	notice := storageNotice(persistErr, tr)
	if report.Duplicates > 0 {
		notice = tr.T("importSomeExist")
	}
	return ctx.JSON(fiber.Map{
		"added":         report.Added,
		"duplicates":    report.Duplicates,
		"groupsCreated": report.GroupsCreated,
		"headerUpdated": report.HeaderUpdated,
		"notice":        notice,
	})
}

// ExportExcel streams the document as an xlsx workbook.
func (c *TransferController) ExportExcel(ctx *fiber.Ctx) error {
	tr := c.Service.Translator(ctx.Query("lang"))

	var buf *bytes.Buffer
	var exportErr error
	empty := false
	c.Service.Read(func(doc *Checklist.Document) {
		if len(doc.Tasks) == 0 {
			empty = true
			return
		}
		buf, exportErr = Exporter.Workbook(doc, tr)
	})

	if empty {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"notice": tr.T("noTasksToExport")})
	}
	if exportErr != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate workbook"})
	}

	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="checklist.xlsx"`)
	return ctx.Send(buf.Bytes())
}

// ExportPDF streams the document as a paginated PDF, named after the document
// title.
func (c *TransferController) ExportPDF(ctx *fiber.Ctx) error {
	tr := c.Service.Translator(ctx.Query("lang"))

	var buf *bytes.Buffer
	var exportErr error
	empty := false
	filename := "checklist"
	c.Service.Read(func(doc *Checklist.Document) {
		if len(doc.Tasks) == 0 {
			empty = true
			return
		}
		filename = Exporter.SafeFilename(doc.Header.Title)
		buf, exportErr = Exporter.PDF(doc, tr)
	})

	if empty {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"notice": tr.T("noTasksToExport")})
	}
	if exportErr != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"notice": tr.T("pdfError")})
	}

	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`.pdf"`)
	return ctx.Send(buf.Bytes())
}

// Template streams the fixed two-row example workbook, independent of the
// current document.
func (c *TransferController) Template(ctx *fiber.Ctx) error {
	tr := c.Service.Translator(ctx.Query("lang"))

	buf, err := Exporter.Template(tr)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate template"})
	}

	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="checklist_template.xlsx"`)
	return ctx.Send(buf.Bytes())
}
