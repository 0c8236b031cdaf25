package Controllers

import (
	"github.com/gofiber/fiber/v2"

	"ChecklistPro/Checklist"
	"ChecklistPro/Validation"
)

// headerInput carries individually editable header fields; absent fields stay
// untouched.
type headerInput struct {
	Title      *string `json:"title"`
	Investor   *string `json:"investor"`
	Contractor *string `json:"contractor"`
	Date       *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// HeaderController handles the document metadata block.
type HeaderController struct {
	Service  *DocumentService
	Validate *Validation.Validator
}

// NewHeaderController creates a new HeaderController
func NewHeaderController(service *DocumentService, validate *Validation.Validator) *HeaderController {
	return &HeaderController{Service: service, Validate: validate}
}

// GetHeader returns the current header metadata.
func (c *HeaderController) GetHeader(ctx *fiber.Ctx) error {
	var header Checklist.HeaderData
	c.Service.Read(func(doc *Checklist.Document) {
		header = doc.Header
	})
	return ctx.JSON(header)
}

// UpdateHeader edits header fields individually. Fields are never removed,
// only overwritten; the bulk clear endpoint is the only way back to defaults.
func (c *HeaderController) UpdateHeader(ctx *fiber.Ctx) error {
	var input headerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tr := c.Service.Translator(ctx.Query("lang"))
	if messages := c.Validate.Struct(input, tr.Language()); messages != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": messages})
	}

	var header Checklist.HeaderData
	persistErr := c.Service.Mutate(func(doc *Checklist.Document) {
		if input.Title != nil {
			doc.Header.Title = *input.Title
		}
		if input.Investor != nil {
			doc.Header.Investor = *input.Investor
		}
		if input.Contractor != nil {
			doc.Header.Contractor = *input.Contractor
		}
		if input.Date != nil {
			doc.Header.Date = *input.Date
		}
		header = doc.Header
	})

	return ctx.JSON(fiber.Map{
		"header": header,
		"notice": storageNotice(persistErr, tr),
	})
}
