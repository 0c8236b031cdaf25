package Controllers

import (
	"github.com/gofiber/fiber/v2"

	"ChecklistPro/Locales"
)

// GetLanguage returns the persisted active language.
func (c *ChecklistController) GetLanguage(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"language": c.Service.Language()})
}

// SetLanguage switches the active language for every subsequent request and
// persists it.
func (c *ChecklistController) SetLanguage(ctx *fiber.Ctx) error {
	var input struct {
		Language string `json:"language"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	lang, ok := Locales.ParseLanguage(input.Language)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported language"})
	}

	tr := Locales.NewTranslator(lang)
	persistErr := c.Service.SetLanguage(lang)
	return ctx.JSON(fiber.Map{
		"language": lang,
		"notice":   storageNotice(persistErr, tr),
	})
}
