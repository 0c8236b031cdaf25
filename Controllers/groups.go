package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"ChecklistPro/Checklist"
)

// GetGroups returns the group list in creation order.
func (c *ChecklistController) GetGroups(ctx *fiber.Ctx) error {
	var groups []Checklist.Group
	c.Service.Read(func(doc *Checklist.Document) {
		groups = append(groups, doc.Groups...)
	})
	return ctx.JSON(groups)
}

// CreateGroup adds a named group. Whitespace-only names are rejected.
func (c *ChecklistController) CreateGroup(ctx *fiber.Ctx) error {
	var input struct {
		Name string `json:"name"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tr := c.Service.Translator(ctx.Query("lang"))
	var group Checklist.Group
	var added bool
	persistErr := c.Service.Mutate(func(doc *Checklist.Document) {
		group, added = doc.AddGroup(input.Name)
	})

	if !added {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Group name cannot be empty"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"group":  group,
		"notice": storageNotice(persistErr, tr),
	})
}

// DeleteGroup removes a group and detaches its tasks; the tasks stay.
func (c *ChecklistController) DeleteGroup(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid group ID"})
	}

	tr := c.Service.Translator(ctx.Query("lang"))
	persistErr := c.Service.Mutate(func(doc *Checklist.Document) {
		doc.DeleteGroup(id)
	})
	return ctx.JSON(fiber.Map{"notice": storageNotice(persistErr, tr)})
}
