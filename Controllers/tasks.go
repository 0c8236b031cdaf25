package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"ChecklistPro/Checklist"
)

// ChecklistController handles the task, group and document endpoints.
type ChecklistController struct {
	Service *DocumentService
}

// NewChecklistController creates a new ChecklistController
func NewChecklistController(service *DocumentService) *ChecklistController {
	return &ChecklistController{Service: service}
}

// GetDocument returns the full document plus the footer counters.
func (c *ChecklistController) GetDocument(ctx *fiber.Ctx) error {
	var payload fiber.Map
	c.Service.Read(func(doc *Checklist.Document) {
		payload = fiber.Map{
			"header":        doc.Header,
			"groups":        doc.Groups,
			"tasks":         doc.Tasks,
			"answeredCount": doc.AnsweredCount(),
			"totalCount":    len(doc.Tasks),
		}
	})
	return ctx.JSON(payload)
}

// CreateTask appends a new task. Whitespace-only text is accepted and ignored,
// mirroring the silent no-op of the input form.
func (c *ChecklistController) CreateTask(ctx *fiber.Ctx) error {
	var input struct {
		Text    string `json:"text"`
		GroupID *int64 `json:"groupId"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tr := c.Service.Translator(ctx.Query("lang"))
	var task Checklist.Task
	var added bool
	persistErr := c.Service.Mutate(func(doc *Checklist.Document) {
		task, added = doc.AddTask(input.Text, input.GroupID)
	})

	if !added {
		return ctx.JSON(fiber.Map{"added": false})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"added":  true,
		"task":   task,
		"notice": storageNotice(persistErr, tr),
	})
}

// EditTask replaces a task's text.
func (c *ChecklistController) EditTask(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var input struct {
		Text string `json:"text"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tr := c.Service.Translator(ctx.Query("lang"))
	persistErr := c.Service.Mutate(func(doc *Checklist.Document) {
		doc.EditTask(id, input.Text)
	})
	return ctx.JSON(fiber.Map{"notice": storageNotice(persistErr, tr)})
}

// DeleteTask removes a task by id.
func (c *ChecklistController) DeleteTask(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	tr := c.Service.Translator(ctx.Query("lang"))
	persistErr := c.Service.Mutate(func(doc *Checklist.Document) {
		doc.DeleteTask(id)
	})
	return ctx.JSON(fiber.Map{"notice": storageNotice(persistErr, tr)})
}

// SetAnswer replaces a task's answer with one of the four states.
func (c *ChecklistController) SetAnswer(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var input struct {
		Answer Checklist.Answer `json:"answer"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !Checklist.ValidAnswer(input.Answer) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid answer state"})
	}

	tr := c.Service.Translator(ctx.Query("lang"))
	persistErr := c.Service.Mutate(func(doc *Checklist.Document) {
		doc.SetAnswer(id, input.Answer)
	})
	return ctx.JSON(fiber.Map{"notice": storageNotice(persistErr, tr)})
}

// CycleAnswer advances a task's answer one step in the fixed toggle order and
// returns the resulting state.
func (c *ChecklistController) CycleAnswer(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	tr := c.Service.Translator(ctx.Query("lang"))
	var answer Checklist.Answer
	persistErr := c.Service.Mutate(func(doc *Checklist.Document) {
		answer = doc.CycleAnswer(id)
	})
	return ctx.JSON(fiber.Map{
		"answer":      answer,
		"answerLabel": tr.T(string(answer)),
		"notice":      storageNotice(persistErr, tr),
	})
}

// MoveTask reassigns a task to a group, or detaches it when groupId is null.
func (c *ChecklistController) MoveTask(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var input struct {
		GroupID *int64 `json:"groupId"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tr := c.Service.Translator(ctx.Query("lang"))
	persistErr := c.Service.Mutate(func(doc *Checklist.Document) {
		doc.MoveTask(id, input.GroupID)
	})
	return ctx.JSON(fiber.Map{"notice": storageNotice(persistErr, tr)})
}

// ClearAnswered removes every task that has an answer.
func (c *ChecklistController) ClearAnswered(ctx *fiber.Ctx) error {
	tr := c.Service.Translator(ctx.Query("lang"))
	persistErr := c.Service.Mutate(func(doc *Checklist.Document) {
		doc.ClearAnswered()
	})
	return ctx.JSON(fiber.Map{"notice": storageNotice(persistErr, tr)})
}

// ResetAnswers sets every task back to unanswered.
func (c *ChecklistController) ResetAnswers(ctx *fiber.Ctx) error {
	tr := c.Service.Translator(ctx.Query("lang"))
	persistErr := c.Service.Mutate(func(doc *Checklist.Document) {
		doc.ResetAnswers()
	})
	return ctx.JSON(fiber.Map{"notice": storageNotice(persistErr, tr)})
}

// ClearAll empties the document and resets the header to its defaults.
func (c *ChecklistController) ClearAll(ctx *fiber.Ctx) error {
	tr := c.Service.Translator(ctx.Query("lang"))
	persistErr := c.Service.Mutate(func(doc *Checklist.Document) {
		doc.ClearAll(tr)
	})
	return ctx.JSON(fiber.Map{"notice": storageNotice(persistErr, tr)})
}
