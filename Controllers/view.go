package Controllers

import (
	"github.com/gofiber/fiber/v2"

	"ChecklistPro/Checklist"
	"ChecklistPro/Locales"
)

type viewTask struct {
	ID          int64            `json:"id"`
	Text        string           `json:"text"`
	Answer      Checklist.Answer `json:"answer"`
	AnswerLabel string           `json:"answerLabel"`
	GroupID     *int64           `json:"groupId"`
}

type viewSection struct {
	GroupID   *int64     `json:"groupId"`
	GroupName string     `json:"groupName"`
	Empty     bool       `json:"empty"`
	Tasks     []viewTask `json:"tasks"`
}

// GetView returns the filtered, grouped projection of the document, plus the
// empty-state message the presentation shows when nothing is visible.
func (c *ChecklistController) GetView(ctx *fiber.Ctx) error {
	filter := Checklist.Filter(ctx.Query("filter", string(Checklist.FilterAll)))
	if !Checklist.ValidFilter(filter) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid filter"})
	}

	tr := c.Service.Translator(ctx.Query("lang"))

	var payload fiber.Map
	c.Service.Read(func(doc *Checklist.Document) {
		sections := doc.Sections(filter)
		out := make([]viewSection, 0, len(sections))
		visibleCount := 0
		for _, section := range sections {
			vs := viewSection{
				GroupName: tr.T("uncategorized"),
				Empty:     section.Empty,
				Tasks:     make([]viewTask, 0, len(section.Tasks)),
			}
			if section.Group != nil {
				vs.GroupID = &section.Group.ID
				vs.GroupName = section.Group.Name
			}
			for _, task := range section.Tasks {
				visibleCount++
				vs.Tasks = append(vs.Tasks, viewTask{
					ID:          task.ID,
					Text:        task.Text,
					Answer:      task.Answer,
					AnswerLabel: tr.T(string(task.Answer)),
					GroupID:     task.GroupID,
				})
			}
			out = append(out, vs)
		}

		payload = fiber.Map{
			"filter":        filter,
			"sections":      out,
			"answeredCount": doc.AnsweredCount(),
			"totalCount":    len(doc.Tasks),
			"emptyState":    emptyState(doc, visibleCount, tr),
		}
	})

	return ctx.JSON(payload)
}

// emptyState mirrors the presentation's three empty situations: an empty
// checklist, a filter with no matches, or nothing at all to say.
func emptyState(doc *Checklist.Document, visibleCount int, tr Locales.Translator) string {
	if len(doc.Tasks) == 0 && len(doc.Groups) == 0 {
		return tr.T("checklistIsEmpty")
	}
	if visibleCount == 0 {
		return tr.T("noTasksMatchFilter")
	}
	return ""
}
