package Checklist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ChecklistPro/Checklist"
	"ChecklistPro/Locales"
)

func newDoc(t *testing.T) *Checklist.Document {
	t.Helper()
	return Checklist.NewDocument(Locales.NewTranslator(Locales.English))
}

func TestAddTaskWhitespaceIsNoOp(t *testing.T) {
	doc := newDoc(t)

	_, added := doc.AddTask("   \t ", nil)

	assert.False(t, added)
	assert.Empty(t, doc.Tasks)
}

func TestAddTaskTrimsAndAssignsFreshIDs(t *testing.T) {
	doc := newDoc(t)

	first, added := doc.AddTask("  Buy milk  ", nil)
	require.True(t, added)
	second, added := doc.AddTask("Pay rent", nil)
	require.True(t, added)

	assert.Equal(t, "Buy milk", first.Text)
	assert.Equal(t, Checklist.AnswerUnanswered, first.Answer)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestDeleteGroupDetachesTasks(t *testing.T) {
	doc := newDoc(t)
	group, _ := doc.AddGroup("Home")
	other, _ := doc.AddGroup("Work")
	doc.AddTask("Clean kitchen", &group.ID)
	doc.AddTask("Write report", &other.ID)
	doc.AddTask("Loose end", nil)

	doc.DeleteGroup(group.ID)

	assert.Len(t, doc.Tasks, 3, "deleting a group must not delete tasks")
	for _, task := range doc.Tasks {
		if task.GroupID != nil {
			assert.NotEqual(t, group.ID, *task.GroupID)
		}
	}
	assert.Len(t, doc.Groups, 1)
	assert.Equal(t, "Work", doc.Groups[0].Name)
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	doc := newDoc(t)
	first, _ := doc.AddTask("One", nil)
	doc.DeleteTask(first.ID)
	second, _ := doc.AddTask("Two", nil)

	assert.Greater(t, second.ID, first.ID)
}

func TestSetAnswerUnknownIDIsNoOp(t *testing.T) {
	doc := newDoc(t)
	task, _ := doc.AddTask("One", nil)

	doc.SetAnswer(task.ID+999, Checklist.AnswerYes)

	assert.Equal(t, Checklist.AnswerUnanswered, doc.Tasks[0].Answer)
}

func TestCycleAnswerFullCircle(t *testing.T) {
	doc := newDoc(t)
	task, _ := doc.AddTask("One", nil)

	assert.Equal(t, Checklist.AnswerYes, doc.CycleAnswer(task.ID))
	assert.Equal(t, Checklist.AnswerNo, doc.CycleAnswer(task.ID))
	assert.Equal(t, Checklist.AnswerNA, doc.CycleAnswer(task.ID))
	assert.Equal(t, Checklist.AnswerUnanswered, doc.CycleAnswer(task.ID))
}

func TestResetAnswersIsIdempotent(t *testing.T) {
	doc := newDoc(t)
	group, _ := doc.AddGroup("Home")
	a, _ := doc.AddTask("One", &group.ID)
	doc.AddTask("Two", nil)
	doc.SetAnswer(a.ID, Checklist.AnswerNo)

	doc.ResetAnswers()
	once := append([]Checklist.Task(nil), doc.Tasks...)
	doc.ResetAnswers()

	assert.Equal(t, once, doc.Tasks)
	assert.Len(t, doc.Tasks, 2)
	require.NotNil(t, doc.Tasks[0].GroupID)
	assert.Equal(t, group.ID, *doc.Tasks[0].GroupID)
}

func TestClearAnsweredThenResetEqualsClearAnswered(t *testing.T) {
	doc := newDoc(t)
	a, _ := doc.AddTask("One", nil)
	doc.AddTask("Two", nil)
	b, _ := doc.AddTask("Three", nil)
	doc.SetAnswer(a.ID, Checklist.AnswerYes)
	doc.SetAnswer(b.ID, Checklist.AnswerNA)

	doc.ClearAnswered()
	afterClear := append([]Checklist.Task(nil), doc.Tasks...)
	doc.ResetAnswers()

	assert.Equal(t, afterClear, doc.Tasks, "nothing unanswered should remain to reset")
	assert.Len(t, doc.Tasks, 1)
	assert.Equal(t, "Two", doc.Tasks[0].Text)
}

func TestImportTasksDeduplicatesByExactText(t *testing.T) {
	doc := newDoc(t)
	doc.AddTask("Buy milk", nil)
	doc.AddTask("Pay rent", nil)

	batch := []Checklist.Task{
		{ID: doc.NewID(), Text: "Buy milk", Answer: Checklist.AnswerUnanswered},
		{ID: doc.NewID(), Text: "Pay rent", Answer: Checklist.AnswerUnanswered},
		{ID: doc.NewID(), Text: "Walk dog", Answer: Checklist.AnswerUnanswered},
		{ID: doc.NewID(), Text: "Water plants", Answer: Checklist.AnswerUnanswered},
		{ID: doc.NewID(), Text: "Call plumber", Answer: Checklist.AnswerUnanswered},
	}
	added, dropped := doc.ImportTasks(batch)

	assert.Equal(t, 3, added)
	assert.Equal(t, 2, dropped)
	assert.Len(t, doc.Tasks, 5)
}

func TestImportTasksKeepsRepeatsWithinBatch(t *testing.T) {
	doc := newDoc(t)

	batch := []Checklist.Task{
		{ID: doc.NewID(), Text: "Buy milk", Answer: Checklist.AnswerUnanswered},
		{ID: doc.NewID(), Text: "Buy milk", Answer: Checklist.AnswerUnanswered},
	}
	added, dropped := doc.ImportTasks(batch)

	assert.Equal(t, 2, added)
	assert.Equal(t, 0, dropped)
	assert.Len(t, doc.Tasks, 2)
}

func TestClearAllResetsEverything(t *testing.T) {
	tr := Locales.NewTranslator(Locales.English)
	doc := Checklist.NewDocument(tr)
	doc.AddGroup("Home")
	doc.AddGroup("Work")
	doc.AddTask("One", nil)
	doc.AddTask("Two", nil)
	doc.AddTask("Three", nil)
	doc.Header.Investor = "ACME"
	doc.Header.Contractor = "BuildCo"
	doc.Header.Title = "Site inspection"

	doc.ClearAll(tr)

	assert.Empty(t, doc.Tasks)
	assert.Empty(t, doc.Groups)
	assert.Equal(t, Checklist.DefaultHeader(tr), doc.Header)
	assert.Equal(t, tr.T("listTitle"), doc.Header.Title)
	assert.Empty(t, doc.Header.Investor)
	assert.Empty(t, doc.Header.Contractor)
}

func TestMoveTaskBetweenGroups(t *testing.T) {
	doc := newDoc(t)
	group, _ := doc.AddGroup("Home")
	task, _ := doc.AddTask("One", nil)

	doc.MoveTask(task.ID, &group.ID)
	require.NotNil(t, doc.Tasks[0].GroupID)
	assert.Equal(t, group.ID, *doc.Tasks[0].GroupID)

	doc.MoveTask(task.ID, nil)
	assert.Nil(t, doc.Tasks[0].GroupID)
}

func TestEditTaskUnknownIDIsNoOp(t *testing.T) {
	doc := newDoc(t)
	task, _ := doc.AddTask("One", nil)

	doc.EditTask(task.ID+1, "changed")

	assert.Equal(t, "One", doc.Tasks[0].Text)
}
