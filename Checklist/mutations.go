package Checklist

import (
	"strings"

	"ChecklistPro/Locales"
)

// AddTask appends a new unanswered task. Whitespace-only text is a no-op and
// returns false.
func (d *Document) AddTask(text string, groupID *int64) (Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false
	}
	t := Task{
		ID:      d.NewID(),
		Text:    text,
		Answer:  AnswerUnanswered,
		GroupID: groupID,
	}
	d.Tasks = append(d.Tasks, t)
	return t, true
}

// ImportTasks appends the given tasks, dropping any whose text exactly matches
// a task already on the list before the batch. Repeats within the batch itself
// are all added. It returns how many were added and how many were dropped as
// duplicates.
func (d *Document) ImportTasks(items []Task) (added, dropped int) {
	existing := make(map[string]struct{}, len(d.Tasks))
	for _, t := range d.Tasks {
		existing[t.Text] = struct{}{}
	}
	for _, item := range items {
		if _, dup := existing[item.Text]; dup {
			dropped++
			continue
		}
		d.Tasks = append(d.Tasks, item)
		added++
	}
	return added, dropped
}

// AddGroup creates a new group with the trimmed name. Whitespace-only names
// are a no-op and return false.
func (d *Document) AddGroup(name string) (Group, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Group{}, false
	}
	g := Group{ID: d.NewID(), Name: name}
	d.Groups = append(d.Groups, g)
	return g, true
}

// DeleteGroup removes the group and detaches every task that referenced it.
// Tasks themselves are never deleted by this operation.
func (d *Document) DeleteGroup(id int64) {
	kept := d.Groups[:0]
	for _, g := range d.Groups {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	d.Groups = kept
	for i := range d.Tasks {
		if d.Tasks[i].GroupID != nil && *d.Tasks[i].GroupID == id {
			d.Tasks[i].GroupID = nil
		}
	}
}

// SetAnswer replaces the answer of the task with the given id. Unknown ids are
// a no-op.
func (d *Document) SetAnswer(id int64, answer Answer) {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			d.Tasks[i].Answer = answer
			return
		}
	}
}

// CycleAnswer advances the task's answer one step in the toggle cycle and
// returns the new answer. Unknown ids return unanswered and change nothing.
func (d *Document) CycleAnswer(id int64) Answer {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			d.Tasks[i].Answer = NextAnswer(d.Tasks[i].Answer)
			return d.Tasks[i].Answer
		}
	}
	return AnswerUnanswered
}

// DeleteTask removes the task with the given id, if present.
func (d *Document) DeleteTask(id int64) {
	kept := d.Tasks[:0]
	for _, t := range d.Tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	d.Tasks = kept
}

// EditTask replaces the task's text. Unknown ids are a no-op.
func (d *Document) EditTask(id int64, newText string) {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			d.Tasks[i].Text = newText
			return
		}
	}
}

// MoveTask reassigns the task to another group, or to no group when groupID is
// nil. Unknown ids are a no-op.
func (d *Document) MoveTask(id int64, groupID *int64) {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			d.Tasks[i].GroupID = groupID
			return
		}
	}
}

// ClearAnswered removes every task that has an answer, keeping unanswered ones.
func (d *Document) ClearAnswered() {
	kept := d.Tasks[:0]
	for _, t := range d.Tasks {
		if t.Answer == AnswerUnanswered {
			kept = append(kept, t)
		}
	}
	d.Tasks = kept
}

// ResetAnswers sets every task back to unanswered without touching membership.
func (d *Document) ResetAnswers() {
	for i := range d.Tasks {
		d.Tasks[i].Answer = AnswerUnanswered
	}
}

// ClearAll empties tasks and groups and resets the header to its defaults.
func (d *Document) ClearAll(tr Locales.Translator) {
	d.Tasks = nil
	d.Groups = nil
	d.Header = DefaultHeader(tr)
}
