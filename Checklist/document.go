package Checklist

import (
	"time"

	"ChecklistPro/Locales"
)

// Document is the single top-level checklist state. It owns the task and group
// lists, the header metadata and the id counter; everything else in the
// application reads from or transforms this value.
type Document struct {
	Header HeaderData
	Groups []Group
	Tasks  []Task

	nextID int64
}

// NewDocument returns an empty document with a default header for the given
// locale and an id counter seeded from the current time.
func NewDocument(tr Locales.Translator) *Document {
	return &Document{
		Header: DefaultHeader(tr),
		nextID: time.Now().UnixMilli(),
	}
}

// DefaultHeader is the header an empty or cleared document carries: localized
// default title, empty parties, today's date.
func DefaultHeader(tr Locales.Translator) HeaderData {
	return HeaderData{
		Title: tr.T("listTitle"),
		Date:  time.Now().Format("2006-01-02"),
	}
}

// NewID hands out the next unique identifier. Ids are never reused within a
// loaded document, even after deletes.
func (d *Document) NewID() int64 {
	d.nextID++
	return d.nextID
}

// BumpIDCounter moves the counter past id. Called while loading persisted
// snapshots so fresh ids stay unique even if the wall clock stepped backwards
// since the snapshot was written.
func (d *Document) BumpIDCounter(id int64) {
	if id > d.nextID {
		d.nextID = id
	}
}

// GroupByID returns the group with the given id, or nil.
func (d *Document) GroupByID(id int64) *Group {
	for i := range d.Groups {
		if d.Groups[i].ID == id {
			return &d.Groups[i]
		}
	}
	return nil
}

// GroupName resolves a task's group assignment to a display name, falling back
// to the localized "Uncategorized" label for ungrouped tasks and dangling ids.
func (d *Document) GroupName(groupID *int64, tr Locales.Translator) string {
	if groupID != nil {
		if g := d.GroupByID(*groupID); g != nil {
			return g.Name
		}
	}
	return tr.T("uncategorized")
}

// AnsweredCount counts tasks that have any answer other than unanswered.
func (d *Document) AnsweredCount() int {
	n := 0
	for _, t := range d.Tasks {
		if t.Answer != AnswerUnanswered {
			n++
		}
	}
	return n
}
