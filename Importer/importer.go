package Importer

import (
	"errors"
	"strings"

	"ChecklistPro/Checklist"
	"ChecklistPro/Locales"
)

// headerScanLimit bounds how many leading rows are searched for the header row.
const headerScanLimit = 10

// Structural import failures. Each maps to its own localized notice; the
// document is never touched when one of these comes back.
var (
	ErrEmptyFile  = errors.New("import: file has no rows")
	ErrNoNewTasks = errors.New("import: no task rows found")
)

// Report describes what an import applied.
type Report struct {
	Added         int
	Duplicates    int
	GroupsCreated int
	HeaderUpdated bool
}

// groupRef is a row's resolved group assignment: an existing group's id, the
// lowercased name of a group to be created, or neither (ungrouped).
type groupRef struct {
	existing *int64
	pending  string
}

type parsedItem struct {
	text  string
	group groupRef
}

// pendingGroup is a group discovered in the file, keyed by lowercased name but
// created with the casing of its first appearance.
type pendingGroup struct {
	key  string
	name string
}

// layout is the detected shape of the tabular file.
type layout struct {
	headerFound bool
	dataStart   int
	taskCol     int
	groupCol    int
	header      map[string]string
}

// Import parses rows and applies the result to doc in one step. Nothing is
// applied unless the whole parse succeeds: structural failures return one of
// the sentinel errors above with doc unchanged.
func Import(doc *Checklist.Document, rows [][]string, tr Locales.Translator) (Report, error) {
	if len(rows) == 0 {
		return Report{}, ErrEmptyFile
	}

	lay := detectLayout(rows, tr)

	items, pending := collectItems(rows[lay.dataStart:], lay, doc, tr)
	if len(items) == 0 {
		return Report{}, ErrNoNewTasks
	}

	return apply(doc, lay, items, pending), nil
}

// detectLayout scans the first rows for the localized "task" header token. The
// first row containing it becomes the header row and fixes the task and group
// columns; rows above it form a metadata block matched against the localized
// header labels. Without a header row the whole file is data with tasks in
// column 0.
func detectLayout(rows [][]string, tr Locales.Translator) layout {
	taskToken := strings.ToLower(tr.T("task"))
	groupToken := strings.ToLower(tr.T("group"))

	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}

	for i := 0; i < limit; i++ {
		taskCol := -1
		groupCol := -1
		for col, cell := range rows[i] {
			normalized := strings.ToLower(strings.TrimSpace(cell))
			if taskCol == -1 && normalized == taskToken {
				taskCol = col
			}
			if groupCol == -1 && normalized == groupToken {
				groupCol = col
			}
		}
		if taskCol == -1 {
			continue
		}
		lay := layout{
			headerFound: true,
			dataStart:   i + 1,
			taskCol:     taskCol,
			groupCol:    groupCol,
		}
		if i > 0 {
			lay.header = extractHeaderBlock(rows[:i], tr)
		}
		return lay
	}

	return layout{taskCol: 0, groupCol: -1}
}

// extractHeaderBlock recovers header metadata from the rows above the header
// row. The first row whose first cell exactly matches a localized label claims
// that label; a claimed label with a blank value cell stays unset rather than
// falling through to a later row.
func extractHeaderBlock(rows [][]string, tr Locales.Translator) map[string]string {
	labels := map[string]string{
		tr.T("title"):            "title",
		tr.T("investorHeader"):   "investor",
		tr.T("contractorHeader"): "contractor",
		tr.T("dateHeader"):       "date",
	}

	found := make(map[string]string)
	claimed := make(map[string]bool)
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		field, ok := labels[strings.TrimSpace(row[0])]
		if !ok || claimed[field] {
			continue
		}
		claimed[field] = true
		if len(row) < 2 {
			continue
		}
		if value := strings.TrimSpace(row[1]); value != "" {
			found[field] = value
		}
	}
	return found
}

// collectItems walks the data rows, skipping blank task cells and resolving
// each row's group cell: empty means ungrouped, a case-insensitive match on an
// existing group reuses it, the localized "Uncategorized" label is treated as
// ungrouped, anything else queues a new group.
func collectItems(dataRows [][]string, lay layout, doc *Checklist.Document, tr Locales.Translator) ([]parsedItem, []pendingGroup) {
	uncategorized := strings.ToLower(tr.T("uncategorized"))

	existing := make(map[string]int64, len(doc.Groups))
	for _, g := range doc.Groups {
		existing[strings.ToLower(g.Name)] = g.ID
	}

	queued := make(map[string]bool)
	var pending []pendingGroup
	var items []parsedItem

	for _, row := range dataRows {
		if len(row) <= lay.taskCol {
			continue
		}
		text := strings.TrimSpace(row[lay.taskCol])
		if text == "" {
			continue
		}

		var ref groupRef
		if lay.groupCol != -1 && len(row) > lay.groupCol {
			name := strings.TrimSpace(row[lay.groupCol])
			if name != "" {
				lower := strings.ToLower(name)
				if id, ok := existing[lower]; ok {
					gid := id
					ref.existing = &gid
				} else if lower == uncategorized {
					// Re-imported exports label ungrouped tasks this way;
					// treat as no assignment.
				} else {
					if !queued[lower] {
						queued[lower] = true
						pending = append(pending, pendingGroup{key: lower, name: name})
					}
					ref.pending = lower
				}
			}
		}

		items = append(items, parsedItem{text: text, group: ref})
	}

	return items, pending
}

// apply commits a successful parse: header fields, newly discovered groups in
// first-appearance order (with their original casing), then the tasks routed
// through the deduplicating import.
func apply(doc *Checklist.Document, lay layout, items []parsedItem, pending []pendingGroup) Report {
	report := Report{}

	for field, value := range lay.header {
		report.HeaderUpdated = true
		switch field {
		case "title":
			doc.Header.Title = value
		case "investor":
			doc.Header.Investor = value
		case "contractor":
			doc.Header.Contractor = value
		case "date":
			doc.Header.Date = value
		}
	}

	created := make(map[string]int64, len(pending))
	for _, pg := range pending {
		g, ok := doc.AddGroup(pg.name)
		if !ok {
			continue
		}
		created[pg.key] = g.ID
		report.GroupsCreated++
	}

	tasks := make([]Checklist.Task, 0, len(items))
	for _, item := range items {
		var groupID *int64
		if item.group.existing != nil {
			groupID = item.group.existing
		} else if item.group.pending != "" {
			if id, ok := created[item.group.pending]; ok {
				gid := id
				groupID = &gid
			}
		}
		tasks = append(tasks, Checklist.Task{
			ID:      doc.NewID(),
			Text:    item.text,
			Answer:  Checklist.AnswerUnanswered,
			GroupID: groupID,
		})
	}

	report.Added, report.Duplicates = doc.ImportTasks(tasks)
	return report
}
