package Checklist

// Visible returns the subset of tasks matching the filter, in list order.
func Visible(tasks []Task, f Filter) []Task {
	if f == FilterAll {
		return tasks
	}
	var out []Task
	for _, t := range tasks {
		if t.Answer == Answer(f) {
			out = append(out, t)
		}
	}
	return out
}

// Section is one partition of the filtered view: the ungrouped tasks (Group ==
// nil) or one group's tasks. Empty marks a group that has no tasks at all,
// which the "all" view renders with an empty indicator.
type Section struct {
	Group *Group
	Tasks []Task
	Empty bool
}

// Sections partitions the document's filtered tasks: the ungrouped partition
// first, then one partition per group in group-list order. Under a non-all
// filter, groups with no visible tasks are omitted entirely; under "all" every
// group appears, flagged Empty when it holds no tasks at all.
func (d *Document) Sections(f Filter) []Section {
	visible := Visible(d.Tasks, f)

	var ungrouped []Task
	byGroup := make(map[int64][]Task)
	for _, t := range visible {
		if t.GroupID == nil {
			ungrouped = append(ungrouped, t)
			continue
		}
		byGroup[*t.GroupID] = append(byGroup[*t.GroupID], t)
	}

	var sections []Section
	if len(ungrouped) > 0 {
		sections = append(sections, Section{Tasks: ungrouped})
	}
	for i := range d.Groups {
		g := d.Groups[i]
		tasks := byGroup[g.ID]
		if len(tasks) == 0 {
			if f != FilterAll {
				continue
			}
			sections = append(sections, Section{Group: &g, Empty: !d.groupHasTasks(g.ID)})
			continue
		}
		sections = append(sections, Section{Group: &g, Tasks: tasks})
	}
	return sections
}

func (d *Document) groupHasTasks(id int64) bool {
	for _, t := range d.Tasks {
		if t.GroupID != nil && *t.GroupID == id {
			return true
		}
	}
	return false
}
