package gantt

import "fmt"

// RowOptions is the view-state input of the row builder.
type RowOptions struct {
	GroupBy         GroupBy
	CollapsedGroups IDSet
	CollapsedTasks  IDSet
}

// RowModel is the ordered, visible row sequence of one redraw.
type RowModel struct {
	Rows     []Row
	Warnings []Warning
}

// GroupRowPrefix starts every group header row id. Task ids must not use it.
const GroupRowPrefix = "group-"

// GroupRowID returns the row id of the header for group key.
func GroupRowID(key string) string {
	return GroupRowPrefix + key
}

// Visible reports whether a row with id is part of the model.
func (m RowModel) Visible(id string) bool {
	for _, r := range m.Rows {
		if r.ID == id {
			return true
		}
	}
	return false
}

// TaskRows returns only the task rows, in order.
func (m RowModel) TaskRows() []Row {
	out := make([]Row, 0, len(m.Rows))
	for _, r := range m.Rows {
		if r.Kind == RowTask {
			out = append(out, r)
		}
	}
	return out
}

type bucket struct {
	key   string
	tasks []*Task
}

// BuildRows converts a flat task list into the ordered rows to display.
//
// Groups appear in first-seen order. Inside a visible group, roots (tasks
// without a parent in the same group) are emitted in list order, each
// followed by its children in pre-order. Collapsed groups and collapsed
// tasks hide their contents. Parent cycles are cut on the ancestor path so
// every task is emitted at most once.
func BuildRows(tasks []Task, opt RowOptions) RowModel {
	if opt.GroupBy == "" {
		opt.GroupBy = GroupBySprint
	}

	var model RowModel
	if opt.GroupBy == GroupByNone {
		all := make([]*Task, len(tasks))
		for i := range tasks {
			all[i] = &tasks[i]
		}
		b := newBucketBuilder(all, opt.CollapsedTasks)
		model.Rows = b.emit(0)
		model.Warnings = b.warnings
		return model
	}

	for _, bk := range bucketize(tasks, opt.GroupBy) {
		collapsed := opt.CollapsedGroups.Has(bk.key)
		model.Rows = append(model.Rows, Row{
			ID:          GroupRowID(bk.key),
			Kind:        RowGroup,
			Name:        bk.key,
			GroupKey:    bk.key,
			Level:       0,
			Collapsed:   collapsed,
			HasChildren: len(bk.tasks) > 0,
		})

		b := newBucketBuilder(bk.tasks, opt.CollapsedTasks)
		model.Warnings = append(model.Warnings, b.warnings...)
		if collapsed {
			continue
		}
		model.Rows = append(model.Rows, b.emit(1)...)
	}
	return model
}

// HasChildTasks reports whether task id has at least one child in its own
// group under mode by. Only such tasks carry an expander and can collapse.
func HasChildTasks(tasks []Task, id string, by GroupBy) bool {
	if by == "" {
		by = GroupBySprint
	}
	key, found := "", false
	for i := range tasks {
		if tasks[i].ID == id {
			key, found = groupKey(tasks[i], by), true
			break
		}
	}
	if !found {
		return false
	}
	for i := range tasks {
		if tasks[i].ParentID == id && groupKey(tasks[i], by) == key {
			return true
		}
	}
	return false
}

func groupKey(t Task, by GroupBy) string {
	if by == GroupByNone {
		return ""
	}
	key := by.Key(t)
	if key == "" {
		key = OtherGroup
	}
	return key
}

func bucketize(tasks []Task, by GroupBy) []bucket {
	index := make(map[string]int)
	var buckets []bucket
	for i := range tasks {
		key := groupKey(tasks[i], by)
		pos, ok := index[key]
		if !ok {
			pos = len(buckets)
			index[key] = pos
			buckets = append(buckets, bucket{key: key})
		}
		buckets[pos].tasks = append(buckets[pos].tasks, &tasks[i])
	}
	return buckets
}

// bucketBuilder lays out the hierarchy of one group.
type bucketBuilder struct {
	tasks     []*Task
	children  map[string][]*Task
	roots     map[string]bool
	collapsed IDSet
	warnings  []Warning
	warned    map[string]bool
}

func newBucketBuilder(tasks []*Task, collapsed IDSet) *bucketBuilder {
	ids := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		ids[t.ID] = true
	}

	b := &bucketBuilder{
		tasks:     tasks,
		children:  make(map[string][]*Task),
		roots:     make(map[string]bool),
		collapsed: collapsed,
		warned:    make(map[string]bool),
	}
	for _, t := range tasks {
		if t.ParentID == "" || !ids[t.ParentID] {
			b.roots[t.ID] = true
			continue
		}
		b.children[t.ParentID] = append(b.children[t.ParentID], t)
	}

	// Reachability ignores collapse state so cycle detection and the choice
	// of roots do not depend on what is currently folded.
	reached := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if b.roots[t.ID] {
			b.reach(t, reached, map[string]bool{})
		}
	}
	for _, t := range tasks {
		if !reached[t.ID] {
			b.roots[t.ID] = true
			b.reach(t, reached, map[string]bool{})
		}
	}
	return b
}

func (b *bucketBuilder) reach(t *Task, reached, path map[string]bool) {
	reached[t.ID] = true
	path[t.ID] = true
	defer delete(path, t.ID)

	for _, c := range b.children[t.ID] {
		if path[c.ID] {
			b.warn(t.ID, c.ID)
			continue
		}
		if reached[c.ID] {
			continue
		}
		b.reach(c, reached, path)
	}
}

func (b *bucketBuilder) warn(from, to string) {
	if b.warned[from] {
		return
	}
	b.warned[from] = true
	b.warnings = append(b.warnings, Warning{
		Code:    WarnParentCycle,
		TaskID:  from,
		Message: fmt.Sprintf("task %q is its own ancestor via %q; descent stopped", to, from),
	})
}

func (b *bucketBuilder) emit(level int) []Row {
	var rows []Row
	seen := make(map[string]bool, len(b.tasks))
	for _, t := range b.tasks {
		if b.roots[t.ID] && !seen[t.ID] {
			rows = b.appendTask(rows, t, level, seen, map[string]bool{})
		}
	}
	return rows
}

func (b *bucketBuilder) appendTask(rows []Row, t *Task, level int, seen, path map[string]bool) []Row {
	seen[t.ID] = true
	path[t.ID] = true
	defer delete(path, t.ID)

	collapsed := b.collapsed.Has(t.ID)
	rows = append(rows, Row{
		ID:          t.ID,
		Kind:        RowTask,
		Name:        t.Name,
		Task:        t,
		Level:       level,
		Collapsed:   collapsed,
		HasChildren: len(b.children[t.ID]) > 0,
	})
	if collapsed {
		return rows
	}

	for _, c := range b.children[t.ID] {
		if path[c.ID] || seen[c.ID] {
			continue
		}
		rows = b.appendTask(rows, c, level+1, seen, path)
	}
	return rows
}
