package gantt_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"gantt-chart/internal/gantt"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rowIDs(rows []gantt.Row) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

// sprintFixture: two sprints, a nested tree in S1 and an ungrouped task.
func sprintFixture() []gantt.Task {
	return []gantt.Task{
		{ID: "epic", Name: "Epic", Sprint: "S1", Start: day(2025, 1, 1), End: day(2025, 2, 1)},
		{ID: "fe", Name: "Frontend", Sprint: "S1", ParentID: "epic", Start: day(2025, 1, 2), End: day(2025, 1, 20)},
		{ID: "fe-ui", Name: "UI", Sprint: "S1", ParentID: "fe", Start: day(2025, 1, 2), End: day(2025, 1, 10)},
		{ID: "misc", Name: "Misc", Start: day(2025, 1, 5), End: day(2025, 1, 6)},
		{ID: "be", Name: "Backend", Sprint: "S1", ParentID: "epic", Start: day(2025, 1, 3), End: day(2025, 1, 25)},
		{ID: "qa", Name: "QA", Sprint: "S2", Start: day(2025, 2, 1), End: day(2025, 2, 10)},
		{ID: "qa-sub", Name: "QA sub", Sprint: "S2", ParentID: "be", Start: day(2025, 2, 1), End: day(2025, 2, 3)},
	}
}

func TestBuildRowsOrder(t *testing.T) {
	tests := []struct {
		name string
		opt  gantt.RowOptions
		want []string
	}{
		{
			name: "by sprint",
			opt:  gantt.RowOptions{GroupBy: gantt.GroupBySprint},
			want: []string{"group-S1", "epic", "fe", "fe-ui", "be", "group-Other", "misc", "group-S2", "qa", "qa-sub"},
		},
		{
			name: "by none",
			opt:  gantt.RowOptions{GroupBy: gantt.GroupByNone},
			want: []string{"epic", "fe", "fe-ui", "be", "qa-sub", "misc", "qa"},
		},
		{
			name: "collapsed group",
			opt:  gantt.RowOptions{GroupBy: gantt.GroupBySprint, CollapsedGroups: gantt.NewIDSet("S1")},
			want: []string{"group-S1", "group-Other", "misc", "group-S2", "qa", "qa-sub"},
		},
		{
			name: "collapsed task",
			opt:  gantt.RowOptions{GroupBy: gantt.GroupBySprint, CollapsedTasks: gantt.NewIDSet("fe")},
			want: []string{"group-S1", "epic", "fe", "be", "group-Other", "misc", "group-S2", "qa", "qa-sub"},
		},
		{
			name: "default mode is sprint",
			opt:  gantt.RowOptions{},
			want: []string{"group-S1", "epic", "fe", "fe-ui", "be", "group-Other", "misc", "group-S2", "qa", "qa-sub"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rowIDs(gantt.BuildRows(sprintFixture(), tt.opt).Rows)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildRows() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildRowsLevels(t *testing.T) {
	model := gantt.BuildRows(sprintFixture(), gantt.RowOptions{GroupBy: gantt.GroupBySprint})
	levels := map[string]int{}
	for _, r := range model.Rows {
		levels[r.ID] = r.Level
	}
	want := map[string]int{"group-S1": 0, "epic": 1, "fe": 2, "fe-ui": 3, "be": 2, "group-Other": 0, "misc": 1, "group-S2": 0, "qa": 1, "qa-sub": 1}
	if !reflect.DeepEqual(levels, want) {
		t.Errorf("levels = %v, want %v", levels, want)
	}

	none := gantt.BuildRows(sprintFixture(), gantt.RowOptions{GroupBy: gantt.GroupByNone})
	if none.Rows[0].Level != 0 || none.Rows[1].Level != 1 {
		t.Errorf("ungrouped levels start at 0, got %d and %d", none.Rows[0].Level, none.Rows[1].Level)
	}
}

func TestBuildRowsHasChildren(t *testing.T) {
	model := gantt.BuildRows(sprintFixture(), gantt.RowOptions{GroupBy: gantt.GroupBySprint})
	for _, r := range model.Rows {
		switch r.ID {
		case "epic", "fe":
			if !r.HasChildren {
				t.Errorf("%s should have children", r.ID)
			}
		case "be":
			// qa-sub lives in another sprint and is a root there.
			if r.HasChildren {
				t.Errorf("be has no children inside S1")
			}
		}
	}
}

func TestHasChildTasks(t *testing.T) {
	tests := []struct {
		name string
		id   string
		by   gantt.GroupBy
		want bool
	}{
		{name: "parent", id: "epic", by: gantt.GroupBySprint, want: true},
		{name: "leaf", id: "fe-ui", by: gantt.GroupBySprint, want: false},
		{name: "child in another sprint", id: "be", by: gantt.GroupBySprint, want: false},
		{name: "ungrouped", id: "be", by: gantt.GroupByNone, want: true},
		{name: "unknown", id: "ghost", by: gantt.GroupBySprint, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gantt.HasChildTasks(sprintFixture(), tt.id, tt.by); got != tt.want {
				t.Errorf("HasChildTasks(%q, %s) = %v, want %v", tt.id, tt.by, got, tt.want)
			}
		})
	}
}

// visibleByRule evaluates the visibility invariant directly from the task
// list: the group is expanded and no ancestor inside the group is collapsed.
func visibleByRule(tasks []gantt.Task, id string, opt gantt.RowOptions) bool {
	byID := map[string]gantt.Task{}
	for _, t := range tasks {
		byID[t.ID] = t
	}
	key := func(t gantt.Task) string {
		k := opt.GroupBy.Key(t)
		if k == "" {
			return gantt.OtherGroup
		}
		return k
	}

	task := byID[id]
	if opt.GroupBy != gantt.GroupByNone && opt.CollapsedGroups.Has(key(task)) {
		return false
	}
	cur := task
	for cur.ParentID != "" {
		parent, ok := byID[cur.ParentID]
		if !ok || (opt.GroupBy != gantt.GroupByNone && key(parent) != key(task)) {
			break
		}
		if opt.CollapsedTasks.Has(parent.ID) {
			return false
		}
		cur = parent
	}
	return true
}

func TestRowVisibilityInvariant(t *testing.T) {
	tasks := sprintFixture()
	groupKeys := []string{"S1", "S2", gantt.OtherGroup}
	taskKeys := []string{"epic", "fe", "be"}
	n := len(groupKeys) + len(taskKeys)

	for _, mode := range []gantt.GroupBy{gantt.GroupBySprint, gantt.GroupByNone} {
		for mask := 0; mask < 1<<n; mask++ {
			opt := gantt.RowOptions{GroupBy: mode, CollapsedGroups: gantt.IDSet{}, CollapsedTasks: gantt.IDSet{}}
			for i, k := range groupKeys {
				if mask&(1<<i) != 0 {
					opt.CollapsedGroups[k] = struct{}{}
				}
			}
			for i, k := range taskKeys {
				if mask&(1<<(i+len(groupKeys))) != 0 {
					opt.CollapsedTasks[k] = struct{}{}
				}
			}

			model := gantt.BuildRows(tasks, opt)
			seen := map[string]int{}
			for _, r := range model.TaskRows() {
				seen[r.ID]++
			}
			for _, task := range tasks {
				want := visibleByRule(tasks, task.ID, opt)
				if got := seen[task.ID] == 1; got != want {
					t.Errorf("mode=%s mask=%b task=%s visible=%v want %v", mode, mask, task.ID, got, want)
				}
				if seen[task.ID] > 1 {
					t.Errorf("mode=%s mask=%b task=%s emitted %d times", mode, mask, task.ID, seen[task.ID])
				}
			}
		}
	}
}

func TestToggleAffectsOnlySubtree(t *testing.T) {
	tasks := sprintFixture()
	before := gantt.BuildRows(tasks, gantt.RowOptions{GroupBy: gantt.GroupBySprint})
	after := gantt.BuildRows(tasks, gantt.RowOptions{GroupBy: gantt.GroupBySprint, CollapsedTasks: gantt.NewIDSet("fe")})

	removed := map[string]bool{}
	for _, id := range rowIDs(before.Rows) {
		removed[id] = true
	}
	for _, id := range rowIDs(after.Rows) {
		delete(removed, id)
	}
	if !reflect.DeepEqual(removed, map[string]bool{"fe-ui": true}) {
		t.Errorf("collapsing fe removed %v, want only fe-ui", removed)
	}
}

func TestBuildRowsCycleTerminates(t *testing.T) {
	tests := []struct {
		name  string
		tasks []gantt.Task
		want  []string
	}{
		{
			name: "two-task cycle",
			tasks: []gantt.Task{
				{ID: "A", ParentID: "B"},
				{ID: "B", ParentID: "A"},
			},
			want: []string{"A", "B"},
		},
		{
			name: "self parent",
			tasks: []gantt.Task{
				{ID: "A", ParentID: "A"},
				{ID: "B"},
			},
			want: []string{"A", "B"},
		},
		{
			name: "cycle with tail",
			tasks: []gantt.Task{
				{ID: "root"},
				{ID: "X", ParentID: "Z"},
				{ID: "Y", ParentID: "X"},
				{ID: "Z", ParentID: "Y"},
				{ID: "leaf", ParentID: "Y"},
			},
			want: []string{"root", "X", "Y", "Z", "leaf"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := gantt.BuildRows(tt.tasks, gantt.RowOptions{GroupBy: gantt.GroupByNone})
			if got := rowIDs(model.Rows); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("rows = %v, want %v", got, tt.want)
			}
			if len(model.Warnings) == 0 {
				t.Fatal("expected a cycle warning")
			}
			for _, w := range model.Warnings {
				if w.Code != gantt.WarnParentCycle {
					t.Errorf("unexpected warning %+v", w)
				}
			}
		})
	}
}

func TestBuildRowsCycleStableUnderCollapse(t *testing.T) {
	tasks := []gantt.Task{{ID: "A", ParentID: "B"}, {ID: "B", ParentID: "A"}}
	model := gantt.BuildRows(tasks, gantt.RowOptions{GroupBy: gantt.GroupByNone, CollapsedTasks: gantt.NewIDSet("A")})
	if got := rowIDs(model.Rows); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("rows = %v, want [A]", got)
	}
}

func TestBuildRowsLargeChainDoesNotDuplicate(t *testing.T) {
	var tasks []gantt.Task
	for i := 0; i < 200; i++ {
		parent := ""
		if i > 0 {
			parent = fmt.Sprintf("t%d", i-1)
		}
		tasks = append(tasks, gantt.Task{ID: fmt.Sprintf("t%d", i), ParentID: parent})
	}
	model := gantt.BuildRows(tasks, gantt.RowOptions{GroupBy: gantt.GroupByNone})
	if len(model.Rows) != 200 {
		t.Fatalf("got %d rows, want 200", len(model.Rows))
	}
	if model.Rows[199].Level != 199 {
		t.Errorf("deepest level = %d, want 199", model.Rows[199].Level)
	}
}
