package dataset

import (
	"fmt"
	"strings"

	"gantt-chart/internal/gantt"
)

// ValidateTasks checks the structural rules a dataset must meet before it is
// stored: at least one task, and non-empty unique ids outside the group
// header namespace. Dangling parents, dependencies and cycles are tolerated
// by the layout engine.
func ValidateTasks(tasks []gantt.Task) error {
	if len(tasks) == 0 {
		return ErrEmptyDataset
	}
	seen := make(map[string]struct{}, len(tasks))
	for i, t := range tasks {
		if t.ID == "" {
			return fmt.Errorf("task #%d: %w", i, ErrMissingTaskID)
		}
		if strings.HasPrefix(t.ID, gantt.GroupRowPrefix) {
			return fmt.Errorf("task %q: %w", t.ID, ErrReservedTaskID)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("task %q: %w", t.ID, ErrDuplicateTaskID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}
