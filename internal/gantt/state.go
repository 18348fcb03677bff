package gantt

import (
	"sort"
	"sync"
	"time"
)

// IDSet is a set of group keys or task ids.
type IDSet map[string]struct{}

// NewIDSet builds a set from ids.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership. A nil set is empty.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members in lexical order.
func (s IDSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s IDSet) clone() IDSet {
	c := make(IDSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// ViewState is the collapse state of one mounted chart. It is mutated only
// by the toggle methods; every mutation notifies subscribers so the owner
// can redraw.
type ViewState struct {
	groups    IDSet
	tasks     IDSet
	listeners []func()
}

// NewViewState returns a state with nothing collapsed.
func NewViewState() *ViewState {
	return &ViewState{groups: IDSet{}, tasks: IDSet{}}
}

// Subscribe registers fn to run after every toggle.
func (v *ViewState) Subscribe(fn func()) {
	v.listeners = append(v.listeners, fn)
}

// ToggleGroup flips the collapse flag of a group key and reports the new value.
func (v *ViewState) ToggleGroup(key string) bool {
	return v.toggle(v.groups, key)
}

// ToggleTask flips the collapse flag of a task id and reports the new value.
func (v *ViewState) ToggleTask(id string) bool {
	return v.toggle(v.tasks, id)
}

func (v *ViewState) toggle(set IDSet, id string) bool {
	_, collapsed := set[id]
	if collapsed {
		delete(set, id)
	} else {
		set[id] = struct{}{}
	}
	for _, fn := range v.listeners {
		fn()
	}
	return !collapsed
}

// GroupCollapsed reports whether key is collapsed.
func (v *ViewState) GroupCollapsed(key string) bool { return v.groups.Has(key) }

// TaskCollapsed reports whether id is collapsed.
func (v *ViewState) TaskCollapsed(id string) bool { return v.tasks.Has(id) }

// CollapsedGroups returns a copy of the collapsed group keys.
func (v *ViewState) CollapsedGroups() IDSet { return v.groups.clone() }

// CollapsedTasks returns a copy of the collapsed task ids.
func (v *ViewState) CollapsedTasks() IDSet { return v.tasks.clone() }

// InitialScroll runs a deferred action once, after a short settle delay.
// It cannot be cancelled and is never retried.
type InitialScroll struct {
	once sync.Once
}

// Schedule arms the action on the first call; later calls do nothing.
func (s *InitialScroll) Schedule(delay time.Duration, fn func()) {
	s.once.Do(func() {
		time.AfterFunc(delay, fn)
	})
}
