// Package taskfile reads task lists from YAML documents. Dates may be
// absolute ("2025-01-14", RFC3339) or relative ("today", "in 3 days",
// "10 days ago") and are resolved against a reference time.
package taskfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"gantt-chart/internal/dataset"
	"gantt-chart/internal/gantt"
	"gantt-chart/pkg/datemath"
)

var (
	ErrNoTasks     = errors.New("task file has no tasks")
	ErrInvalidDate = errors.New("invalid task date")
)

// File is the on-disk shape of a task list.
type File struct {
	Name    string  `yaml:"name"`
	GroupBy string  `yaml:"group_by,omitempty"` // suggested grouping; callers may ignore it
	Tasks   []Entry `yaml:"tasks"`
}

// Entry is one task. Start and End are kept as strings so relative phrases
// survive decoding.
type Entry struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Resource     string   `yaml:"resource,omitempty"`
	Start        string   `yaml:"start"`
	End          string   `yaml:"end"`
	Progress     float64  `yaml:"progress"`
	Dependencies []string `yaml:"dependencies,omitempty"`
	Sprint       string   `yaml:"sprint,omitempty"`
	Project      string   `yaml:"project,omitempty"`
	ParentID     string   `yaml:"parent_id,omitempty"`
}

// Decoded is a task file with every date resolved.
type Decoded struct {
	Name    string
	GroupBy gantt.GroupBy
	Tasks   []gantt.Task
}

// Decode reads a YAML task file from r and resolves its dates with p,
// anchoring relative phrases at now.
func Decode(r io.Reader, p *datemath.Parser, now time.Time) (Decoded, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Decoded{}, ErrNoTasks
		}
		return Decoded{}, fmt.Errorf("taskfile: decode yaml: %w", err)
	}
	return f.Resolve(p, now)
}

// Load decodes the task file at path.
func Load(path string, p *datemath.Parser, now time.Time) (Decoded, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Decoded{}, fmt.Errorf("taskfile: %w", err)
	}
	defer fh.Close()
	return Decode(fh, p, now)
}

// Resolve converts the entries of f to tasks, keeping file order.
func (f File) Resolve(p *datemath.Parser, now time.Time) (Decoded, error) {
	if len(f.Tasks) == 0 {
		return Decoded{}, ErrNoTasks
	}

	out := Decoded{
		Name:    f.Name,
		GroupBy: gantt.GroupBy(f.GroupBy),
		Tasks:   make([]gantt.Task, 0, len(f.Tasks)),
	}
	if !out.GroupBy.Valid() {
		out.GroupBy = ""
	}

	for _, e := range f.Tasks {
		start, err := p.Resolve(e.Start, now)
		if err != nil {
			return Decoded{}, fmt.Errorf("%w: task %q start: %v", ErrInvalidDate, e.ID, err)
		}
		end, err := p.Resolve(e.End, now)
		if err != nil {
			return Decoded{}, fmt.Errorf("%w: task %q end: %v", ErrInvalidDate, e.ID, err)
		}
		out.Tasks = append(out.Tasks, gantt.Task{
			ID:           e.ID,
			Name:         e.Name,
			Resource:     e.Resource,
			Start:        start.AbsoluteTime,
			End:          end.AbsoluteTime,
			Progress:     e.Progress,
			Dependencies: e.Dependencies,
			Sprint:       e.Sprint,
			Project:      e.Project,
			ParentID:     e.ParentID,
		})
	}

	if err := dataset.ValidateTasks(out.Tasks); err != nil {
		return Decoded{}, fmt.Errorf("taskfile: %w", err)
	}
	return out, nil
}
