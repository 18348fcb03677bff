package http

import (
	"fmt"
	"time"

	"gantt-chart/internal/dataset"
	"gantt-chart/internal/gantt"
	"gantt-chart/pkg/datemath"
	"gantt-chart/pkg/response"
)

// --- Request DTOs ---

type taskReq struct {
	ID           string   `json:"id"           binding:"required"`
	Name         string   `json:"name"`
	Resource     string   `json:"resource"`
	Start        string   `json:"start"        binding:"required"`
	End          string   `json:"end"          binding:"required"`
	Progress     float64  `json:"progress"`
	Dependencies []string `json:"dependencies"`
	Sprint       string   `json:"sprint"`
	Project      string   `json:"project"`
	ParentID     string   `json:"parent_id"`
}

func (r taskReq) toTask(p *datemath.Parser, now time.Time) (gantt.Task, error) {
	start, err := p.Resolve(r.Start, now)
	if err != nil {
		return gantt.Task{}, fmt.Errorf("task %q start: %w", r.ID, err)
	}
	end, err := p.Resolve(r.End, now)
	if err != nil {
		return gantt.Task{}, fmt.Errorf("task %q end: %w", r.ID, err)
	}
	return gantt.Task{
		ID:           r.ID,
		Name:         r.Name,
		Resource:     r.Resource,
		Start:        start.AbsoluteTime,
		End:          end.AbsoluteTime,
		Progress:     r.Progress,
		Dependencies: r.Dependencies,
		Sprint:       r.Sprint,
		Project:      r.Project,
		ParentID:     r.ParentID,
	}, nil
}

type createReq struct {
	Name  string    `json:"name"  binding:"max=255"`
	Tasks []taskReq `json:"tasks" binding:"required,min=1,dive"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput(p *datemath.Parser, now time.Time) (dataset.CreateInput, error) {
	tasks := make([]gantt.Task, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		task, err := t.toTask(p, now)
		if err != nil {
			return dataset.CreateInput{}, err
		}
		tasks = append(tasks, task)
	}
	return dataset.CreateInput{
		Name:   r.Name,
		Source: dataset.SourceAPI,
		Tasks:  tasks,
	}, nil
}

// ---

type listReq struct {
	Source string `form:"source" binding:"omitempty,oneof=api demo file calendar"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() dataset.ListInput {
	return dataset.ListInput{
		Source: dataset.Source(r.Source),
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// ---

type importCalendarReq struct {
	Name       string `json:"name"        binding:"max=255"`
	CalendarID string `json:"calendar_id"`
	From       string `json:"from"` // absolute or relative; empty means 30 days ago
	To         string `json:"to"`   // absolute or relative; empty means 90 days after from
}

func (r importCalendarReq) validate() error { return nil }

func (r importCalendarReq) toInput(p *datemath.Parser, now time.Time) (dataset.ImportCalendarInput, error) {
	in := dataset.ImportCalendarInput{Name: r.Name, CalendarID: r.CalendarID}
	if r.From != "" {
		from, err := p.Resolve(r.From, now)
		if err != nil {
			return in, fmt.Errorf("from: %w", err)
		}
		in.From = from.AbsoluteTime
	}
	if r.To != "" {
		to, err := p.Resolve(r.To, now)
		if err != nil {
			return in, fmt.Errorf("to: %w", err)
		}
		in.To = to.AbsoluteTime
	}
	return in, nil
}

// --- Response DTOs ---

type taskResp struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Resource     string    `json:"resource,omitempty"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Progress     float64   `json:"progress"`
	Dependencies []string  `json:"dependencies,omitempty"`
	Sprint       string    `json:"sprint,omitempty"`
	Project      string    `json:"project,omitempty"`
	ParentID     string    `json:"parent_id,omitempty"`
}

func newTaskResp(t gantt.Task) taskResp {
	return taskResp{
		ID:           t.ID,
		Name:         t.Name,
		Resource:     t.Resource,
		Start:        t.Start,
		End:          t.End,
		Progress:     t.Progress,
		Dependencies: t.Dependencies,
		Sprint:       t.Sprint,
		Project:      t.Project,
		ParentID:     t.ParentID,
	}
}

type datasetResp struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Source    string            `json:"source"`
	TaskCount int               `json:"task_count"`
	CreatedAt response.DateTime `json:"created_at"`
	Tasks     []taskResp        `json:"tasks,omitempty"`
}

func newDatasetResp(d dataset.Dataset, withTasks bool) datasetResp {
	resp := datasetResp{
		ID:        d.ID,
		Name:      d.Name,
		Source:    string(d.Source),
		TaskCount: d.TaskCount,
		CreatedAt: response.DateTime(d.CreatedAt),
	}
	if withTasks {
		resp.Tasks = make([]taskResp, len(d.Tasks))
		for i, t := range d.Tasks {
			resp.Tasks[i] = newTaskResp(t)
		}
	}
	return resp
}

type createResp struct {
	Dataset datasetResp `json:"dataset"`
}

func (h *handler) newCreateResp(out dataset.CreateOutput) createResp {
	return createResp{Dataset: newDatasetResp(out.Dataset, false)}
}

type listResp struct {
	Datasets []datasetResp `json:"datasets"`
	Total    int           `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}

func (h *handler) newListResp(out dataset.ListOutput) listResp {
	items := make([]datasetResp, len(out.Datasets))
	for i, d := range out.Datasets {
		items[i] = newDatasetResp(d, false)
	}
	return listResp{
		Datasets: items,
		Total:    out.Total,
		Limit:    out.Limit,
		Offset:   out.Offset,
	}
}

type detailResp struct {
	Dataset datasetResp `json:"dataset"`
}

func (h *handler) newDetailResp(out dataset.DetailOutput) detailResp {
	return detailResp{Dataset: newDatasetResp(out.Dataset, true)}
}
