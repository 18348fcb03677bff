package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gantt-chart/internal/dataset"
	"gantt-chart/internal/dataset/repository"
	"gantt-chart/internal/gantt"
)

const defaultListLimit = 20

func (r *implRepository) CreateDataset(ctx context.Context, opt repository.CreateDatasetOptions) (dataset.Dataset, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: begin tx: %v", r.dsn("CreateDataset"), err)
		return dataset.Dataset{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO datasets (id, name, source, created_at) VALUES (?, ?, ?, ?)`,
		opt.ID, opt.Name, string(opt.Source), formatTime(opt.CreatedAt))
	if err != nil {
		r.l.Errorf(ctx, "%s: insert dataset %s: %v", r.dsn("CreateDataset"), opt.ID, err)
		return dataset.Dataset{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO dataset_tasks
		(dataset_id, position, task_id, name, resource, start_at, end_at, progress, dependencies, sprint, project, parent_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		r.l.Errorf(ctx, "%s: prepare task insert: %v", r.dsn("CreateDataset"), err)
		return dataset.Dataset{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	defer stmt.Close()

	for i, t := range opt.Tasks {
		deps, err := json.Marshal(nonNil(t.Dependencies))
		if err != nil {
			return dataset.Dataset{}, fmt.Errorf("%w: encode dependencies of %s: %v", repository.ErrFailedToInsert, t.ID, err)
		}
		_, err = stmt.ExecContext(ctx,
			opt.ID, i, t.ID, t.Name, t.Resource,
			formatTime(t.Start), formatTime(t.End), t.Progress,
			string(deps), t.Sprint, t.Project, t.ParentID)
		if err != nil {
			r.l.Errorf(ctx, "%s: insert task %s: %v", r.dsn("CreateDataset"), t.ID, err)
			return dataset.Dataset{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s: commit: %v", r.dsn("CreateDataset"), err)
		return dataset.Dataset{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	return dataset.Dataset{
		ID:        opt.ID,
		Name:      opt.Name,
		Source:    opt.Source,
		Tasks:     opt.Tasks,
		TaskCount: len(opt.Tasks),
		CreatedAt: opt.CreatedAt,
	}, nil
}

// GetOneDataset returns the first dataset matching opt with its tasks in
// insertion order. A zero Dataset and nil error means no match.
func (r *implRepository) GetOneDataset(ctx context.Context, opt repository.GetOneDatasetOptions) (dataset.Dataset, error) {
	where, args := buildGetOneQuery(opt)
	query := `SELECT d.id, d.name, d.source, d.created_at,
		(SELECT COUNT(*) FROM dataset_tasks t WHERE t.dataset_id = d.id)
		FROM datasets d` + where + ` ORDER BY d.created_at DESC LIMIT 1`

	d, err := scanDataset(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return dataset.Dataset{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneDataset"), err)
		return dataset.Dataset{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}

	d.Tasks, err = r.listTasks(ctx, d.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: load tasks of %s: %v", r.dsn("GetOneDataset"), d.ID, err)
		return dataset.Dataset{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return d, nil
}

func (r *implRepository) ListDatasets(ctx context.Context, opt repository.ListDatasetsOptions) ([]dataset.Dataset, int, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	where, args := "", []any{}
	if opt.Source != "" {
		where = " WHERE d.source = ?"
		args = append(args, string(opt.Source))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM datasets d`+where, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: count: %v", r.dsn("ListDatasets"), err)
		return nil, 0, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	query := `SELECT d.id, d.name, d.source, d.created_at,
		(SELECT COUNT(*) FROM dataset_tasks t WHERE t.dataset_id = d.id)
		FROM datasets d` + where + ` ORDER BY d.created_at DESC, d.id LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, append(args, limit, opt.Offset)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: query: %v", r.dsn("ListDatasets"), err)
		return nil, 0, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	out := make([]dataset.Dataset, 0, limit)
	for rows.Next() {
		d, err := scanDataset(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	return out, total, nil
}

func (r *implRepository) listTasks(ctx context.Context, datasetID string) ([]gantt.Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT task_id, name, resource, start_at, end_at, progress,
		dependencies, sprint, project, parent_id
		FROM dataset_tasks WHERE dataset_id = ? ORDER BY position`, datasetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []gantt.Task
	for rows.Next() {
		var (
			t          gantt.Task
			start, end string
			deps       string
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.Resource, &start, &end, &t.Progress,
			&deps, &t.Sprint, &t.Project, &t.ParentID); err != nil {
			return nil, err
		}
		if t.Start, err = parseTime(start); err != nil {
			return nil, fmt.Errorf("task %s start: %w", t.ID, err)
		}
		if t.End, err = parseTime(end); err != nil {
			return nil, fmt.Errorf("task %s end: %w", t.ID, err)
		}
		if err := json.Unmarshal([]byte(deps), &t.Dependencies); err != nil {
			return nil, fmt.Errorf("task %s dependencies: %w", t.ID, err)
		}
		if len(t.Dependencies) == 0 {
			t.Dependencies = nil
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// buildGetOneQuery turns the non-empty filters of opt into a WHERE clause.
func buildGetOneQuery(opt repository.GetOneDatasetOptions) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if opt.ID != "" {
		conds = append(conds, "d.id = ?")
		args = append(args, opt.ID)
	}
	if opt.Name != "" {
		conds = append(conds, "d.name = ?")
		args = append(args, opt.Name)
	}
	if opt.Source != "" {
		conds = append(conds, "d.source = ?")
		args = append(args, string(opt.Source))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDataset(s scanner) (dataset.Dataset, error) {
	var (
		d         dataset.Dataset
		source    string
		createdAt string
	)
	if err := s.Scan(&d.ID, &d.Name, &source, &createdAt, &d.TaskCount); err != nil {
		return dataset.Dataset{}, err
	}
	d.Source = dataset.Source(source)
	t, err := parseTime(createdAt)
	if err != nil {
		return dataset.Dataset{}, fmt.Errorf("dataset %s created_at: %w", d.ID, err)
	}
	d.CreatedAt = t
	return d, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
