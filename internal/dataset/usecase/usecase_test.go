package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gantt-chart/internal/dataset"
	"gantt-chart/internal/dataset/repository"
	"gantt-chart/internal/dataset/usecase"
	"gantt-chart/internal/gantt"
	"gantt-chart/pkg/datemath"
	"gantt-chart/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	items   []dataset.Dataset
	fail    bool
	lastOpt repository.ListDatasetsOptions
}

func (m *mockRepo) CreateDataset(ctx context.Context, opt repository.CreateDatasetOptions) (dataset.Dataset, error) {
	if m.fail {
		return dataset.Dataset{}, repository.ErrFailedToInsert
	}
	d := dataset.Dataset{
		ID: opt.ID, Name: opt.Name, Source: opt.Source,
		Tasks: opt.Tasks, TaskCount: len(opt.Tasks), CreatedAt: opt.CreatedAt,
	}
	m.items = append(m.items, d)
	return d, nil
}

func (m *mockRepo) GetOneDataset(ctx context.Context, opt repository.GetOneDatasetOptions) (dataset.Dataset, error) {
	if m.fail {
		return dataset.Dataset{}, repository.ErrFailedToGet
	}
	for _, d := range m.items {
		if (opt.ID == "" || d.ID == opt.ID) && (opt.Name == "" || d.Name == opt.Name) && (opt.Source == "" || d.Source == opt.Source) {
			return d, nil
		}
	}
	return dataset.Dataset{}, nil
}

func (m *mockRepo) ListDatasets(ctx context.Context, opt repository.ListDatasetsOptions) ([]dataset.Dataset, int, error) {
	m.lastOpt = opt
	if m.fail {
		return nil, 0, repository.ErrFailedToList
	}
	return m.items, len(m.items), nil
}

type mockCalendar struct {
	events []gcalendar.Event
	err    error
	req    gcalendar.ListEventsRequest
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.req = req
	return m.events, m.err
}

func newParser(t *testing.T) *datemath.Parser {
	t.Helper()
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}

func sampleTasks() []gantt.Task {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []gantt.Task{
		{ID: "a", Name: "A", Start: start, End: start.AddDate(0, 0, 3)},
		{ID: "b", Name: "B", Start: start, End: start.AddDate(0, 0, 5), Dependencies: []string{"a"}},
	}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		input   dataset.CreateInput
		fail    bool
		wantErr error
	}{
		{name: "ok", input: dataset.CreateInput{Name: "Plan", Tasks: sampleTasks()}},
		{name: "no tasks", input: dataset.CreateInput{Name: "Plan"}, wantErr: dataset.ErrEmptyDataset},
		{name: "missing id", input: dataset.CreateInput{Tasks: []gantt.Task{{Name: "x"}}}, wantErr: dataset.ErrMissingTaskID},
		{name: "duplicate id", input: dataset.CreateInput{Tasks: []gantt.Task{{ID: "a"}, {ID: "a"}}}, wantErr: dataset.ErrDuplicateTaskID},
		{name: "group header id", input: dataset.CreateInput{Tasks: []gantt.Task{{ID: "group-S1", Sprint: "S1"}}}, wantErr: dataset.ErrReservedTaskID},
		{name: "repo failure", input: dataset.CreateInput{Tasks: sampleTasks()}, fail: true, wantErr: repository.ErrFailedToInsert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{fail: tt.fail}
			uc := usecase.New(&mockLogger{}, repo, nil, "", newParser(t))

			out, err := uc.Create(context.Background(), tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if out.Dataset.ID == "" || out.Dataset.Source != dataset.SourceAPI || out.Dataset.TaskCount != 2 {
				t.Errorf("unexpected dataset %+v", out.Dataset)
			}
			if out.Dataset.CreatedAt.IsZero() {
				t.Error("CreatedAt not set")
			}
		})
	}
}

func TestCreateDefaultsName(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockRepo{}, nil, "", newParser(t))
	out, err := uc.Create(context.Background(), dataset.CreateInput{Name: "  ", Tasks: sampleTasks()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.Dataset.Name != "Untitled" {
		t.Errorf("Name = %q, want Untitled", out.Dataset.Name)
	}
}

func TestListClampsPaging(t *testing.T) {
	repo := &mockRepo{}
	uc := usecase.New(&mockLogger{}, repo, nil, "", newParser(t))

	out, err := uc.List(context.Background(), dataset.ListInput{Limit: 1000, Offset: -4})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastOpt.Limit != 100 || repo.lastOpt.Offset != 0 {
		t.Errorf("repo got limit=%d offset=%d", repo.lastOpt.Limit, repo.lastOpt.Offset)
	}
	if out.Limit != 100 {
		t.Errorf("Limit = %d", out.Limit)
	}

	if _, err := uc.List(context.Background(), dataset.ListInput{}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastOpt.Limit != 20 {
		t.Errorf("default limit = %d, want 20", repo.lastOpt.Limit)
	}
}

func TestDetail(t *testing.T) {
	repo := &mockRepo{items: []dataset.Dataset{{ID: "ds-1", Name: "Plan", Tasks: sampleTasks()}}}
	uc := usecase.New(&mockLogger{}, repo, nil, "", newParser(t))

	out, err := uc.Detail(context.Background(), "ds-1")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if out.Dataset.Name != "Plan" {
		t.Errorf("Name = %q", out.Dataset.Name)
	}

	for _, id := range []string{"", "missing"} {
		if _, err := uc.Detail(context.Background(), id); !errors.Is(err, dataset.ErrDatasetNotFound) {
			t.Errorf("Detail(%q) err = %v, want ErrDatasetNotFound", id, err)
		}
	}
}

func TestImportCalendar(t *testing.T) {
	past := time.Date(2000, 1, 3, 9, 0, 0, 0, time.UTC) // Monday of ISO week 1
	future := time.Date(2999, 6, 1, 0, 0, 0, 0, time.UTC)
	cal := &mockCalendar{events: []gcalendar.Event{
		{ID: "e1", Summary: "Kickoff", Organizer: "lead@example.com", CalendarName: "Team", StartTime: past, EndTime: past.Add(time.Hour)},
		{ID: "e2", StartTime: future, EndTime: future.AddDate(0, 0, 1), AllDay: true},
	}}
	repo := &mockRepo{}
	uc := usecase.New(&mockLogger{}, repo, cal, "team@example.com", newParser(t))

	out, err := uc.ImportCalendar(context.Background(), dataset.ImportCalendarInput{From: past, To: future.AddDate(0, 0, 2)})
	if err != nil {
		t.Fatalf("ImportCalendar: %v", err)
	}
	if cal.req.CalendarID != "team@example.com" {
		t.Errorf("CalendarID = %q, want configured default", cal.req.CalendarID)
	}
	if out.Dataset.Source != dataset.SourceCalendar || len(out.Dataset.Tasks) != 2 {
		t.Fatalf("unexpected dataset %+v", out.Dataset)
	}

	kickoff, later := out.Dataset.Tasks[0], out.Dataset.Tasks[1]
	if kickoff.Progress != 100 || kickoff.Sprint != "2000-W01" || kickoff.Project != "Team" || kickoff.Resource != "lead@example.com" {
		t.Errorf("kickoff = %+v", kickoff)
	}
	if later.Progress != 0 || later.Name != "(untitled)" || later.Project != "team@example.com" {
		t.Errorf("later = %+v", later)
	}
}

func TestImportCalendarErrors(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name     string
		calendar usecase.CalendarSource
		input    dataset.ImportCalendarInput
		wantErr  error
	}{
		{name: "not configured", calendar: nil, wantErr: dataset.ErrCalendarUnavailable},
		{name: "inverted range", calendar: &mockCalendar{}, input: dataset.ImportCalendarInput{From: now, To: now.Add(-time.Hour)}, wantErr: dataset.ErrInvalidRange},
		{name: "no events", calendar: &mockCalendar{}, wantErr: dataset.ErrEmptyDataset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.New(&mockLogger{}, &mockRepo{}, tt.calendar, "primary", newParser(t))
			_, err := uc.ImportCalendar(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("api failure", func(t *testing.T) {
		cal := &mockCalendar{err: errors.New("quota exceeded")}
		uc := usecase.New(&mockLogger{}, &mockRepo{}, cal, "primary", newParser(t))
		if _, err := uc.ImportCalendar(context.Background(), dataset.ImportCalendarInput{}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestSeedDemosIsIdempotent(t *testing.T) {
	repo := &mockRepo{}
	uc := usecase.New(&mockLogger{}, repo, nil, "", newParser(t))
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	n, err := uc.SeedDemos(context.Background(), now)
	if err != nil {
		t.Fatalf("SeedDemos: %v", err)
	}
	if n != 2 || len(repo.items) != 2 {
		t.Fatalf("seeded %d (stored %d), want 2", n, len(repo.items))
	}
	for _, d := range repo.items {
		if d.Source != dataset.SourceDemo {
			t.Errorf("%q source = %s", d.Name, d.Source)
		}
	}

	n, err = uc.SeedDemos(context.Background(), now)
	if err != nil {
		t.Fatalf("second SeedDemos: %v", err)
	}
	if n != 0 || len(repo.items) != 2 {
		t.Errorf("second run seeded %d, want 0", n)
	}
}
