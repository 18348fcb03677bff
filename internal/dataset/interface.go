package dataset

import (
	"context"
	"time"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	ImportCalendar(ctx context.Context, input ImportCalendarInput) (CreateOutput, error)
	SeedDemos(ctx context.Context, now time.Time) (int, error)
}
