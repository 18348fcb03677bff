package view

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (StateOutput, error)
	Get(ctx context.Context, id string) (StateOutput, error)
	Update(ctx context.Context, input UpdateInput) (StateOutput, error)
	Delete(ctx context.Context, id string) error
	Render(ctx context.Context, input RenderInput) (RenderOutput, error)
	ToggleGroup(ctx context.Context, input ToggleInput) (ToggleOutput, error)
	ToggleTask(ctx context.Context, input ToggleInput) (ToggleOutput, error)
	ClickTask(ctx context.Context, input ToggleInput) (ClickOutput, error)
	Gesture(ctx context.Context, input GestureInput) (GestureOutput, error)
}
