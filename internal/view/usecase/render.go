package usecase

import (
	"bytes"
	"context"
	"fmt"

	"gantt-chart/internal/gantt"
	"gantt-chart/internal/render/raster"
	"gantt-chart/internal/render/svg"
	"gantt-chart/internal/view"
)

// Render lays out the view and encodes it. Data-integrity warnings are
// logged, never returned as errors. The first render arms the one-shot
// initial scroll.
func (uc *implUseCase) Render(ctx context.Context, input view.RenderInput) (view.RenderOutput, error) {
	format := input.Format
	if format == "" {
		format = view.FormatJSON
	}
	if !format.Valid() {
		return view.RenderOutput{}, view.ErrInvalidFormat
	}

	s, err := uc.session(ctx, input.ID)
	if err != nil {
		return view.RenderOutput{}, err
	}

	today := input.Today
	if today.IsZero() {
		today = uc.now()
	}

	s.Lock()
	scene, ok := s.Chart.Render(today)
	if !ok {
		s.Unlock()
		return view.RenderOutput{}, view.ErrNothingToRender
	}
	s.Chart.ScheduleInitialScroll(today, uc.cfg.InitialScrollDelay, func(left float64) {
		s.Lock()
		defer s.Unlock()
		s.ScrollLeft = left
		s.ScrollApplied = true
	})
	var scrollLeft float64
	if ts, ok := s.Chart.TimeScale(); ok {
		scrollLeft = gantt.InitialScrollLeft(ts, today)
	}
	revision, title := s.Revision, s.Title
	s.Unlock()

	for _, w := range scene.Warnings {
		uc.l.Warnf(ctx, "view.usecase.Render: view=%s %s task=%s: %s", input.ID, w.Code, w.TaskID, w.Message)
	}

	out := view.RenderOutput{Format: format, Revision: revision}
	var buf bytes.Buffer
	switch format {
	case view.FormatJSON:
		out.ContentType = "application/json; charset=utf-8"
		out.Scene = scene
		return out, nil
	case view.FormatSVG:
		out.ContentType = "image/svg+xml"
		err = svg.Render(&buf, scene)
	case view.FormatPNG:
		out.ContentType = "image/png"
		err = raster.Render(&buf, scene)
	case view.FormatHTML:
		out.ContentType = "text/html; charset=utf-8"
		err = svg.WritePage(&buf, svg.PageData{
			Title:      title,
			APIBase:    input.APIBase,
			ScrollLeft: scrollLeft,
			Scene:      scene,
		})
	}
	if err != nil {
		uc.l.Errorf(ctx, "view.usecase.Render: view=%s format=%s: %v", input.ID, format, err)
		return view.RenderOutput{}, fmt.Errorf("%w: %v", view.ErrFailedToRender, err)
	}
	out.Body = buf.Bytes()
	return out, nil
}
