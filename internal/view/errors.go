package view

import "errors"

var (
	ErrViewNotFound       = errors.New("view not found")
	ErrInvalidWidth       = errors.New("width must leave room for the row rail and right margin")
	ErrInvalidGroupBy     = errors.New("group_by must be sprint, project or none")
	ErrInvalidFormat      = errors.New("format must be json, svg, png or html")
	ErrInvalidGesture     = errors.New("unknown viewport gesture")
	ErrGroupNotFound      = errors.New("group not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskNotVisible     = errors.New("task is not visible")
	ErrTaskNotCollapsible = errors.New("task has no children to collapse")
	ErrNothingToRender    = errors.New("view has no tasks to render")
	ErrFailedToRender     = errors.New("failed to render view")
)
