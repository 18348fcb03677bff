// Package gantt lays out Gantt schedules: a frozen date scale, a grouped and
// nested row model with collapse state, stacked row bands, progress bars,
// routed dependency connectors, and one pan/zoom transform projected onto
// three surfaces (date header, row-label rail, chart body).
//
// Everything except the viewport Controller is a pure function of the task
// list and the view state; a redraw rebuilds the whole Scene.
package gantt
