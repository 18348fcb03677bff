package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gantt-chart/internal/gantt"
	"gantt-chart/internal/render/raster"
	"gantt-chart/internal/render/svg"
)

type chartFlags struct {
	groupBy         string
	width           float64
	collapsedGroups []string
	collapsedTasks  []string
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.groupBy, "group-by", "", "sprint, project or none (default: from the file, else sprint)")
	cmd.Flags().Float64Var(&f.width, "width", gantt.DefaultWidth, "Chart width in pixels")
	cmd.Flags().StringSliceVar(&f.collapsedGroups, "collapse-group", nil, "Group key to collapse (repeatable)")
	cmd.Flags().StringSliceVar(&f.collapsedTasks, "collapse-task", nil, "Task id to collapse (repeatable)")
}

// chart builds a Chart over the loaded input with the flag overrides applied
// and returns it with the reference date.
func (f *chartFlags) chart() (*gantt.Chart, time.Time, error) {
	p, today, err := reference()
	if err != nil {
		return nil, today, err
	}
	in, err := loadInput(p, today)
	if err != nil {
		return nil, today, err
	}

	groupBy := in.GroupBy
	if f.groupBy != "" {
		groupBy = gantt.GroupBy(f.groupBy)
		if !groupBy.Valid() {
			return nil, today, fmt.Errorf("--group-by: unknown grouping %q", f.groupBy)
		}
	}
	if f.width <= gantt.MarginLeft+gantt.MarginRight {
		return nil, today, fmt.Errorf("--width must exceed %v", gantt.MarginLeft+gantt.MarginRight)
	}

	c := gantt.NewChart(gantt.Options{Width: f.width, GroupBy: groupBy})
	c.SetDataset(in.Name, in.Tasks)
	for _, key := range f.collapsedGroups {
		c.ToggleGroup(key)
	}
	for _, id := range f.collapsedTasks {
		c.ToggleTask(id)
	}
	return c, today, nil
}

func renderCmd() *cobra.Command {
	var (
		cf     chartFlags
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a task file as svg, png or html",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, today, err := cf.chart()
			if err != nil {
				return err
			}
			scene, ok := c.Render(today)
			if !ok {
				return fmt.Errorf("nothing to render")
			}
			printWarnings(scene.Warnings)

			var buf bytes.Buffer
			switch strings.ToLower(format) {
			case "svg":
				err = svg.Render(&buf, scene)
			case "png":
				err = raster.Render(&buf, scene)
			case "html":
				var left float64
				if ts, ok := c.TimeScale(); ok {
					left = gantt.InitialScrollLeft(ts, today)
				}
				err = svg.WritePage(&buf, svg.PageData{Title: c.DatasetID(), ScrollLeft: left, Scene: scene})
			default:
				return fmt.Errorf("--format: unknown format %q", format)
			}
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), out, buf.Bytes())
		},
	}

	cf.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "svg, png or html")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: stdout)")

	return cmd
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s %s (%d bytes)\n", Green("wrote"), path, len(data))
	return nil
}
