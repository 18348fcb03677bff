package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gantt-chart/internal/dataset/taskfile"
	"gantt-chart/internal/gantt"
)

func rowsCmd() *cobra.Command {
	var cf chartFlags

	cmd := &cobra.Command{
		Use:   "rows",
		Short: "Print the row model and layout warnings",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := cf.chart()
			if err != nil {
				return err
			}
			model := c.Rows()

			w := cmd.OutOrStdout()
			for _, r := range model.Rows {
				indent := strings.Repeat("  ", r.Level)
				marker := " "
				if r.Kind == gantt.RowGroup || r.HasChildren {
					marker = gantt.GlyphExpanded
					if r.Collapsed {
						marker = gantt.GlyphCollapsed
					}
				}
				if r.Kind == gantt.RowGroup {
					fmt.Fprintf(w, "%s%s %s\n", indent, marker, Bold(r.Name))
					continue
				}
				t := r.Task
				fmt.Fprintf(w, "%s%s %s %s %s..%s %s\n", indent, marker, Cyan(t.ID), t.Name,
					t.Start.Format("2006-01-02"), t.End.Format("2006-01-02"), Dim(fmt.Sprintf("%.0f%%", t.Progress)))
			}
			printWarnings(model.Warnings)
			return nil
		},
	}

	cf.register(cmd)
	return cmd
}

func demosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demos",
		Short: "List the bundled demo datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, today, err := reference()
			if err != nil {
				return err
			}
			ds, err := taskfile.Demos(p, today)
			if err != nil {
				return err
			}
			for _, d := range ds {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d tasks\n", Cyan(slug(d.Name)), d.Name, len(d.Tasks))
			}
			return nil
		},
	}
}
