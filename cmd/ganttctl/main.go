// Command ganttctl renders Gantt charts from YAML task files without the
// HTTP service.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gantt-chart/internal/dataset/taskfile"
	"gantt-chart/pkg/datemath"
)

var (
	flagInput    string
	flagDemo     string
	flagTimezone string
	flagToday    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ganttctl",
		Short: "Lay out and render Gantt charts from task files",
		Long: `ganttctl reads a YAML task list (or one of the bundled demos), groups it by
sprint or project, and renders the chart as SVG, PNG or a standalone HTML page.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flagInput, "input", "i", "", "YAML task file")
	rootCmd.PersistentFlags().StringVar(&flagDemo, "demo", "", "Use a bundled demo instead of --input (see `ganttctl demos`)")
	rootCmd.PersistentFlags().StringVar(&flagTimezone, "tz", "UTC", "Timezone for relative dates such as \"today\"")
	rootCmd.PersistentFlags().StringVar(&flagToday, "today", "", "Reference date (default: now)")

	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(rowsCmd())
	rootCmd.AddCommand(demosCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(authCmd())

	return rootCmd
}

// reference returns the date parser and the resolved --today.
func reference() (*datemath.Parser, time.Time, error) {
	p, err := datemath.NewParser(flagTimezone)
	if err != nil {
		return nil, time.Time{}, err
	}
	now := time.Now()
	if flagToday == "" {
		return p, now, nil
	}
	res, err := p.Resolve(flagToday, now)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("--today: %w", err)
	}
	return p, res.AbsoluteTime, nil
}

// loadInput decodes --input or the --demo with that name.
func loadInput(p *datemath.Parser, today time.Time) (taskfile.Decoded, error) {
	switch {
	case flagInput != "" && flagDemo != "":
		return taskfile.Decoded{}, fmt.Errorf("--input and --demo are mutually exclusive")
	case flagInput != "":
		return taskfile.Load(flagInput, p, today)
	case flagDemo != "":
		demos, err := taskfile.Demos(p, today)
		if err != nil {
			return taskfile.Decoded{}, err
		}
		for _, d := range demos {
			if d.Name == flagDemo || slug(d.Name) == flagDemo {
				return d, nil
			}
		}
		return taskfile.Decoded{}, fmt.Errorf("unknown demo %q", flagDemo)
	}
	return taskfile.Decoded{}, fmt.Errorf("one of --input or --demo is required")
}
