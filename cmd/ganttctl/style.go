package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"gantt-chart/internal/gantt"
)

var (
	Bold   = color.New(color.Bold).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
)

// printWarnings writes layout warnings to stderr.
func printWarnings(ws []gantt.Warning) {
	for _, w := range ws {
		fmt.Fprintf(os.Stderr, "%s %s %s: %s\n", Yellow("warning"), Dim(string(w.Code)), Bold(w.TaskID), w.Message)
	}
}

// slug lowercases name and joins its words with dashes.
func slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
