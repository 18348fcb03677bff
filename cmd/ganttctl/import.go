package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gantt-chart/internal/dataset"
	datasetRepo "gantt-chart/internal/dataset/repository/sqlite"
	datasetUC "gantt-chart/internal/dataset/usecase"
	"gantt-chart/pkg/log"
)

func importCmd() *cobra.Command {
	var (
		dbPath string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Store a task file as a dataset in the service database",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, today, err := reference()
			if err != nil {
				return err
			}
			in, err := loadInput(p, today)
			if err != nil {
				return err
			}
			if name != "" {
				in.Name = name
			}

			db, err := datasetRepo.Open(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			l := log.Init(log.ZapConfig{Level: "warn", Encoding: "console", ColorEnabled: true})
			uc := datasetUC.New(l, datasetRepo.New(db, l), nil, "", p)

			out, err := uc.Create(context.Background(), dataset.CreateInput{
				Name:   in.Name,
				Source: dataset.SourceFile,
				Tasks:  in.Tasks,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %q (%d tasks)\n", Green("created"), Cyan(out.Dataset.ID), out.Dataset.Name, out.Dataset.TaskCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "gantt.db", "SQLite database path")
	cmd.Flags().StringVar(&name, "name", "", "Dataset name (default: from the file)")

	return cmd
}
