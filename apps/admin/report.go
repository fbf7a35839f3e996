package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Luna-Breeze/question-answer-system/core/qa"
	"github.com/Luna-Breeze/question-answer-system/storage/export"
)

func (cli *commandLine) ratingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ratings TEACHER_ID",
		Short: "Show the rating summary of a teacher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sm, err := cli.store.RatingSummary(args[0])
			if err == qa.ErrNoRatings {
				cli.printf("%s: no ratings\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}
			cli.printf("%s: %s (%d rated)\n", args[0], sm, sm.Count)
			return nil
		},
	}
}

func (cli *commandLine) exportCommand() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the records as YAML (passwords excluded)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "" {
				return export.WriteYAML(cli.out, cli.store.Snapshot())
			}
			file, err := os.Create(outPath)
			if err != nil {
				return err
			}
			if err := export.WriteYAML(file, cli.store.Snapshot()); err != nil {
				_ = file.Close()
				return err
			}
			return file.Close()
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	return cmd
}
