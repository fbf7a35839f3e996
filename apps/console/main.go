package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Luna-Breeze/question-answer-system/core"
	"github.com/Luna-Breeze/question-answer-system/core/records"
	"github.com/Luna-Breeze/question-answer-system/services/logger"
	"github.com/Luna-Breeze/question-answer-system/storage/flatfile"
)

func main() {
	conf, err := core.LoadConfig()
	errAndDie(err)

	if err := newRootCommand(conf).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(conf *core.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "qadesk",
		Short:         "Teacher/student QA tutoring desk",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(conf)
		},
	}
	cmd.Flags().StringVar(&conf.DataDir, "data-dir", conf.DataDir, "directory holding the data files")
	cmd.Flags().BoolVar(&conf.SeedDemo, "seed", conf.SeedDemo, "write demonstration data when no data file exists")
	cmd.Flags().StringVar(&conf.HistoryFile, "history", conf.HistoryFile, "readline history file")
	return cmd
}

func runConsole(conf *core.Config) error {
	logger, err := logsvc.NewZapLogger(conf)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	storage := flatfile.New(flatfile.PathsFromConfig(conf), logger)
	if conf.SeedDemo {
		if _, err := records.SeedIfMissing(storage, logger); err != nil {
			logger.Error("seeding failed", "error", err)
		}
	}
	store := records.Open(storage, logger)

	in, err := newReadlinePrompter(conf.HistoryFile)
	if err != nil {
		return err
	}
	//goland:noinspection GoUnhandledErrorResult
	defer in.Close()

	if err := newShell(store, in, os.Stdout, conf.AppName).run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	return nil
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
