package main

import (
	"log"
	"os"

	"github.com/Luna-Breeze/question-answer-system/core"
	"github.com/Luna-Breeze/question-answer-system/core/records"
	"github.com/Luna-Breeze/question-answer-system/services/logger"
	"github.com/Luna-Breeze/question-answer-system/storage/flatfile"
)

func main() {
	conf, err := core.LoadConfig()
	errAndDie(err)

	logger, err := logsvc.NewZapLogger(conf)
	errAndDie(err)

	storage := flatfile.New(flatfile.PathsFromConfig(conf), logger)

	// start CLI
	cli := commandLine{
		storage: storage,
		store:   records.Open(storage, logger),
		log:     logger,
		out:     os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("admin command failed", "error", err)
		}
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
