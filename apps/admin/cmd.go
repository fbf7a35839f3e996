package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Luna-Breeze/question-answer-system/core"
	"github.com/Luna-Breeze/question-answer-system/core/records"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	storage records.Storage
	store   *records.Store
	log     core.Logger
	out     io.Writer
}

func (cli *commandLine) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(cli.out, format, args...)
}

func (cli *commandLine) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Maintenance commands for the QA records",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			return errHelp
		},
	}
	root.SetOut(cli.out)
	root.SetErr(cli.out)

	courseCmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			return errHelp
		},
	}
	courseCmd.AddCommand(cli.courseAddCommand(), cli.courseListCommand())

	root.AddCommand(
		cli.seedCommand(),
		courseCmd,
		cli.resetPasswordCommand(),
		cli.ratingsCommand(),
		cli.exportCommand(),
	)
	return root
}

// run executes the command line `args`, program name included.
func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		_ = cli.rootCommand().Usage()
		return errHelp
	}
	root := cli.rootCommand()
	root.SetArgs(args[1:])
	return root.Execute()
}

// readPassword prompts for a password without echo.
func (cli *commandLine) readPassword(prompt string) (string, error) {
	cli.printf("%s", prompt)
	pwd, err := readPasswordFunc(int(os.Stdin.Fd()))
	cli.printf("\n")
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}
