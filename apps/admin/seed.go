package main

import (
	"github.com/spf13/cobra"

	"github.com/Luna-Breeze/question-answer-system/core/records"
)

func (cli *commandLine) seedCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the demonstration data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.seed(force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing data files")
	return cmd
}

// seed writes the demonstration data, unless data exists and force is not set.
func (cli *commandLine) seed(force bool) error {
	if force {
		if err := cli.storage.Save(records.DemoSnapshot()); err != nil {
			return err
		}
		cli.printf("demonstration data written\n")
		return cli.store.Load()
	}
	seeded, err := records.SeedIfMissing(cli.storage, cli.log)
	if err != nil {
		return err
	}
	if !seeded {
		cli.printf("data files exist, use --force to overwrite\n")
		return nil
	}
	cli.printf("demonstration data written\n")
	return cli.store.Load()
}
