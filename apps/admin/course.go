package main

import (
	"github.com/spf13/cobra"

	"github.com/Luna-Breeze/question-answer-system/core/course"
)

func (cli *commandLine) courseAddCommand() *cobra.Command {
	var nc course.NewCourse
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.addCourse(nc)
		},
	}
	cmd.Flags().StringVar(&nc.ID, "id", "", "course ID")
	cmd.Flags().StringVar(&nc.Name, "name", "", "course name")
	cmd.Flags().StringVar(&nc.QATime, "qa-time", "", "QA schedule, eg. \"Mon 14:00-16:00\"")
	cmd.Flags().StringVar(&nc.Kind, "kind", course.LabelRequired, course.KindLabels(" or "))
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func (cli *commandLine) addCourse(nc course.NewCourse) error {
	c, err := cli.store.CreateCourse(nc)
	if err != nil {
		return err
	}
	if err := cli.store.Save(); err != nil {
		return err
	}
	cli.printf("%s\n", c.Describe())
	return nil
}

func (cli *commandLine) courseListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all courses",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			courses := cli.store.Courses()
			if len(courses) == 0 {
				cli.printf("no courses\n")
				return
			}
			for _, c := range courses {
				cli.printf("%s\n", c.Describe())
			}
		},
	}
}
