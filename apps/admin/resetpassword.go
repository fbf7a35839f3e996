package main

import (
	"github.com/spf13/cobra"

	"github.com/Luna-Breeze/question-answer-system/core/records"
	"github.com/Luna-Breeze/question-answer-system/core/user"
)

func (cli *commandLine) resetPasswordCommand() *cobra.Command {
	var (
		id   string
		role string
	)
	cmd := &cobra.Command{
		Use:   "resetpassword",
		Short: "Reset a teacher's or student's password. The password is prompted next.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" {
				_ = cmd.Usage()
				return errHelp
			}
			pwd, err := cli.readPassword("Enter password:")
			if err != nil {
				return err
			}
			if len(pwd) == 0 {
				_ = cmd.Usage()
				return errHelp
			}
			return cli.resetPassword(user.Role(role), id, pwd)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "the teacher's or student's ID")
	cmd.Flags().StringVar(&role, "role", string(user.RoleTeacher), "teacher or student")
	return cmd
}

// resetPassword changes the password of an existing account. Unknown IDs are not registered.
func (cli *commandLine) resetPassword(role user.Role, id, pwd string) error {
	var acct records.Account
	switch role {
	case user.RoleTeacher:
		t, ok := cli.store.Teacher(id)
		if !ok {
			return records.ErrUnknownTeacher
		}
		acct = t
	case user.RoleStudent:
		s, ok := cli.store.Student(id)
		if !ok {
			return records.ErrUnknownStudent
		}
		acct = s
	default:
		return errHelp
	}
	if err := cli.store.ChangePassword(acct, pwd); err != nil {
		return err
	}
	return cli.store.Save()
}
