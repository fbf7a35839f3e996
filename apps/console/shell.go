package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/Luna-Breeze/question-answer-system/core"
	"github.com/Luna-Breeze/question-answer-system/core/records"
)

const rule = "=============================================="

type shell struct {
	store *records.Store
	in    prompter
	out   io.Writer
	title string
}

func newShell(store *records.Store, in prompter, out io.Writer, title string) *shell {
	return &shell{store: store, in: in, out: out, title: title}
}

func (sh *shell) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(sh.out, format, args...)
}

func (sh *shell) println(args ...interface{}) {
	_, _ = fmt.Fprintln(sh.out, args...)
}

func (sh *shell) header(title string, entries ...string) {
	sh.println()
	sh.println(rule)
	sh.printf("      %s\n", title)
	sh.println(rule)
	for i, e := range entries {
		sh.printf("%d. %s\n", i+1, e)
	}
	sh.println(rule)
}

// run is the main menu loop. Leaving it, by choice or because the input closed, saves the records.
func (sh *shell) run() error {
	err := sh.mainMenu()
	if err != nil && !core.IsShutdown(err) {
		return err
	}
	if err := sh.store.Save(); err != nil {
		sh.println("Saving failed:", err)
		return err
	}
	sh.println("Data saved, thank you for using", sh.title+"!")
	return nil
}

func (sh *shell) mainMenu() error {
	for {
		sh.header(sh.title+" - Main menu", "Teacher login", "Student login", "Browse all courses", "Exit")
		choice, ok, err := sh.readChoice(4)
		if err != nil {
			return err
		}
		if !ok {
			sh.println("Invalid choice!")
			continue
		}

		switch choice {
		case 1:
			err = sh.teacherLogin()
		case 2:
			err = sh.studentLogin()
		case 3:
			sh.browseCourses()
		case 4:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (sh *shell) readCredentials() (id, pwd string, err error) {
	if id, err = sh.in.ReadLine("ID: "); err != nil {
		return "", "", err
	}
	if pwd, err = sh.in.ReadPassword("Password: "); err != nil {
		return "", "", err
	}
	return id, pwd, nil
}

func (sh *shell) teacherLogin() error {
	id, pwd, err := sh.readCredentials()
	if err != nil {
		return err
	}
	t, err := sh.store.AuthenticateTeacher(id, pwd)
	if err != nil {
		sh.loginFailed(err)
		return nil
	}
	return sh.teacherMenu(t)
}

func (sh *shell) studentLogin() error {
	id, pwd, err := sh.readCredentials()
	if err != nil {
		return err
	}
	s, err := sh.store.AuthenticateStudent(id, pwd)
	if err != nil {
		sh.loginFailed(err)
		return nil
	}
	return sh.studentMenu(s)
}

func (sh *shell) loginFailed(err error) {
	if core.IsAuth(err) {
		sh.println("Login failed! Wrong ID or password.")
		return
	}
	sh.report(err)
}

func (sh *shell) browseCourses() {
	courses := sh.store.Courses()
	if len(courses) == 0 {
		sh.println("No courses yet!")
		return
	}
	sh.header("All courses")
	for _, c := range courses {
		sh.println(c.Describe())
	}
	sh.println(rule)
}

func (sh *shell) listCourses(what string, ids []string) {
	if len(ids) == 0 {
		sh.printf("No %s courses yet!\n", what)
		return
	}
	sh.printf("Your %s courses:\n", what)
	for _, id := range ids {
		sh.println("-", id)
	}
}

// report prints a recoverable error; the menu loop goes on.
func (sh *shell) report(err error) {
	var ve *core.ValidationError
	if errors.As(err, &ve) && len(ve.Fields) > 1 {
		msgs := make([]string, 0, len(ve.Fields))
		for _, fe := range ve.Fields {
			msgs = append(msgs, fe.Error)
		}
		sh.println("Error:", strings.Join(msgs, "; "))
		return
	}
	sh.println("Error:", err)
}
