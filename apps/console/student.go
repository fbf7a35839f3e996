package main

import (
	"github.com/Luna-Breeze/question-answer-system/core/qa"
	"github.com/Luna-Breeze/question-answer-system/core/records"
	"github.com/Luna-Breeze/question-answer-system/core/user"
)

func (sh *shell) studentMenu(s *user.Student) error {
	for {
		sh.header("Student menu ("+s.ID()+")",
			"Enroll in course",
			"Drop course",
			"List courses",
			"Rate QA session",
			"Change password",
			"Back to main menu",
		)
		choice, ok, err := sh.readChoice(6)
		if err != nil {
			return err
		}
		if !ok {
			sh.println("Invalid choice!")
			continue
		}

		switch choice {
		case 1:
			sh.browseCourses()
			var cid string
			if cid, err = sh.in.ReadLine("Course ID to enroll in: "); err == nil {
				sh.addCourse(s, cid)
			}
		case 2:
			sh.listCourses("enrolled", s.Courses())
			err = sh.removeCourse(s)
		case 3:
			sh.listCourses("enrolled", s.Courses())
		case 4:
			err = sh.rateSession(s)
		case 5:
			err = sh.changePassword(s)
		case 6:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// rateSession asks for the course and teacher, then for a rating once a ratable session exists.
func (sh *shell) rateSession(s *user.Student) error {
	sh.listCourses("enrolled", s.Courses())
	cid, err := sh.in.ReadLine("Course ID: ")
	if err != nil {
		return err
	}
	tid, err := sh.in.ReadLine("Teacher ID: ")
	if err != nil {
		return err
	}
	if sh.store.PendingSessions(s.ID()).FirstUnrated(s.ID(), tid, cid) == nil {
		sh.println("No ratable QA record found!")
		return nil
	}

	rating, err := sh.readRating()
	if err != nil {
		return err
	}
	switch _, err := sh.store.RateSession(s, tid, cid, qa.Rating(rating)); err {
	case nil:
		sh.println("Rating saved!")
	case records.ErrNoRatableSession:
		sh.println("No ratable QA record found!")
	default:
		sh.report(err)
	}
	return nil
}
