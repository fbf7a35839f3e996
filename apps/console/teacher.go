package main

import (
	"github.com/Luna-Breeze/question-answer-system/core/course"
	"github.com/Luna-Breeze/question-answer-system/core/qa"
	"github.com/Luna-Breeze/question-answer-system/core/records"
	"github.com/Luna-Breeze/question-answer-system/core/user"
)

func (sh *shell) teacherMenu(t *user.Teacher) error {
	for {
		sh.header("Teacher menu ("+t.ID()+")",
			"Add course",
			"Remove course",
			"List courses",
			"Add QA record",
			"View rating summary",
			"View QA records",
			"Change password",
			"Back to main menu",
		)
		choice, ok, err := sh.readChoice(8)
		if err != nil {
			return err
		}
		if !ok {
			sh.println("Invalid choice!")
			continue
		}

		switch choice {
		case 1:
			err = sh.teacherAddCourse(t)
		case 2:
			sh.listCourses("taught", t.Courses())
			err = sh.removeCourse(t)
		case 3:
			sh.listCourses("taught", t.Courses())
		case 4:
			err = sh.addSession(t)
		case 5:
			sh.ratingSummary(t)
		case 6:
			sh.sessionLog(t)
		case 7:
			err = sh.changePassword(t)
		case 8:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// teacherAddCourse creates the course, then adds it to the teacher's courses.
// The association is attempted even when the course already exists.
func (sh *shell) teacherAddCourse(t *user.Teacher) error {
	var (
		nc  course.NewCourse
		err error
	)
	if nc.ID, err = sh.in.ReadLine("Course ID: "); err != nil {
		return err
	}
	if nc.Name, err = sh.in.ReadLine("Course name: "); err != nil {
		return err
	}
	if nc.QATime, err = sh.in.ReadLine("QA time: "); err != nil {
		return err
	}
	if nc.Kind, err = sh.in.ReadLine("Course kind (" + course.KindLabels("/") + "): "); err != nil {
		return err
	}

	switch _, err := sh.store.CreateCourse(nc); {
	case err == nil:
		sh.println("Course created!")
	case err == records.ErrDuplicateCourseID:
		sh.println("Course ID already exists!")
	default:
		sh.report(err)
		return nil
	}
	sh.addCourse(t, nc.ID)
	return nil
}

func (sh *shell) addCourse(acct records.Account, courseID string) {
	switch err := sh.store.AddCourseAssociation(acct, courseID); {
	case err == nil:
		sh.println("Course added!")
	case err == user.ErrAlreadyPresent:
		sh.println("This course is already in your list!")
	default:
		sh.report(err)
	}
}

func (sh *shell) removeCourse(acct records.Account) error {
	cid, err := sh.in.ReadLine("Course ID to remove: ")
	if err != nil {
		return err
	}
	switch err := sh.store.RemoveCourseAssociation(acct, cid); {
	case err == nil:
		sh.println("Course removed!")
	case err == user.ErrNotPresent:
		sh.println("Course not found!")
	default:
		sh.report(err)
	}
	return nil
}

func (sh *shell) addSession(t *user.Teacher) error {
	sid, err := sh.in.ReadLine("Student ID: ")
	if err != nil {
		return err
	}
	cid, err := sh.in.ReadLine("Course ID: ")
	if err != nil {
		return err
	}
	switch _, err := sh.store.CreateSession(t, sid, cid); err {
	case nil:
		sh.println("QA record added!")
	case records.ErrNotTeachingCourse:
		sh.println("You do not teach this course!")
	case records.ErrUnknownStudent:
		sh.println("Student does not exist!")
	case records.ErrNotEnrolled:
		sh.println("This student is not enrolled in this course!")
	default:
		sh.report(err)
	}
	return nil
}

func (sh *shell) ratingSummary(t *user.Teacher) {
	if len(t.Sessions()) == 0 {
		sh.println("No QA records yet!")
		return
	}
	sm, err := t.RatingSummary()
	if err == qa.ErrNoRatings {
		sh.println("No ratings yet!")
		return
	}
	sh.println("Rating summary:", sm)
}

func (sh *shell) sessionLog(t *user.Teacher) {
	sessions := t.Sessions()
	if len(sessions) == 0 {
		sh.println("No QA records yet!")
		return
	}
	sh.println("QA records:")
	for _, sess := range sessions {
		sh.println(sess)
	}
}

func (sh *shell) changePassword(acct records.Account) error {
	pwd, err := sh.in.ReadPassword("New password: ")
	if err != nil {
		return err
	}
	if err := sh.store.ChangePassword(acct, pwd); err != nil {
		sh.report(err)
		return nil
	}
	sh.println("Password changed!")
	return nil
}
