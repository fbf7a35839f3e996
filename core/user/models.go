package user

import (
	"errors"

	"github.com/Luna-Breeze/question-answer-system/core/qa"
)

// Roles
const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

var (
	Roles = []Role{RoleTeacher, RoleStudent}

	// soft results of course association changes
	ErrAlreadyPresent = errors.New("course already present")
	ErrNotPresent     = errors.New("course not found")
)

type Role string

func (r Role) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CourseSet is an insertion-ordered set of course IDs.
type CourseSet struct {
	ids []string
}

func NewCourseSet(ids ...string) CourseSet {
	var cs CourseSet
	for _, id := range ids {
		_ = cs.Add(id)
	}
	return cs
}

func (cs *CourseSet) Add(id string) error {
	if cs.Has(id) {
		return ErrAlreadyPresent
	}
	cs.ids = append(cs.ids, id)
	return nil
}

func (cs *CourseSet) Remove(id string) error {
	for i, cid := range cs.ids {
		if cid == id {
			cs.ids = append(cs.ids[:i], cs.ids[i+1:]...)
			return nil
		}
	}
	return ErrNotPresent
}

func (cs CourseSet) Has(id string) bool {
	for _, cid := range cs.ids {
		if cid == id {
			return true
		}
	}
	return false
}

// List returns a copy of the IDs in insertion order.
func (cs CourseSet) List() []string {
	ids := make([]string, len(cs.ids))
	copy(ids, cs.ids)
	return ids
}

func (cs CourseSet) Len() int { return len(cs.ids) }

// account holds what Teacher and Student share.
type account struct {
	id       string
	password string
	courses  CourseSet
}

func (a *account) ID() string { return a.id }

// CheckPassword compares `pwd` with the stored password as entered.
func (a *account) CheckPassword(pwd string) bool { return a.password == pwd }

// Password returns the stored credential, used by persistence only.
func (a *account) Password() string { return a.password }

// SetPassword overwrites the password unconditionally.
func (a *account) SetPassword(pwd string) { a.password = pwd }

// AddCourse associates the course; ErrAlreadyPresent when it already is.
func (a *account) AddCourse(courseID string) error { return a.courses.Add(courseID) }

// RemoveCourse drops the association; ErrNotPresent when missing.
func (a *account) RemoveCourse(courseID string) error { return a.courses.Remove(courseID) }

func (a *account) HasCourse(courseID string) bool { return a.courses.Has(courseID) }

// Courses lists the associated course IDs in insertion order.
func (a *account) Courses() []string { return a.courses.List() }

// Teacher teaches a set of courses and keeps a log of its QA sessions.
type Teacher struct {
	account
	sessions qa.Log
}

func NewTeacher(id, pwd string, courseIDs ...string) *Teacher {
	return &Teacher{account: account{id: id, password: pwd, courses: NewCourseSet(courseIDs...)}}
}

// RecordSession appends a new unrated session to the teacher's log and returns it.
func (t *Teacher) RecordSession(studentID, courseID, timestamp string) *qa.Session {
	s := qa.NewSession(t.id, studentID, courseID, timestamp)
	t.sessions = append(t.sessions, s)
	return s
}

// AttachSession adds an existing session to the teacher's log (used when loading).
func (t *Teacher) AttachSession(s *qa.Session) {
	t.sessions = append(t.sessions, s)
}

// Sessions returns the teacher's log, oldest first.
func (t *Teacher) Sessions() qa.Log {
	l := make(qa.Log, len(t.sessions))
	copy(l, t.sessions)
	return l
}

// RatingSummary aggregates the rated sessions of the teacher; qa.ErrNoRatings when none.
func (t *Teacher) RatingSummary() (qa.Summary, error) {
	return t.sessions.Summary()
}

// Student is enrolled in a set of courses.
type Student struct {
	account
}

func NewStudent(id, pwd string, courseIDs ...string) *Student {
	return &Student{account: account{id: id, password: pwd, courses: NewCourseSet(courseIDs...)}}
}

// Credentials is what a login prompt provides.
type Credentials struct {
	Role     Role   `json:"role" validate:"required,role"`
	ID       string `json:"id" validate:"required,flattoken"`
	Password string `json:"password" validate:"flattext"`
}
