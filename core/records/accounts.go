package records

import (
	"github.com/Luna-Breeze/question-answer-system/core"
	"github.com/Luna-Breeze/question-answer-system/core/user"
)

// AuthenticateTeacher logs a teacher in. An unknown ID registers a new teacher with
// the given password; a known ID must present its exact password.
func (st *Store) AuthenticateTeacher(id, pwd string) (*user.Teacher, error) {
	if err := (user.Credentials{Role: user.RoleTeacher, ID: id, Password: pwd}).Validate(); err != nil {
		return nil, err
	}
	if t, ok := st.teachers[id]; ok {
		if !t.CheckPassword(pwd) {
			st.log.Info("teacher login rejected", "teacher_id", id)
			return nil, ErrBadCredential
		}
		return t, nil
	}

	t := user.NewTeacher(id, pwd)
	st.teachers[id] = t
	st.teacherOrder = append(st.teacherOrder, id)
	st.log.Info("teacher registered", "teacher_id", id)
	return t, nil
}

// AuthenticateStudent logs a student in, registering unknown IDs like AuthenticateTeacher.
func (st *Store) AuthenticateStudent(id, pwd string) (*user.Student, error) {
	if err := (user.Credentials{Role: user.RoleStudent, ID: id, Password: pwd}).Validate(); err != nil {
		return nil, err
	}
	if s, ok := st.students[id]; ok {
		if !s.CheckPassword(pwd) {
			st.log.Info("student login rejected", "student_id", id)
			return nil, ErrBadCredential
		}
		return s, nil
	}

	s := user.NewStudent(id, pwd)
	st.students[id] = s
	st.studentOrder = append(st.studentOrder, id)
	st.log.Info("student registered", "student_id", id)
	return s, nil
}

// Authenticate dispatches on the credentials' role.
func (st *Store) Authenticate(c user.Credentials) (Account, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Role == user.RoleTeacher {
		t, err := st.AuthenticateTeacher(c.ID, c.Password)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	s, err := st.AuthenticateStudent(c.ID, c.Password)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Account is the part of Teacher and Student the shell works with.
type Account interface {
	ID() string
	Courses() []string
	HasCourse(courseID string) bool
	AddCourse(courseID string) error
	RemoveCourse(courseID string) error
	SetPassword(pwd string)
}

type courseRef struct {
	ID string `json:"course_id" validate:"required,flattoken"`
}

type passwordChange struct {
	Password string `json:"password" validate:"flattext"`
}

// AddCourseAssociation links a course to a teacher (taught) or a student (enrolled).
// It returns user.ErrAlreadyPresent when the course is already linked.
func (st *Store) AddCourseAssociation(acct Account, courseID string) error {
	if err := core.ValidateStruct(courseRef{courseID}); err != nil {
		return err
	}
	if err := acct.AddCourse(courseID); err != nil {
		return err
	}
	st.log.Info("course associated", "account_id", acct.ID(), "course_id", courseID)
	return nil
}

// RemoveCourseAssociation unlinks a course; user.ErrNotPresent when it was not linked.
// Existing QA sessions are kept.
func (st *Store) RemoveCourseAssociation(acct Account, courseID string) error {
	if err := acct.RemoveCourse(courseID); err != nil {
		return err
	}
	st.log.Info("course dissociated", "account_id", acct.ID(), "course_id", courseID)
	return nil
}

// ChangePassword overwrites the account's password. No strength checks apply.
func (st *Store) ChangePassword(acct Account, pwd string) error {
	if err := core.ValidateStruct(passwordChange{pwd}); err != nil {
		return err
	}
	acct.SetPassword(pwd)
	st.log.Info("password changed", "account_id", acct.ID())
	return nil
}
