package records

import (
	"github.com/Luna-Breeze/question-answer-system/core/qa"
	"github.com/Luna-Breeze/question-answer-system/core/user"
)

// CreateSession records a new unrated QA session of teacher `t` with a student for a course.
// The teacher must teach the course and the student must be enrolled in it.
// The session is appended to the global log and to the teacher's log; both hold the same record.
func (st *Store) CreateSession(t *user.Teacher, studentID, courseID string) (*qa.Session, error) {
	if registered, ok := st.teachers[t.ID()]; !ok || registered != t {
		return nil, ErrUnknownTeacher
	}
	if !t.HasCourse(courseID) {
		return nil, ErrNotTeachingCourse
	}
	s, ok := st.students[studentID]
	if !ok {
		return nil, ErrUnknownStudent
	}
	if !s.HasCourse(courseID) {
		return nil, ErrNotEnrolled
	}

	sess := t.RecordSession(studentID, courseID, qa.Timestamp(nowFunc()))
	st.sessions = append(st.sessions, sess)
	st.log.Info("QA session created",
		"teacher_id", t.ID(),
		"student_id", studentID,
		"course_id", courseID,
		"timestamp", sess.Timestamp)
	return sess, nil
}

// RateSession rates the oldest unrated session linking student `s`, the teacher and the course.
// A triple with no unrated session left fails with ErrNoRatableSession, so a session is rated once.
func (st *Store) RateSession(s *user.Student, teacherID, courseID string, rating qa.Rating) (*qa.Session, error) {
	sess := st.sessions.FirstUnrated(s.ID(), teacherID, courseID)
	if sess == nil {
		return nil, ErrNoRatableSession
	}
	if err := sess.Rate(rating); err != nil {
		return nil, err
	}

	// the global log is authoritative: a teacher log that lost the record is only reported
	if t, ok := st.teachers[teacherID]; !ok || !t.Sessions().Contains(sess) {
		st.log.Warn("rated QA session missing from the teacher log",
			"teacher_id", teacherID,
			"student_id", s.ID(),
			"course_id", courseID)
	}
	st.log.Info("QA session rated",
		"teacher_id", teacherID,
		"student_id", s.ID(),
		"course_id", courseID,
		"rating", int(rating))
	return sess, nil
}

// TeacherSessions returns the sessions of the teacher, oldest first.
func (st *Store) TeacherSessions(teacherID string) qa.Log {
	if t, ok := st.teachers[teacherID]; ok {
		return t.Sessions()
	}
	return nil
}

// PendingSessions returns the unrated sessions of a student, oldest first.
func (st *Store) PendingSessions(studentID string) qa.Log {
	var l qa.Log
	for _, sess := range st.sessions {
		if sess.StudentID == studentID && !sess.IsRated() {
			l = append(l, sess)
		}
	}
	return l
}

// RatingSummary aggregates the teacher's rated sessions; qa.ErrNoRatings when there are none.
func (st *Store) RatingSummary(teacherID string) (qa.Summary, error) {
	t, ok := st.teachers[teacherID]
	if !ok {
		return qa.Summary{}, ErrUnknownTeacher
	}
	return t.RatingSummary()
}
