// Package records implements the record store: it owns teachers, students, courses and
// the QA session log, enforces the cross-entity rules and is the only writer of
// persisted state.
package records

import (
	"time"

	"github.com/pkg/errors"

	"github.com/Luna-Breeze/question-answer-system/core"
	"github.com/Luna-Breeze/question-answer-system/core/course"
	"github.com/Luna-Breeze/question-answer-system/core/qa"
	"github.com/Luna-Breeze/question-answer-system/core/user"
)

var (
	nowFunc = time.Now // mockable

	// errors
	ErrDuplicateCourseID = core.NewConflictError("a course with this ID already exists")
	ErrUnknownKind       = core.NewValidationError(
		errors.New("invalid course kind"),
		core.FieldError{Field: "kind", Error: "kind must be one of " + course.KindLabels(" or ")},
	)
	ErrBadCredential     = core.NewAuthError("invalid ID or password")
	ErrUnknownTeacher    = core.NewNotFoundError("teacher not found")
	ErrUnknownStudent    = core.NewNotFoundError("student not found")
	ErrNotTeachingCourse = core.NewAuthzError("you do not teach this course")
	ErrNotEnrolled       = core.NewAuthzError("the student is not enrolled in this course")
	ErrNoRatableSession  = core.NewNotFoundError("no ratable QA session found")
	ErrNotLoaded         = errors.New("records were not loaded, save skipped to keep the data files")
)

type (
	// Snapshot is the full content of the store, in insertion order.
	Snapshot struct {
		Teachers []*user.Teacher
		Students []*user.Student
		Courses  []course.Course
		Sessions qa.Log
	}

	// Storage materializes snapshots. Load on a missing backing store returns an empty snapshot.
	Storage interface {
		Exists() (bool, error)
		Load() (*Snapshot, error)
		Save(snap *Snapshot) error
	}

	Store struct {
		storage Storage
		log     core.Logger

		teachers     map[string]*user.Teacher
		teacherOrder []string
		students     map[string]*user.Student
		studentOrder []string
		courses      map[string]course.Course
		courseOrder  []string
		sessions     qa.Log

		loadErr error // last failed load; saving is refused while set
	}
)

// NewStore returns an empty store bound to `storage`.
func NewStore(storage Storage, logger core.Logger) *Store {
	st := &Store{storage: storage, log: logger}
	st.reset()
	return st
}

// Open creates a store and loads it from storage. A failed load leaves the store empty
// and read-only toward storage: Save and Close return ErrNotLoaded until a Load succeeds.
func Open(storage Storage, logger core.Logger) *Store {
	st := NewStore(storage, logger)
	if err := st.Load(); err != nil {
		logger.Error("loading records failed, starting empty without saving", "error", err)
	}
	return st
}

func (st *Store) reset() {
	st.teachers = make(map[string]*user.Teacher)
	st.teacherOrder = nil
	st.students = make(map[string]*user.Student)
	st.studentOrder = nil
	st.courses = make(map[string]course.Course)
	st.courseOrder = nil
	st.sessions = nil
}

// Load replaces the store content with what storage holds.
func (st *Store) Load() error {
	snap, err := st.storage.Load()
	if err != nil {
		st.loadErr = errors.Wrap(err, "loading records")
		return st.loadErr
	}
	st.loadErr = nil
	st.reset()
	st.apply(snap)
	st.log.Info("records loaded",
		"teachers", len(st.teacherOrder),
		"students", len(st.studentOrder),
		"courses", len(st.courseOrder),
		"sessions", len(st.sessions))
	return nil
}

func (st *Store) apply(snap *Snapshot) {
	for _, t := range snap.Teachers {
		if _, ok := st.teachers[t.ID()]; !ok {
			st.teacherOrder = append(st.teacherOrder, t.ID())
		}
		st.teachers[t.ID()] = t
	}
	for _, s := range snap.Students {
		if _, ok := st.students[s.ID()]; !ok {
			st.studentOrder = append(st.studentOrder, s.ID())
		}
		st.students[s.ID()] = s
	}
	for _, c := range snap.Courses {
		if _, ok := st.courses[c.ID]; !ok {
			st.courseOrder = append(st.courseOrder, c.ID)
		}
		st.courses[c.ID] = c
	}
	for _, sess := range snap.Sessions {
		st.sessions = append(st.sessions, sess)
		if t, ok := st.teachers[sess.TeacherID]; ok {
			t.AttachSession(sess)
		} else {
			st.log.Warn("QA session references an unknown teacher",
				"teacher_id", sess.TeacherID,
				"student_id", sess.StudentID,
				"course_id", sess.CourseID)
		}
	}
}

// Snapshot returns the current content of the store in insertion order.
func (st *Store) Snapshot() *Snapshot {
	snap := &Snapshot{
		Teachers: st.Teachers(),
		Students: st.Students(),
		Courses:  st.Courses(),
		Sessions: st.Sessions(),
	}
	return snap
}

// Save overwrites the storage with the current content.
// It is skipped with ErrNotLoaded after a failed load.
func (st *Store) Save() error {
	if st.loadErr != nil {
		st.log.Warn("save skipped, records were not loaded", "error", st.loadErr)
		return ErrNotLoaded
	}
	if err := st.storage.Save(st.Snapshot()); err != nil {
		return errors.Wrap(err, "saving records")
	}
	st.log.Info("records saved",
		"teachers", len(st.teacherOrder),
		"students", len(st.studentOrder),
		"courses", len(st.courseOrder),
		"sessions", len(st.sessions))
	return nil
}

// Close flushes the store. A failed save is logged and returned; the in-memory state is kept.
func (st *Store) Close() error {
	if err := st.Save(); err != nil {
		st.log.Error("saving records on shutdown failed", "error", err)
		return err
	}
	return nil
}

func (st *Store) Teachers() []*user.Teacher {
	ts := make([]*user.Teacher, 0, len(st.teacherOrder))
	for _, id := range st.teacherOrder {
		ts = append(ts, st.teachers[id])
	}
	return ts
}

func (st *Store) Students() []*user.Student {
	ss := make([]*user.Student, 0, len(st.studentOrder))
	for _, id := range st.studentOrder {
		ss = append(ss, st.students[id])
	}
	return ss
}

func (st *Store) Courses() []course.Course {
	cs := make([]course.Course, 0, len(st.courseOrder))
	for _, id := range st.courseOrder {
		cs = append(cs, st.courses[id])
	}
	return cs
}

// Sessions returns the global QA log, oldest first.
func (st *Store) Sessions() qa.Log {
	l := make(qa.Log, len(st.sessions))
	copy(l, st.sessions)
	return l
}

func (st *Store) Teacher(id string) (*user.Teacher, bool) {
	t, ok := st.teachers[id]
	return t, ok
}

func (st *Store) Student(id string) (*user.Student, bool) {
	s, ok := st.students[id]
	return s, ok
}
