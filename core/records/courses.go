package records

import (
	"github.com/Luna-Breeze/question-answer-system/core"
	"github.com/Luna-Breeze/question-answer-system/core/course"
)

// CreateCourse adds a new course. The ID must be unused and the kind one of the known labels.
func (st *Store) CreateCourse(nc course.NewCourse) (course.Course, error) {
	if _, ok := st.courses[nc.ID]; ok {
		return course.Course{}, ErrDuplicateCourseID
	}
	kind, ok := course.ParseKind(nc.Kind)
	if !ok {
		return course.Course{}, ErrUnknownKind
	}
	if err := core.ValidateStruct(nc); err != nil {
		return course.Course{}, err
	}

	c := course.New(nc.ID, nc.Name, nc.QATime, kind)
	st.courses[c.ID] = c
	st.courseOrder = append(st.courseOrder, c.ID)
	st.log.Info("course created", "course_id", c.ID, "name", c.Name, "kind", kind.Label())
	return c, nil
}

// LookupCourse returns the course with `id`; ok is false when there is none.
func (st *Store) LookupCourse(id string) (c course.Course, ok bool) {
	c, ok = st.courses[id]
	return c, ok
}
