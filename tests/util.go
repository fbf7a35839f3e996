package testutil

import (
	"testing"

	"github.com/Luna-Breeze/question-answer-system/core/course"
	"github.com/Luna-Breeze/question-answer-system/core/records"
	"github.com/Luna-Breeze/question-answer-system/core/user"
	"github.com/Luna-Breeze/question-answer-system/services/logger"
	"github.com/Luna-Breeze/question-answer-system/storage/inmem"
)

// NewStore returns a store backed by an in-memory storage, optionally preloaded with `snap`.
func NewStore(t *testing.T, snap ...*records.Snapshot) (*records.Store, *inmemdb.Storage) {
	t.Helper()
	storage := inmemdb.Open(snap...)
	return records.Open(storage, logsvc.NewNop()), storage
}

func CreateCourse(t *testing.T, st *records.Store, id, name, qaTime string, kind course.Kind) course.Course {
	t.Helper()
	c, err := st.CreateCourse(course.NewCourse{ID: id, Name: name, QATime: qaTime, Kind: kind.Label()})
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	return c
}

// CreateTeacher registers a teacher and assigns it `courseIDs`.
func CreateTeacher(t *testing.T, st *records.Store, id, pwd string, courseIDs ...string) *user.Teacher {
	t.Helper()
	tchr, err := st.AuthenticateTeacher(id, pwd)
	if err != nil {
		t.Fatalf("AuthenticateTeacher() failed: %v", err)
	}
	for _, cid := range courseIDs {
		if err := st.AddCourseAssociation(tchr, cid); err != nil {
			t.Fatalf("AddCourseAssociation() failed: %v", err)
		}
	}
	return tchr
}

// CreateStudent registers a student and enrolls it in `courseIDs`.
func CreateStudent(t *testing.T, st *records.Store, id, pwd string, courseIDs ...string) *user.Student {
	t.Helper()
	s, err := st.AuthenticateStudent(id, pwd)
	if err != nil {
		t.Fatalf("AuthenticateStudent() failed: %v", err)
	}
	for _, cid := range courseIDs {
		if err := st.AddCourseAssociation(s, cid); err != nil {
			t.Fatalf("AddCourseAssociation() failed: %v", err)
		}
	}
	return s
}
