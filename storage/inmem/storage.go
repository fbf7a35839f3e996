// Package inmemdb is a records.Storage kept in memory. Saved snapshots are copied so the
// stored state does not change with the live store.
package inmemdb

import (
	"sync"

	"github.com/Luna-Breeze/question-answer-system/core/course"
	"github.com/Luna-Breeze/question-answer-system/core/qa"
	"github.com/Luna-Breeze/question-answer-system/core/records"
	"github.com/Luna-Breeze/question-answer-system/core/user"
)

type Storage struct {
	sync.RWMutex
	snap  *records.Snapshot
	saves int
}

var _ records.Storage = (*Storage)(nil)

// Open returns an empty storage, or one holding a copy of `snap`.
func Open(snap ...*records.Snapshot) *Storage {
	s := &Storage{}
	if len(snap) > 0 && snap[0] != nil {
		s.snap = clone(snap[0])
	}
	return s
}

func (s *Storage) Exists() (bool, error) {
	s.RLock()
	defer s.RUnlock()
	return s.snap != nil, nil
}

func (s *Storage) Load() (*records.Snapshot, error) {
	s.RLock()
	defer s.RUnlock()
	if s.snap == nil {
		return new(records.Snapshot), nil
	}
	return clone(s.snap), nil
}

func (s *Storage) Save(snap *records.Snapshot) error {
	s.Lock()
	defer s.Unlock()
	s.snap = clone(snap)
	s.saves++
	return nil
}

// Saves counts the successful Save calls.
func (s *Storage) Saves() int {
	s.RLock()
	defer s.RUnlock()
	return s.saves
}

func clone(snap *records.Snapshot) *records.Snapshot {
	c := &records.Snapshot{
		Teachers: make([]*user.Teacher, 0, len(snap.Teachers)),
		Students: make([]*user.Student, 0, len(snap.Students)),
		Courses:  make([]course.Course, len(snap.Courses)),
		Sessions: make(qa.Log, 0, len(snap.Sessions)),
	}
	for _, t := range snap.Teachers {
		c.Teachers = append(c.Teachers, user.NewTeacher(t.ID(), t.Password(), t.Courses()...))
	}
	for _, st := range snap.Students {
		c.Students = append(c.Students, user.NewStudent(st.ID(), st.Password(), st.Courses()...))
	}
	copy(c.Courses, snap.Courses)
	for _, sess := range snap.Sessions {
		cp := *sess
		c.Sessions = append(c.Sessions, &cp)
	}
	return c
}
