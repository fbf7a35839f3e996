// Package export renders a snapshot of the records as YAML. Passwords are never exported.
package export

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Luna-Breeze/question-answer-system/core/course"
	"github.com/Luna-Breeze/question-answer-system/core/qa"
	"github.com/Luna-Breeze/question-answer-system/core/records"
)

type (
	Document struct {
		Teachers []Teacher       `yaml:"teachers"`
		Students []Student       `yaml:"students"`
		Courses  []course.Course `yaml:"courses"`
		Sessions []*qa.Session   `yaml:"sessions"`
	}

	Teacher struct {
		ID      string   `yaml:"id"`
		Courses []string `yaml:"courses"`
		Ratings *Ratings `yaml:"ratings,omitempty"`
	}

	Student struct {
		ID      string   `yaml:"id"`
		Courses []string `yaml:"courses"`
	}

	Ratings struct {
		Count int     `yaml:"count"`
		Max   int     `yaml:"max"`
		Min   int     `yaml:"min"`
		Mean  float64 `yaml:"mean"`
	}
)

// NewDocument builds the export document of `snap`.
func NewDocument(snap *records.Snapshot) Document {
	doc := Document{
		Teachers: make([]Teacher, 0, len(snap.Teachers)),
		Students: make([]Student, 0, len(snap.Students)),
		Courses:  snap.Courses,
		Sessions: snap.Sessions,
	}
	for _, t := range snap.Teachers {
		et := Teacher{ID: t.ID(), Courses: t.Courses()}
		if sm, err := t.RatingSummary(); err == nil {
			et.Ratings = &Ratings{Count: sm.Count, Max: int(sm.Max), Min: int(sm.Min), Mean: sm.Mean}
		}
		doc.Teachers = append(doc.Teachers, et)
	}
	for _, s := range snap.Students {
		doc.Students = append(doc.Students, Student{ID: s.ID(), Courses: s.Courses()})
	}
	return doc
}

// WriteYAML encodes the snapshot to `w`.
func WriteYAML(w io.Writer, snap *records.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(snap)); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return errors.Wrap(enc.Close(), "encoding yaml")
}
