package course

import (
	"fmt"
	"strings"
)

// Kind is the closed set of course variants.
type Kind int

const (
	Required Kind = iota + 1
	Elective
)

// Labels accepted when creating a course.
const (
	LabelRequired = "Required"
	LabelElective = "Elective"
)

// Tags used by the course file.
const (
	TagRequired = 'B'
	TagElective = 'X'
)

var Kinds = []Kind{Required, Elective}

// ParseKind maps a user facing label to a Kind. Labels are case sensitive.
func ParseKind(label string) (Kind, bool) {
	for _, k := range Kinds {
		if k.Label() == label {
			return k, true
		}
	}
	return 0, false
}

// KindLabels joins the labels of Kinds with `sep`, eg. "Required/Elective".
func KindLabels(sep string) string {
	labels := make([]string, 0, len(Kinds))
	for _, k := range Kinds {
		labels = append(labels, k.Label())
	}
	return strings.Join(labels, sep)
}

// KindFromTag maps a course file tag to a Kind.
func KindFromTag(tag byte) (Kind, bool) {
	switch tag {
	case TagRequired:
		return Required, true
	case TagElective:
		return Elective, true
	}
	return 0, false
}

func (k Kind) Label() string {
	switch k {
	case Required:
		return LabelRequired
	case Elective:
		return LabelElective
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) Tag() byte {
	switch k {
	case Required:
		return TagRequired
	case Elective:
		return TagElective
	}
	return '?'
}

func (k Kind) String() string { return k.Label() }

type Course struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	QATime string `json:"qa_time" yaml:"qa_time"`
	Kind   Kind   `json:"kind" yaml:"kind"`
}

// New builds a Course. The kind is expected to be one of Kinds; callers reject unknown labels.
func New(id, name, qaTime string, kind Kind) Course {
	return Course{ID: id, Name: name, QATime: qaTime, Kind: kind}
}

// Describe returns the canonical one line description of the course.
func (c Course) Describe() string {
	return fmt.Sprintf("Course ID: %s, Name: %s, Kind: %s, QA time: %s", c.ID, c.Name, c.Kind.Label(), c.QATime)
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	ID     string `json:"id" validate:"required,flattoken"`
	Name   string `json:"name" validate:"flattext"`
	QATime string `json:"qa_time" validate:"flattext"`
	Kind   string `json:"kind"`
}

// MarshalYAML writes the kind as its label.
func (k Kind) MarshalYAML() (interface{}, error) { return k.Label(), nil }
