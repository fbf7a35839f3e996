package qa

import (
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/Luna-Breeze/question-answer-system/core"
)

// TimestampLayout is the format of Session.Timestamp (YYYY-MM-DD HH:MM, local time).
const TimestampLayout = "2006-01-02 15:04"

// Rating bounds. Zero means the session has not been rated yet.
const (
	Unrated   Rating = 0
	MinRating Rating = 1
	MaxRating Rating = 10
)

var (
	ErrNoRatings     = errors.New("no ratings")
	ErrInvalidRating = core.NewValidationError(
		fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating),
		core.FieldError{Field: "rating", Error: fmt.Sprintf("rating must be between %d and %d", MinRating, MaxRating)},
	)
)

type Rating int

func (r Rating) Valid() bool { return r >= MinRating && r <= MaxRating }

// Timestamp formats `t` the way sessions store it.
func Timestamp(t time.Time) string { return t.Format(TimestampLayout) }

// Session is one tutoring interaction between a teacher and a student for a course.
type Session struct {
	TeacherID string `yaml:"teacher_id"`
	StudentID string `yaml:"student_id"`
	CourseID  string `yaml:"course_id"`
	Timestamp string `yaml:"timestamp"`
	Rating    Rating `yaml:"rating"`
}

func NewSession(teacherID, studentID, courseID, timestamp string) *Session {
	return &Session{
		TeacherID: teacherID,
		StudentID: studentID,
		CourseID:  courseID,
		Timestamp: timestamp,
		Rating:    Unrated,
	}
}

func (s *Session) IsRated() bool { return s.Rating != Unrated }

// Matches reports whether the session links the given triple and is still unrated.
func (s *Session) Matches(studentID, teacherID, courseID string) bool {
	return s.StudentID == studentID && s.TeacherID == teacherID && s.CourseID == courseID && !s.IsRated()
}

// Rate moves the session from unrated to rated. It fires once.
func (s *Session) Rate(r Rating) error {
	if !r.Valid() {
		return ErrInvalidRating
	}
	if s.IsRated() {
		return errors.Errorf("session already rated %d", s.Rating)
	}
	s.Rating = r
	return nil
}

func (s *Session) String() string {
	return fmt.Sprintf("Teacher: %s, Student: %s, Course: %s, Time: %s, Rating: %d/%d",
		s.TeacherID, s.StudentID, s.CourseID, s.Timestamp, s.Rating, MaxRating)
}

// Log is an ordered, append-only sequence of sessions, oldest first.
type Log []*Session

// FirstUnrated returns the oldest unrated session for the triple, or nil.
func (l Log) FirstUnrated(studentID, teacherID, courseID string) *Session {
	for _, s := range l {
		if s.Matches(studentID, teacherID, courseID) {
			return s
		}
	}
	return nil
}

// Contains reports whether `s` itself (not an equal copy) is in the log.
func (l Log) Contains(s *Session) bool {
	for _, ls := range l {
		if ls == s {
			return true
		}
	}
	return false
}

// Summary aggregates the rated sessions of a log.
type Summary struct {
	Count int
	Max   Rating
	Min   Rating
	Mean  float64 // rounded to one decimal place
}

func (s Summary) String() string {
	return fmt.Sprintf("Highest: %d, Lowest: %d, Average: %.1f", s.Max, s.Min, s.Mean)
}

// Summary computes max, min and mean over the rated sessions.
// It returns ErrNoRatings when none of the sessions has been rated.
func (l Log) Summary() (Summary, error) {
	var (
		sum int
		sm  = Summary{Min: MaxRating, Max: MinRating}
	)
	for _, s := range l {
		if !s.IsRated() {
			continue
		}
		sm.Count++
		sum += int(s.Rating)
		if s.Rating > sm.Max {
			sm.Max = s.Rating
		}
		if s.Rating < sm.Min {
			sm.Min = s.Rating
		}
	}
	if sm.Count == 0 {
		return Summary{}, ErrNoRatings
	}
	sm.Mean = math.Round(float64(sum)/float64(sm.Count)*10) / 10
	return sm, nil
}
