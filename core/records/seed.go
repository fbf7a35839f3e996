package records

import (
	"github.com/pkg/errors"

	"github.com/Luna-Breeze/question-answer-system/core"
	"github.com/Luna-Breeze/question-answer-system/core/course"
	"github.com/Luna-Breeze/question-answer-system/core/user"
)

// DemoSnapshot returns the demonstration data written on first start.
func DemoSnapshot() *Snapshot {
	return &Snapshot{
		Teachers: []*user.Teacher{
			user.NewTeacher("T001", "pass123", "C101", "C102"),
			user.NewTeacher("T002", "pass456", "C201", "C203"),
			user.NewTeacher("T003", "pass124", "C301", "C303"),
			user.NewTeacher("T004", "pass135", "C201", "C203"),
			user.NewTeacher("T005", "pass147", "C201", "C203"),
		},
		Students: []*user.Student{
			user.NewStudent("S1001", "pass789", "C101", "C201"),
			user.NewStudent("S1002", "pass123", "C102", "C203"),
			user.NewStudent("S1003", "pass456", "C302", "C301"),
			user.NewStudent("S1004", "pass567", "C302", "C202"),
			user.NewStudent("S1005", "pass678", "C303", "C101"),
		},
		Courses: []course.Course{
			course.New("C101", "Advanced Mathematics", "Mon 14:00-16:00", course.Required),
			course.New("C102", "Computer Fundamentals", "Wed 10:00-12:00", course.Elective),
			course.New("C201", "College English", "Tue 09:00-11:00", course.Required),
			course.New("C202", "Data Structures", "Thu 15:00-17:00", course.Required),
			course.New("C203", "Operating Systems", "Thu 15:00-17:00", course.Required),
			course.New("C301", "Computer Organization", "Thu 15:00-17:00", course.Required),
			course.New("C302", "Film Aesthetics", "Thu 15:00-17:00", course.Elective),
			course.New("C303", "History of Reform and Opening-up", "Thu 15:00-17:00", course.Elective),
		},
	}
}

// SeedIfMissing writes the demonstration data when the storage holds nothing yet.
// It reports whether it seeded.
func SeedIfMissing(storage Storage, logger core.Logger) (bool, error) {
	exists, err := storage.Exists()
	if err != nil {
		return false, errors.Wrap(err, "checking records")
	}
	if exists {
		return false, nil
	}
	if err := storage.Save(DemoSnapshot()); err != nil {
		return false, errors.Wrap(err, "seeding records")
	}
	logger.Info("demonstration records seeded")
	return true, nil
}
