package flatfile

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Luna-Breeze/question-answer-system/core/course"
	"github.com/Luna-Breeze/question-answer-system/core/qa"
	"github.com/Luna-Breeze/question-answer-system/core/user"
)

const (
	fieldSep  = "|"
	courseSep = ","
)

var errMalformed = errors.New("malformed line")

func encodeAccount(id, pwd string, courseIDs []string) string {
	return id + fieldSep + pwd + fieldSep + strings.Join(courseIDs, courseSep)
}

func decodeAccount(line string) (id, pwd string, courseIDs []string, err error) {
	flds := strings.SplitN(line, fieldSep, 3)
	if len(flds) < 2 || flds[0] == "" {
		return "", "", nil, errors.Wrapf(errMalformed, "account %q", line)
	}
	id, pwd = flds[0], flds[1]
	if len(flds) == 3 {
		for _, cid := range strings.Split(flds[2], courseSep) {
			if cid != "" {
				courseIDs = append(courseIDs, cid)
			}
		}
	}
	return id, pwd, courseIDs, nil
}

// EncodeTeacher renders `teacherID|password|courseID1,courseID2`.
func EncodeTeacher(t *user.Teacher) string {
	return encodeAccount(t.ID(), t.Password(), t.Courses())
}

func DecodeTeacher(line string) (*user.Teacher, error) {
	id, pwd, cids, err := decodeAccount(line)
	if err != nil {
		return nil, err
	}
	return user.NewTeacher(id, pwd, cids...), nil
}

// EncodeStudent renders `studentID|password|courseID1,courseID2`.
func EncodeStudent(s *user.Student) string {
	return encodeAccount(s.ID(), s.Password(), s.Courses())
}

func DecodeStudent(line string) (*user.Student, error) {
	id, pwd, cids, err := decodeAccount(line)
	if err != nil {
		return nil, err
	}
	return user.NewStudent(id, pwd, cids...), nil
}

// EncodeCourse renders `courseID|name|qaTime|KindTag`, the tag last.
func EncodeCourse(c course.Course) string {
	return c.ID + fieldSep + c.Name + fieldSep + c.QATime + fieldSep + string(c.Kind.Tag())
}

// DecodeCourse reads the one-character kind tag first, then parses the rest of the line
// for id, name and QA time. Besides the canonical tag-last layout it accepts the
// tag-first layout of older seed files (`B|C101|name|time|`).
func DecodeCourse(line string) (course.Course, error) {
	kind, rest, ok := cutKindTag(line)
	if !ok {
		return course.Course{}, errors.Wrapf(errMalformed, "course %q: no kind tag", line)
	}
	flds := strings.SplitN(rest, fieldSep, 3)
	if len(flds) != 3 || flds[0] == "" {
		return course.Course{}, errors.Wrapf(errMalformed, "course %q", line)
	}
	return course.New(flds[0], flds[1], flds[2], kind), nil
}

func cutKindTag(line string) (course.Kind, string, bool) {
	// tag last: id|name|qaTime|B
	if i := strings.LastIndex(line, fieldSep); i >= 0 && len(line)-i == 2 {
		if kind, ok := course.KindFromTag(line[i+1]); ok {
			return kind, line[:i], true
		}
	}
	// tag first: B|id|name|qaTime|
	if len(line) >= 2 && line[1:2] == fieldSep {
		if kind, ok := course.KindFromTag(line[0]); ok {
			return kind, strings.TrimSuffix(line[2:], fieldSep), true
		}
	}
	return 0, "", false
}

// EncodeSession renders `teacherID|studentID|courseID|timestamp|rating`.
func EncodeSession(s *qa.Session) string {
	return strings.Join([]string{
		s.TeacherID,
		s.StudentID,
		s.CourseID,
		s.Timestamp,
		strconv.Itoa(int(s.Rating)),
	}, fieldSep)
}

func DecodeSession(line string) (*qa.Session, error) {
	flds := strings.SplitN(line, fieldSep, 5)
	if len(flds) != 5 {
		return nil, errors.Wrapf(errMalformed, "QA session %q", line)
	}
	rating, err := strconv.Atoi(strings.TrimSpace(flds[4]))
	if err != nil {
		return nil, errors.Wrapf(errMalformed, "QA session %q: rating", line)
	}
	r := qa.Rating(rating)
	if r != qa.Unrated && !r.Valid() {
		return nil, errors.Wrapf(errMalformed, "QA session %q: rating out of range", line)
	}
	sess := qa.NewSession(flds[0], flds[1], flds[2], flds[3])
	sess.Rating = r
	return sess, nil
}
