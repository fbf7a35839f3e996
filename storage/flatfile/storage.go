// Package flatfile persists the record store as four line-oriented, '|'-delimited files.
// Every save truncates and rewrites all files.
package flatfile

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/Luna-Breeze/question-answer-system/core"
	"github.com/Luna-Breeze/question-answer-system/core/records"
)

const newline = "\n"

type Paths struct {
	Teachers string
	Students string
	Courses  string
	QA       string
}

// PathsFromConfig resolves the data files configured in `conf`.
func PathsFromConfig(conf *core.Config) Paths {
	return Paths{
		Teachers: conf.Path(conf.TeacherFile),
		Students: conf.Path(conf.StudentFile),
		Courses:  conf.Path(conf.CourseFile),
		QA:       conf.Path(conf.QAFile),
	}
}

func (p Paths) all() []string { return []string{p.Teachers, p.Students, p.Courses, p.QA} }

type Storage struct {
	paths Paths
	log   core.Logger
}

var _ records.Storage = (*Storage)(nil)

func New(paths Paths, logger core.Logger) *Storage {
	return &Storage{paths: paths, log: logger}
}

// Exists reports whether any of the data files is present.
func (fs *Storage) Exists() (bool, error) {
	for _, path := range fs.paths.all() {
		if _, err := os.Stat(path); err == nil {
			return true, nil
		} else if !os.IsNotExist(err) {
			return false, errors.Wrapf(err, "stat %s", path)
		}
	}
	return false, nil
}

// Load reads every file to the end. A missing file is an empty collection and
// malformed lines are skipped with a warning.
func (fs *Storage) Load() (*records.Snapshot, error) {
	snap := new(records.Snapshot)

	err := fs.readLines(fs.paths.Teachers, func(line string) error {
		t, err := DecodeTeacher(line)
		if err == nil {
			snap.Teachers = append(snap.Teachers, t)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	err = fs.readLines(fs.paths.Students, func(line string) error {
		s, err := DecodeStudent(line)
		if err == nil {
			snap.Students = append(snap.Students, s)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	err = fs.readLines(fs.paths.Courses, func(line string) error {
		c, err := DecodeCourse(line)
		if err == nil {
			snap.Courses = append(snap.Courses, c)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	err = fs.readLines(fs.paths.QA, func(line string) error {
		sess, err := DecodeSession(line)
		if err == nil {
			snap.Sessions = append(snap.Sessions, sess)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

func (fs *Storage) readLines(path string, decode func(line string) error) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "opening %s", path)
	}
	//goland:noinspection GoUnhandledErrorResult
	defer file.Close()

	// no line length limit
	r := bufio.NewReader(file)
	for lineNo := 1; ; lineNo++ {
		raw, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return errors.Wrapf(err, "reading %s", path)
		}
		if line := core.TrimEOL(raw); line != "" {
			if derr := decode(line); derr != nil {
				fs.log.Warn("skipping malformed line", "file", path, "line", lineNo, "error", derr)
			}
		}
		if err == io.EOF {
			return nil
		}
	}
}

// Save rewrites every file from `snap`. All files are attempted; the first error is returned.
func (fs *Storage) Save(snap *records.Snapshot) error {
	var lines [4][]string
	for _, t := range snap.Teachers {
		lines[0] = append(lines[0], EncodeTeacher(t))
	}
	for _, s := range snap.Students {
		lines[1] = append(lines[1], EncodeStudent(s))
	}
	for _, c := range snap.Courses {
		lines[2] = append(lines[2], EncodeCourse(c))
	}
	for _, sess := range snap.Sessions {
		lines[3] = append(lines[3], EncodeSession(sess))
	}

	var firstErr error
	for i, path := range fs.paths.all() {
		if err := writeLines(path, lines[i]); err != nil {
			fs.log.Error("writing data file failed", "file", path, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func writeLines(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory of %s", path)
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	w := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := w.WriteString(line + newline); err != nil {
			_ = file.Close()
			return errors.Wrapf(err, "writing %s", path)
		}
	}
	if err := w.Flush(); err != nil {
		_ = file.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(file.Close(), "closing %s", path)
}
