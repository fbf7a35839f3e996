package flatfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Luna-Breeze/question-answer-system/core/course"
	"github.com/Luna-Breeze/question-answer-system/core/qa"
	"github.com/Luna-Breeze/question-answer-system/core/records"
	"github.com/Luna-Breeze/question-answer-system/core/user"
	"github.com/Luna-Breeze/question-answer-system/services/logger"
)

func tempPaths(t *testing.T) Paths {
	dir := t.TempDir()
	return Paths{
		Teachers: filepath.Join(dir, "teachers.dat"),
		Students: filepath.Join(dir, "students.dat"),
		Courses:  filepath.Join(dir, "courses.dat"),
		QA:       filepath.Join(dir, "qa_records.dat"),
	}
}

func sampleSnapshot() *records.Snapshot {
	rated := qa.NewSession("T1", "S1", "C101", "2024-03-04 14:05")
	rated.Rating = 9
	return &records.Snapshot{
		Teachers: []*user.Teacher{
			user.NewTeacher("T2", "pw2"),
			user.NewTeacher("T1", "pw1", "C101", "C102"),
		},
		Students: []*user.Student{
			user.NewStudent("S1", "", "C101"),
		},
		Courses: []course.Course{
			course.New("C102", "Computer Fundamentals", "Wed 10:00-12:00", course.Elective),
			course.New("C101", "Advanced Mathematics", "", course.Required),
		},
		Sessions: qa.Log{
			rated,
			qa.NewSession("T1", "S1", "C101", "2024-03-05 09:00"),
		},
	}
}

func TestStorage_RoundTrip(t *testing.T) {
	fs := New(tempPaths(t), logsvc.NewNop())
	want := sampleSnapshot()
	require.NoError(t, fs.Save(want))

	got, err := fs.Load()
	require.NoError(t, err)

	require.Len(t, got.Teachers, 2)
	for i, tchr := range want.Teachers {
		assert.Equal(t, tchr.ID(), got.Teachers[i].ID())
		assert.Equal(t, tchr.Password(), got.Teachers[i].Password())
		assert.Equal(t, tchr.Courses(), got.Teachers[i].Courses())
	}
	require.Len(t, got.Students, 1)
	assert.Equal(t, "S1", got.Students[0].ID())
	assert.Equal(t, "", got.Students[0].Password())
	assert.Equal(t, want.Courses, got.Courses)
	assert.Equal(t, want.Sessions, got.Sessions)
}

func TestStorage_SaveTruncates(t *testing.T) {
	paths := tempPaths(t)
	fs := New(paths, logsvc.NewNop())
	require.NoError(t, fs.Save(sampleSnapshot()))
	require.NoError(t, fs.Save(&records.Snapshot{
		Teachers: []*user.Teacher{user.NewTeacher("T9", "pw")},
	}))

	data, err := os.ReadFile(paths.Teachers)
	require.NoError(t, err)
	assert.Equal(t, "T9|pw|\n", string(data))

	data, err = os.ReadFile(paths.QA)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestStorage_MissingFiles(t *testing.T) {
	fs := New(tempPaths(t), logsvc.NewNop())

	exists, err := fs.Exists()
	require.NoError(t, err)
	assert.False(t, exists)

	snap, err := fs.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Teachers)
	assert.Empty(t, snap.Students)
	assert.Empty(t, snap.Courses)
	assert.Empty(t, snap.Sessions)
}

func TestStorage_Exists(t *testing.T) {
	paths := tempPaths(t)
	require.NoError(t, os.WriteFile(paths.Courses, []byte("C1|Math|Mon|B\n"), 0o644))

	exists, err := New(paths, logsvc.NewNop()).Exists()
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStorage_LoadSkipsMalformedLines(t *testing.T) {
	paths := tempPaths(t)
	write := func(path, content string) {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	write(paths.Teachers, "T1|pw|C101\r\n\r\ngarbage\nT2|pw|\n")
	write(paths.Courses, "B|C101|Advanced Mathematics|Mon 14:00-16:00|\nC102|Broken|Wed|Q\n")
	write(paths.QA, "T1|S1|C101|2024-03-04 14:05|42\nT1|S1|C101|2024-03-04 14:06|3\n")

	obs, logs := observer.New(zapcore.WarnLevel)
	fs := New(paths, logsvc.Wrap(zap.New(obs)))
	snap, err := fs.Load()
	require.NoError(t, err)

	require.Len(t, snap.Teachers, 2)
	assert.Equal(t, "T1", snap.Teachers[0].ID())
	assert.Equal(t, []string{"C101"}, snap.Teachers[0].Courses())
	assert.Equal(t, "T2", snap.Teachers[1].ID())

	assert.Equal(t, []course.Course{
		course.New("C101", "Advanced Mathematics", "Mon 14:00-16:00", course.Required),
	}, snap.Courses)

	require.Len(t, snap.Sessions, 1)
	assert.Equal(t, qa.Rating(3), snap.Sessions[0].Rating)

	assert.Equal(t, 3, logs.FilterMessage("skipping malformed line").Len())
}

func TestStorage_StoreRoundTrip(t *testing.T) {
	paths := tempPaths(t)
	fs := New(paths, logsvc.NewNop())
	seeded, err := records.SeedIfMissing(fs, logsvc.NewNop())
	require.NoError(t, err)
	require.True(t, seeded)

	st := records.Open(fs, logsvc.NewNop())
	tchr, err := st.AuthenticateTeacher("T001", "pass123")
	require.NoError(t, err)
	_, err = st.CreateSession(tchr, "S1001", "C101")
	require.NoError(t, err)
	require.NoError(t, st.Save())

	reopened := records.Open(fs, logsvc.NewNop())
	assert.Equal(t, st.Courses(), reopened.Courses())
	assert.Equal(t, st.Sessions(), reopened.Sessions())
	assert.Len(t, reopened.TeacherSessions("T001"), 1)
}

func TestStorage_LongLineRoundTrip(t *testing.T) {
	fs := New(tempPaths(t), logsvc.NewNop())
	_, err := records.SeedIfMissing(fs, logsvc.NewNop())
	require.NoError(t, err)

	st := records.Open(fs, logsvc.NewNop())
	s, ok := st.Student("S1001")
	require.True(t, ok)
	long := strings.Repeat("p", 70000)
	require.NoError(t, st.ChangePassword(s, long))
	require.NoError(t, st.Close())

	reopened := records.Open(fs, logsvc.NewNop())
	assert.Len(t, reopened.Teachers(), 5)
	assert.Len(t, reopened.Students(), 5)
	assert.Len(t, reopened.Courses(), 8)
	rs, ok := reopened.Student("S1001")
	require.True(t, ok)
	assert.True(t, rs.CheckPassword(long))
	assert.Equal(t, []string{"C101", "C201"}, rs.Courses())
}

func TestStorage_FailedLoadKeepsFiles(t *testing.T) {
	paths := tempPaths(t)
	fs := New(paths, logsvc.NewNop())
	_, err := records.SeedIfMissing(fs, logsvc.NewNop())
	require.NoError(t, err)

	// a directory in place of the teacher file makes the load fail
	require.NoError(t, os.Remove(paths.Teachers))
	require.NoError(t, os.Mkdir(paths.Teachers, 0o755))

	before := make(map[string][]byte)
	for _, path := range []string{paths.Students, paths.Courses, paths.QA} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		before[path] = data
	}

	st := records.Open(fs, logsvc.NewNop())
	assert.Empty(t, st.Courses())
	_, err = st.AuthenticateStudent("S9", "pw")
	require.NoError(t, err)
	assert.Equal(t, records.ErrNotLoaded, st.Close())

	for path, want := range before {
		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}
	info, err := os.Stat(paths.Teachers)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
