package inmemdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luna-Breeze/question-answer-system/core/qa"
	"github.com/Luna-Breeze/question-answer-system/core/records"
	"github.com/Luna-Breeze/question-answer-system/core/user"
)

func TestStorage_SaveCopies(t *testing.T) {
	s := Open()
	exists, err := s.Exists()
	require.NoError(t, err)
	assert.False(t, exists)

	empty, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, empty.Teachers)

	tchr := user.NewTeacher("T1", "pw", "C101")
	sess := qa.NewSession("T1", "S1", "C101", "2024-03-04 14:05")
	require.NoError(t, s.Save(&records.Snapshot{
		Teachers: []*user.Teacher{tchr},
		Sessions: qa.Log{sess},
	}))
	assert.Equal(t, 1, s.Saves())

	// later changes to the live objects do not leak into the stored copy
	tchr.SetPassword("changed")
	_ = tchr.AddCourse("C102")
	sess.Rating = 5

	snap, err := s.Load()
	require.NoError(t, err)
	require.Len(t, snap.Teachers, 1)
	assert.True(t, snap.Teachers[0].CheckPassword("pw"))
	assert.Equal(t, []string{"C101"}, snap.Teachers[0].Courses())
	assert.Equal(t, qa.Unrated, snap.Sessions[0].Rating)

	exists, err = s.Exists()
	require.NoError(t, err)
	assert.True(t, exists)
}
