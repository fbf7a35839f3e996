package qa

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rated(ratings ...Rating) Log {
	l := make(Log, 0, len(ratings))
	for _, r := range ratings {
		s := NewSession("T1", "S1", "C101", "2024-03-01 10:00")
		s.Rating = r
		l = append(l, s)
	}
	return l
}

func TestLog_Summary(t *testing.T) {
	tests := []struct {
		name    string
		log     Log
		want    Summary
		wantErr error
	}{
		{name: "empty", log: nil, wantErr: ErrNoRatings},
		{name: "only unrated", log: rated(Unrated, Unrated), wantErr: ErrNoRatings},
		{name: "3 7 10", log: rated(3, 7, 10), want: Summary{Count: 3, Max: 10, Min: 3, Mean: 6.7}},
		{name: "unrated ignored", log: rated(Unrated, 4, Unrated, 5), want: Summary{Count: 2, Max: 5, Min: 4, Mean: 4.5}},
		{name: "single", log: rated(1), want: Summary{Count: 1, Max: 1, Min: 1, Mean: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.log.Summary()
			if err != tt.wantErr {
				t.Fatalf("Summary() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Summary() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSummary_String(t *testing.T) {
	sm, err := rated(3, 7, 10).Summary()
	require.NoError(t, err)
	assert.Equal(t, "Highest: 10, Lowest: 3, Average: 6.7", sm.String())
}

func TestSession_Rate(t *testing.T) {
	s := NewSession("T1", "S1", "C101", "2024-03-01 10:00")
	require.False(t, s.IsRated())

	assert.Equal(t, ErrInvalidRating, s.Rate(0))
	assert.Equal(t, ErrInvalidRating, s.Rate(11))
	assert.False(t, s.IsRated())

	require.NoError(t, s.Rate(9))
	assert.Equal(t, Rating(9), s.Rating)

	assert.Error(t, s.Rate(4))
	assert.Equal(t, Rating(9), s.Rating)
}

func TestLog_FirstUnrated(t *testing.T) {
	first := NewSession("T1", "S1", "C101", "2024-03-01 10:00")
	second := NewSession("T1", "S1", "C101", "2024-03-02 10:00")
	other := NewSession("T2", "S1", "C101", "2024-03-01 09:00")
	l := Log{other, first, second}

	assert.Same(t, first, l.FirstUnrated("S1", "T1", "C101"))
	require.NoError(t, first.Rate(5))
	assert.Same(t, second, l.FirstUnrated("S1", "T1", "C101"))
	require.NoError(t, second.Rate(6))
	assert.Nil(t, l.FirstUnrated("S1", "T1", "C101"))
	assert.Nil(t, l.FirstUnrated("S2", "T2", "C101"))
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 9, 7, 30, 0, time.Local)
	assert.Equal(t, "2024-03-05 09:07", Timestamp(ts))
}
