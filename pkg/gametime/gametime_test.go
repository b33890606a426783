package gametime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testWindows = Windows{
	Morning: Window{Open: "07:00", Close: "11:55"},
	Evening: Window{Open: "12:01", Close: "16:25"},
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 2, hour, minute, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		expected Status
	}{
		{
			name:     "before morning open",
			now:      at(6, 59),
			expected: Status{Reason: ReasonNotYetOpen},
		},
		{
			name:     "morning open boundary",
			now:      at(7, 0),
			expected: Status{Open: true, Session: SessionMorning},
		},
		{
			name:     "mid morning",
			now:      at(10, 30),
			expected: Status{Open: true, Session: SessionMorning},
		},
		{
			name:     "morning close boundary is closed",
			now:      at(11, 55),
			expected: Status{Reason: ReasonBetweenSessions},
		},
		{
			name:     "midday gap",
			now:      at(12, 0),
			expected: Status{Reason: ReasonBetweenSessions},
		},
		{
			name:     "evening open boundary",
			now:      at(12, 1),
			expected: Status{Open: true, Session: SessionEvening},
		},
		{
			name:     "mid evening",
			now:      at(15, 0),
			expected: Status{Open: true, Session: SessionEvening},
		},
		{
			name:     "evening close boundary is closed",
			now:      at(16, 25),
			expected: Status{Reason: ReasonClosedForDay},
		},
		{
			name:     "late night",
			now:      at(23, 30),
			expected: Status{Reason: ReasonClosedForDay},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := Resolve(tt.now, testWindows)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestResolve_BadBounds(t *testing.T) {
	_, err := Resolve(at(10, 0), Windows{Morning: Window{Open: "7am", Close: "11:55"}})
	assert.Error(t, err)
}

func TestDefaultSession(t *testing.T) {
	assert.Equal(t, SessionMorning, DefaultSession(at(11, 0), testWindows))
	assert.Equal(t, SessionEvening, DefaultSession(at(13, 0), testWindows))
}

func TestDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Yangon")
	assert.NoError(t, err)

	now := time.Date(2025, 6, 2, 15, 42, 7, 123, loc)
	day := Day(now)

	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, loc), day)
}
