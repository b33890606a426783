// Package gametime resolves wall-clock time against the market's two daily
// betting windows. Resolution is pure; the caller supplies the current time
// already shifted into the market's civil timezone.
package gametime

import (
	"fmt"
	"time"
)

const (
	SessionMorning = "MORNING"
	SessionEvening = "EVENING"
)

const (
	ReasonNotYetOpen      = "not yet open"
	ReasonBetweenSessions = "between sessions"
	ReasonClosedForDay    = "closed for the day"
)

// Window is one daily open interval, bounds in "HH:MM".
type Window struct {
	Open  string
	Close string
}

// Windows are the two disjoint daily windows of the lottery market.
type Windows struct {
	Morning Window
	Evening Window
}

// Status is the resolver verdict for one instant.
type Status struct {
	Open    bool
	Session string
	Reason  string
}

// Resolve maps an instant to the open window containing it, or to a closed
// status whose reason distinguishes before-morning, the midday gap and
// after-evening.
func Resolve(now time.Time, w Windows) (Status, error) {
	minute := now.Hour()*60 + now.Minute()

	mo, err := parseClock(w.Morning.Open)
	if err != nil {
		return Status{}, err
	}
	mc, err := parseClock(w.Morning.Close)
	if err != nil {
		return Status{}, err
	}
	eo, err := parseClock(w.Evening.Open)
	if err != nil {
		return Status{}, err
	}
	ec, err := parseClock(w.Evening.Close)
	if err != nil {
		return Status{}, err
	}

	switch {
	case minute < mo:
		return Status{Reason: ReasonNotYetOpen}, nil
	case minute < mc:
		return Status{Open: true, Session: SessionMorning}, nil
	case minute < eo:
		return Status{Reason: ReasonBetweenSessions}, nil
	case minute < ec:
		return Status{Open: true, Session: SessionEvening}, nil
	default:
		return Status{Reason: ReasonClosedForDay}, nil
	}
}

// DefaultSession picks the session a result publication belongs to when the
// operator does not name one: morning until the evening window opens, evening
// after.
func DefaultSession(now time.Time, w Windows) string {
	eo, err := parseClock(w.Evening.Open)
	if err != nil {
		eo = 12*60 + 1
	}
	if now.Hour()*60+now.Minute() < eo {
		return SessionMorning
	}
	return SessionEvening
}

// Day truncates an instant to its civil day.
func Day(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("bad window bound %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
