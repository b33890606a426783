package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownGameType   = errors.New("unknown game type")
)

// ValidationError rejects a single entry before any mutation happens.
type ValidationError struct {
	Number string
	Amount int64
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Number != "" {
		return fmt.Sprintf("number %s: %s", e.Number, e.Reason)
	}
	return e.Reason
}

// BlockedNumberError names a denylisted number.
type BlockedNumberError struct {
	Number string
}

func (e *BlockedNumberError) Error() string {
	return fmt.Sprintf("number %s is blocked for today", e.Number)
}

// CapacityError reports the per-number exposure cap violation together with
// the stake the market can still take on that number.
type CapacityError struct {
	Number    string
	Remaining int64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("number %s is sold out, remaining stock %d", e.Number, e.Remaining)
}

// WindowClosedError carries the reason the session window rejected the wager.
type WindowClosedError struct {
	Reason string
}

func (e *WindowClosedError) Error() string {
	return "betting window closed: " + e.Reason
}
