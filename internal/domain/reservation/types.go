package reservation

import "errors"

type Status string

const (
	StatusBooked    Status = "BOOKED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

var (
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrInvalidTargetStatus = errors.New("target status must be CANCELLED or COMPLETED")
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanTransitionTo reports whether s may move to target. Only BOOKED rows move.
func (s Status) CanTransitionTo(target Status) bool {
	return s == StatusBooked && target.IsTerminal()
}

func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func ParseTargetStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsTerminal() {
		return "", ErrInvalidTargetStatus
	}
	return s, nil
}
