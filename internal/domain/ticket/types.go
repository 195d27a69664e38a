package ticket

import "errors"

var ErrInvalidStatus = errors.New("invalid ticket status")

type Status string

const (
	// StatusPending is set on creation; the first admin reply resolves
	// the ticket.
	StatusPending  Status = "Pending"
	StatusResolved Status = "Resolved"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusResolved:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
