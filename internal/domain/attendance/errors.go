package attendance

import "errors"

var (
	ErrSessionNotFound    = errors.New("Attendance session not found")
	ErrSessionAlreadyOpen = errors.New("An attendance session is already open")
	ErrNoOpenSession      = errors.New("No open attendance session to close")
)
