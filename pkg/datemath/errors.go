package datemath

import "errors"

var (
	ErrUnknownPhrase  = errors.New("unrecognized date phrase")
	ErrInvalidAmount  = errors.New("invalid relative amount")
	ErrUnknownWeekday = errors.New("unknown weekday")
)
