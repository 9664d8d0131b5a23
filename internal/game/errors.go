package game

import "errors"

var (
	ErrNoRound      = errors.New("no round in progress")
	ErrRoundSolved  = errors.New("round already solved")
	ErrWordNotFound = errors.New("word not found in area")
)

// ImportError reports a rejected sentence import. The session has already
// fallen back to the default list when it is returned.
type ImportError struct {
	Err error
}

func (e *ImportError) Error() string {
	return "invalid sentence file: " + e.Err.Error()
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
