package game

import "errors"

// Engine error taxonomy. Input errors are user-correctable and cause
// no state mutation; ErrAlreadyFinished is informational; scoring
// failures are transient and retryable.
var (
	ErrAlreadyFinished    = errors.New("challenge already finished for today")
	ErrEmptyWord          = errors.New("empty word")
	ErrMultiWord          = errors.New("multi-word input")
	ErrInvalidChars       = errors.New("word contains non-letter characters")
	ErrUnknownWord        = errors.New("word not in dictionary")
	ErrRepeatedWord       = errors.New("word already attempted")
	ErrScoringUnavailable = errors.New("similarity scoring unavailable")
)

// IsInvalidInput reports whether err is a user-correctable input error.
func IsInvalidInput(err error) bool {
	for _, e := range []error{ErrEmptyWord, ErrMultiWord, ErrInvalidChars, ErrUnknownWord, ErrRepeatedWord} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
