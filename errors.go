package progress

import "github.com/ghettovoice/progress/internal/errorutil"

// Error represents a progress timer error.
// See [errorutil.Error].
type Error = errorutil.Error

// Common errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrKilled is returned when operating on a timer after [Timer.Kill].
	ErrKilled Error = "timer killed"
)

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
