package round

// RoundError is a custom error type for round errors
type RoundError string

// Error implements the error interface
func (e RoundError) Error() string {
	return string(e)
}

const (
	ErrNilConfig            RoundError = "config cannot be nil"
	ErrNilReader            RoundError = "line reader cannot be nil"
	ErrNilPresenter         RoundError = "presenter cannot be nil"
	ErrNilHintService       RoundError = "hint service cannot be nil"
	ErrNilInput             RoundError = "input cannot be nil"
	ErrInvalidAttemptPolicy RoundError = "unknown attempt policy"
	ErrTargetOutOfRange     RoundError = "target is outside the round's range"
	ErrInputClosed          RoundError = "input closed before the round was won"
)
