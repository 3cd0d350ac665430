package session

// SessionError represents errors returned by the session service
type SessionError string

func (e SessionError) Error() string {
	return string(e)
}

const (
	ErrNilConfig       SessionError = "config cannot be nil"
	ErrNilGenerator    SessionError = "generator cannot be nil"
	ErrNilRoundService SessionError = "round service cannot be nil"
	ErrNilReader       SessionError = "reader cannot be nil"
	ErrNilPresenter    SessionError = "presenter cannot be nil"
	ErrNilHistoryRepo  SessionError = "history repository cannot be nil"
	ErrNilInput        SessionError = "input cannot be nil"
)
