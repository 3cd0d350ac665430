package messaging

// MessagingError represents errors returned by the messaging service
type MessagingError string

func (e MessagingError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    MessagingError = "config cannot be nil"
	ErrNilGenerator MessagingError = "generator cannot be nil"
	ErrNilInput     MessagingError = "input cannot be nil"
	ErrNilSummary   MessagingError = "summary cannot be nil"
)
