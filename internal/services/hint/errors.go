package hint

// HintError is a custom error type for hint lookups
type HintError string

// Error implements the error interface
func (e HintError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    HintError = "config cannot be nil"
	ErrNilGenerator HintError = "generator cannot be nil"
	ErrNilInput     HintError = "input cannot be nil"
	ErrNoHint       HintError = "no hint available"
	ErrUnknownKind  HintError = "unknown hint kind"
)
