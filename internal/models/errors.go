package models

// ModelError is a custom error type for parsing player choices
type ModelError string

// Error implements the error interface
func (e ModelError) Error() string {
	return string(e)
}

const (
	ErrInvalidRange        ModelError = "invalid range"
	ErrInvalidContinuation ModelError = "invalid continuation choice"
	ErrInvalidHintKind     ModelError = "invalid hint choice"
)
