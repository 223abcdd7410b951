package session

import "fmt"

// ValidationError is a local, pre-network field failure. It never reaches
// the backend and never reaches a global handler.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthRejected is a server-reported business failure (wrong credentials,
// taken username, and so on).
type AuthRejected struct {
	Message string
}

func (e *AuthRejected) Error() string {
	return e.Message
}

// TransportError is a network or decode failure between client and backend.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
