package driver

import "fmt"

// UnknownEngineError is returned when no driver is registered under the
// requested engine id.
type UnknownEngineError struct {
	ID        string
	Available []string
}

func (e *UnknownEngineError) Error() string {
	return fmt.Sprintf("unknown engine %q (available: %v)", e.ID, e.Available)
}

// UnknownDialectError is returned at registry construction when a config
// entry names a dialect that is not registered.
type UnknownDialectError struct {
	Name      string
	Available []string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown dialect %q (registered: %v)", e.Name, e.Available)
}
