package dump

import (
	"fmt"

	"github.com/coxery/dbgate/pkg/core"
)

// UnsupportedOperationError is returned when a dialect's capability flag for
// the requested DDL operation is false. No text is emitted.
type UnsupportedOperationError struct {
	Dialect   string
	Operation core.Operation
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("dialect %q does not support %s", e.Dialect, e.Operation)
}

// InvalidDependencyStateError is returned when a column drop cannot proceed
// because the dependent-object inventory for the column is missing while the
// dialect requires dependent objects to be dropped first. Only the requested
// drop is aborted.
type InvalidDependencyStateError struct {
	Dialect string
	Table   string
	Column  string
}

func (e *InvalidDependencyStateError) Error() string {
	return fmt.Sprintf("dialect %q requires dependent objects of %s.%s to be dropped first, but no dependency inventory was provided",
		e.Dialect, e.Table, e.Column)
}
