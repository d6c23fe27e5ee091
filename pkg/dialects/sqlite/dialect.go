// Package sqlite provides the SQLite dialect definition.
package sqlite

import (
	"github.com/coxery/dbgate/pkg/dialect"
)

func init() {
	dialect.Register(SQLite)
}

// SQLite is the SQLite dialect.
var SQLite = dialect.New(Config).Build()
