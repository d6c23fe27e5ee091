// Package postgres provides the PostgreSQL dialect definition.
package postgres

import (
	"github.com/coxery/dbgate/pkg/dialect"
)

func init() {
	dialect.Register(Postgres)
}

// Postgres is the PostgreSQL dialect.
var Postgres = dialect.New(Config).Build()
