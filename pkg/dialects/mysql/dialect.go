// Package mysql provides the MySQL dialect definition.
package mysql

import (
	"github.com/coxery/dbgate/pkg/dialect"
)

func init() {
	dialect.Register(MySQL)
}

// MySQL is the MySQL dialect.
var MySQL = dialect.New(Config).Build()
