// Package sqlserver provides the Microsoft SQL Server dialect definition.
package sqlserver

import (
	"github.com/coxery/dbgate/pkg/dialect"
)

func init() {
	dialect.Register(SQLServer)
}

// SQLServer is the Microsoft SQL Server dialect.
var SQLServer = dialect.New(Config).Build()
