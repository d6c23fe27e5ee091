// Package dialects registers all built-in engine dialects.
//
// Import for side effects to make every supported engine available to
// dialect.Get and driver.DefaultConfig:
//
//	import _ "github.com/coxery/dbgate/pkg/dialects"
//
// Hosts that ship a subset import the individual packages instead.
package dialects

import (
	_ "github.com/coxery/dbgate/pkg/dialects/mysql"
	_ "github.com/coxery/dbgate/pkg/dialects/postgres"
	_ "github.com/coxery/dbgate/pkg/dialects/sqlite"
	_ "github.com/coxery/dbgate/pkg/dialects/sqlserver"
)
