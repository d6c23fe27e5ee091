// Package mysql provides the MySQL dialect definition.
// This package is pure Go with no database driver dependencies.
package mysql

import "github.com/coxery/dbgate/pkg/core"

// Config is the MySQL dialect configuration.
var Config = &core.DialectConfig{
	Name:  "mysql",
	Title: "MySQL",
	Identifiers: core.IdentifierConfig{
		Quote:    "`",
		QuoteEnd: "`",
		Escape:   "``",
	},
	Strings: core.StringConfig{EscapeChar: `\`},

	Capabilities: core.Capabilities{
		LimitSelect:      true,
		RangeSelect:      true,
		CreateColumn:     true,
		DropColumn:       true,
		CreateIndex:      true,
		DropIndex:        true,
		CreateForeignKey: true,
		DropForeignKey:   true,
		CreatePrimaryKey: true,
		DropPrimaryKey:   true,
		// MySQL predates generic DROP CONSTRAINT; drops are typed
		// (DROP FOREIGN KEY, DROP INDEX, DROP PRIMARY KEY).
		ExplicitDropConstraint: false,
	},

	// Foreign keys referencing the column block the drop and must go first.
	DropColumnDependencies: []core.DependencyKind{core.DepForeignKeys},

	FallbackDataType: "varchar(255)",

	DDL: core.DDLStyle{
		DropIndexOnTable: true,
	},

	Splitter: core.SplitterConfig{
		HashComments:        true,
		DoubleQuoteStrings:  true,
		BacktickIdentifiers: true,
		BackslashEscapes:    true,
	},

	ConnectionFields: []string{"host", "port", "user", "password", "database"},
}
