// Package sqlite provides the SQLite dialect definition.
// This package is pure Go with no database driver dependencies.
package sqlite

import "github.com/coxery/dbgate/pkg/core"

// Config is the SQLite dialect configuration.
var Config = &core.DialectConfig{
	Name:  "sqlite",
	Title: "SQLite",
	Identifiers: core.IdentifierConfig{
		Quote:    `"`,
		QuoteEnd: `"`,
		Escape:   `""`,
	},
	Strings: core.StringConfig{EscapeChar: `'`},

	Capabilities: core.Capabilities{
		LimitSelect:  true,
		RangeSelect:  true,
		CreateColumn: true,
		DropColumn:   true,
		CreateIndex:  true,
		DropIndex:    true,
		// Constraint changes require a table rebuild, which is a different
		// operation entirely; report them unsupported.
		CreateForeignKey:       false,
		DropForeignKey:         false,
		CreatePrimaryKey:       false,
		DropPrimaryKey:         false,
		ExplicitDropConstraint: false,
	},

	// Indexes on the column must be dropped before ALTER TABLE DROP COLUMN.
	DropColumnDependencies: []core.DependencyKind{core.DepIndexes},

	FallbackDataType: "text",

	Splitter: core.SplitterConfig{
		// SQLite accepts [bracket] identifiers for compatibility.
		BracketIdentifiers: true,
	},

	ConnectionFields: []string{"file"},
}
