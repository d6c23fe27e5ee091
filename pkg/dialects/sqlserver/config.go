// Package sqlserver provides the Microsoft SQL Server dialect definition.
// This package is pure Go with no database driver dependencies.
package sqlserver

import "github.com/coxery/dbgate/pkg/core"

// Config is the SQL Server dialect configuration.
var Config = &core.DialectConfig{
	Name:  "sqlserver",
	Title: "Microsoft SQL Server",
	Identifiers: core.IdentifierConfig{
		Quote:    "[",
		QuoteEnd: "]",
		Escape:   "]]",
	},
	Strings: core.StringConfig{EscapeChar: `'`},

	Capabilities: core.Capabilities{
		LimitSelect:            true,
		RangeSelect:            true,
		OffsetFetchRangeSyntax: true,
		ExplicitDropConstraint: true,
		CreateColumn:           true,
		DropColumn:             true,
		CreateIndex:            true,
		DropIndex:              true,
		CreateForeignKey:       true,
		DropForeignKey:         true,
		CreatePrimaryKey:       true,
		DropPrimaryKey:         true,
	},

	// Default constraints and indexes block a column drop; both must be
	// removed before the column, constraints first.
	DropColumnDependencies: []core.DependencyKind{core.DepConstraints, core.DepIndexes},

	FallbackDataType: "nvarchar(max)",

	DDL: core.DDLStyle{
		OmitAddColumnKeyword: true,
		DropIndexOnTable:     true,
	},

	Splitter: core.SplitterConfig{
		BracketIdentifiers: true,
		BatchSeparator:     "GO",
	},

	ConnectionFields: []string{"host", "port", "user", "password", "database", "ssl"},
}
