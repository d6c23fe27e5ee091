// Package postgres provides the PostgreSQL dialect definition.
// This package is pure Go with no database driver dependencies.
package postgres

import "github.com/coxery/dbgate/pkg/core"

// Config is the PostgreSQL dialect configuration.
// This is pure data - accessible by both the driver registry and the dumper.
var Config = &core.DialectConfig{
	Name:  "postgres",
	Title: "PostgreSQL",
	Identifiers: core.IdentifierConfig{
		Quote:    `"`,
		QuoteEnd: `"`,
		Escape:   `""`,
	},
	Strings: core.StringConfig{EscapeChar: `'`},

	Capabilities: core.Capabilities{
		LimitSelect:            true,
		RangeSelect:            true,
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

	// PostgreSQL drops dependent indexes and constraints itself when the
	// column goes away (or refuses without CASCADE), so nothing is emitted
	// ahead of the column drop.
	DropColumnDependencies: nil,

	FallbackDataType: "text",

	Splitter: core.SplitterConfig{
		DollarQuoting: true,
	},

	ConnectionFields: []string{"host", "port", "user", "password", "database", "ssl"},
}
