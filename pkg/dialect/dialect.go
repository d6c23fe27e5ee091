// Package dialect provides SQL dialect behavior over pure-data configuration.
//
// This package contains the public contract for dialect definitions used by
// the splitter, the DDL dumper and the driver registry. Concrete dialect
// implementations are registered from pkg/dialects/*/ packages.
package dialect

import (
	"strings"

	"github.com/coxery/dbgate/pkg/core"
)

// Dialect represents a SQL engine's capability and lexical-convention
// profile. Immutable after Build; safe for concurrent reads.
type Dialect struct {
	cfg core.DialectConfig

	// Splitter options resolved once at build time.
	splitOptions core.SplitterOptions
}

// Name returns the engine identifier.
func (d *Dialect) Name() string {
	return d.cfg.Name
}

// Title returns the human-readable engine name.
func (d *Dialect) Title() string {
	if d.cfg.Title != "" {
		return d.cfg.Title
	}
	return d.cfg.Name
}

// Supports reports whether the dialect supports the given operation.
func (d *Dialect) Supports(op core.Operation) bool {
	return d.cfg.Capabilities.Has(op)
}

// Capabilities returns the full capability table.
func (d *Dialect) Capabilities() core.Capabilities {
	return d.cfg.Capabilities
}

// QuoteIdentifier quotes an identifier using the dialect's quote characters.
func (d *Dialect) QuoteIdentifier(name string) string {
	// Escape any embedded end-quote characters (e.g., ] -> ]])
	escaped := strings.ReplaceAll(name, d.cfg.Identifiers.QuoteEnd, d.cfg.Identifiers.Escape)
	return d.cfg.Identifiers.Quote + escaped + d.cfg.Identifiers.QuoteEnd
}

// EscapeString escapes a value for embedding in a single-quoted literal.
// The surrounding quotes are not added.
func (d *Dialect) EscapeString(value string) string {
	if d.cfg.Strings.EscapeChar == `\` {
		value = strings.ReplaceAll(value, `\`, `\\`)
		return strings.ReplaceAll(value, `'`, `\'`)
	}
	return strings.ReplaceAll(value, `'`, `''`)
}

// QuoteString returns the value as a complete single-quoted literal.
func (d *Dialect) QuoteString(value string) string {
	return "'" + d.EscapeString(value) + "'"
}

// FallbackType returns the data type used when a requested column type is
// unknown or empty.
func (d *Dialect) FallbackType() string {
	return d.cfg.FallbackDataType
}

// DropColumnDependencies returns the ordered dependent-object kinds that
// must be dropped before a column. The returned slice must not be mutated.
func (d *Dialect) DropColumnDependencies() []core.DependencyKind {
	return d.cfg.DropColumnDependencies
}

// DDL returns the engine's ALTER/DROP phrasing style.
func (d *Dialect) DDL() core.DDLStyle {
	return d.cfg.DDL
}

// ConnectionFields returns the connection-form fields relevant to this
// engine. Display metadata only.
func (d *Dialect) ConnectionFields() []string {
	return d.cfg.ConnectionFields
}

// SplitterOptions resolves the splitter configuration for a usage context.
// ContextStream always resolves to the no-split configuration regardless of
// dialect: the execution channel handles multi-statement scripts itself.
// Every other context resolves to the dialect's normal splitting
// configuration, batch separator included.
func (d *Dialect) SplitterOptions(ctx core.UsageContext) core.SplitterOptions {
	if ctx == core.ContextStream {
		return core.SplitterOptions{NoSplit: true}
	}
	return d.splitOptions
}

// Config returns a copy of the pure-data configuration for this dialect.
func (d *Dialect) Config() core.DialectConfig {
	return d.cfg
}

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	cfg core.DialectConfig
}

// New creates a dialect builder from a DialectConfig.
// This is the preferred constructor for the pkg/dialects packages.
func New(cfg *core.DialectConfig) *Builder {
	return &Builder{cfg: *cfg}
}

// NewDialect creates a builder with ANSI defaults, mostly for tests:
// double-quote identifiers, quote-doubling string escapes, ";" delimiter.
func NewDialect(name string) *Builder {
	return &Builder{cfg: core.DialectConfig{
		Name: name,
		Identifiers: core.IdentifierConfig{
			Quote:    `"`,
			QuoteEnd: `"`,
			Escape:   `""`,
		},
		Strings:          core.StringConfig{EscapeChar: `'`},
		FallbackDataType: "varchar(255)",
	}}
}

// Title sets the display title.
func (b *Builder) Title(title string) *Builder {
	b.cfg.Title = title
	return b
}

// Identifiers configures identifier quoting.
func (b *Builder) Identifiers(quote, quoteEnd, escape string) *Builder {
	b.cfg.Identifiers = core.IdentifierConfig{Quote: quote, QuoteEnd: quoteEnd, Escape: escape}
	return b
}

// StringEscape sets the string-literal escape character.
func (b *Builder) StringEscape(ch string) *Builder {
	b.cfg.Strings.EscapeChar = ch
	return b
}

// Capabilities sets the capability table.
func (b *Builder) Capabilities(caps core.Capabilities) *Builder {
	b.cfg.Capabilities = caps
	return b
}

// DropColumnDependencies sets the ordered dependent-object kinds.
func (b *Builder) DropColumnDependencies(kinds ...core.DependencyKind) *Builder {
	b.cfg.DropColumnDependencies = kinds
	return b
}

// FallbackType sets the fallback data type.
func (b *Builder) FallbackType(t string) *Builder {
	b.cfg.FallbackDataType = t
	return b
}

// Splitter sets the lexical convention table for statement splitting.
func (b *Builder) Splitter(cfg core.SplitterConfig) *Builder {
	b.cfg.Splitter = cfg
	return b
}

// ConnectionFields sets the relevant connection-form fields.
func (b *Builder) ConnectionFields(fields ...string) *Builder {
	b.cfg.ConnectionFields = fields
	return b
}

// Build returns the constructed dialect with splitter options resolved per
// usage context.
func (b *Builder) Build() *Dialect {
	d := &Dialect{cfg: b.cfg}

	d.splitOptions = core.SplitterOptions{
		Delimiter:           ";",
		DashComments:        true,
		HashComments:        b.cfg.Splitter.HashComments,
		BlockComments:       true,
		DoubleQuoteStrings:  b.cfg.Splitter.DoubleQuoteStrings,
		BacktickIdentifiers: b.cfg.Splitter.BacktickIdentifiers,
		BracketIdentifiers:  b.cfg.Splitter.BracketIdentifiers,
		DollarQuoting:       b.cfg.Splitter.DollarQuoting,
		BackslashEscapes:    b.cfg.Splitter.BackslashEscapes,
		BatchSeparator:      b.cfg.Splitter.BatchSeparator,
	}

	return d
}
