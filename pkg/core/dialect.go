package core

// DialectConfig holds the static configuration for a SQL dialect.
// This is pure data — no handler functions.
//
// Runtime behavior (quoting, escaping, capability queries, splitter-option
// resolution) lives in pkg/dialect.Dialect, which is built from this config.
type DialectConfig struct {
	// Name is the engine identifier (e.g., "postgres", "sqlserver")
	Name string

	// Title is the human-readable engine name for display surfaces
	Title string

	// Identifiers defines identifier quoting rules
	Identifiers IdentifierConfig

	// Strings defines string-literal escaping rules
	Strings StringConfig

	// Capabilities is the per-operation support table
	Capabilities Capabilities

	// DropColumnDependencies lists dependent-object kinds that must be
	// dropped before a column, in the order their drops must be emitted
	DropColumnDependencies []DependencyKind

	// FallbackDataType is used when a requested column type is unknown
	FallbackDataType string

	// DDL captures small phrasing differences in ALTER/DROP syntax
	DDL DDLStyle

	// Splitter is the lexical convention table for statement splitting
	Splitter SplitterConfig

	// ConnectionFields names the connection-form fields relevant to this
	// engine (display metadata, pass-through for the host)
	ConnectionFields []string
}

// DDLStyle captures per-engine phrasing differences too small for
// capability flags.
type DDLStyle struct {
	// OmitAddColumnKeyword emits ALTER TABLE t ADD c type (SQL Server)
	// instead of ADD COLUMN
	OmitAddColumnKeyword bool
	// DropIndexOnTable emits DROP INDEX name ON table (MySQL, SQL Server)
	// instead of the bare DROP INDEX name
	DropIndexOnTable bool
}

// IdentifierConfig defines how identifiers are quoted.
type IdentifierConfig struct {
	Quote    string // Quote character: ", `, [
	QuoteEnd string // End quote character (usually same as Quote, ] for [)
	Escape   string // Replacement for an embedded QuoteEnd: "", ``, ]]
}

// StringConfig defines how string literals are escaped.
type StringConfig struct {
	// EscapeChar is the character that escapes a quote inside a single-quoted
	// literal: ' (doubling, ANSI) or \ (MySQL).
	EscapeChar string
}

// SplitterConfig is the dialect side of splitter configuration: which
// lexical constructs the engine's scripts may contain. The usage context
// decides whether splitting happens at all (see SplitterOptions).
type SplitterConfig struct {
	// HashComments enables # line comments (MySQL)
	HashComments bool
	// DoubleQuoteStrings treats "..." as a string literal rather than a
	// quoted identifier (MySQL with default sql_mode)
	DoubleQuoteStrings bool
	// BacktickIdentifiers enables `...` quoted identifiers (MySQL)
	BacktickIdentifiers bool
	// BracketIdentifiers enables [...] quoted identifiers (SQL Server)
	BracketIdentifiers bool
	// DollarQuoting enables $tag$...$tag$ string bodies (PostgreSQL)
	DollarQuoting bool
	// BackslashEscapes makes \ escape the next character inside strings
	BackslashEscapes bool
	// BatchSeparator is a keyword recognized only alone on its own line
	// (e.g., "GO"); empty means the dialect has none
	BatchSeparator string
}
