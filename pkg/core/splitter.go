package core

// UsageContext is the caller's execution mode. It selects splitter behavior
// when resolved through a dialect or driver.
type UsageContext int

const (
	// ContextEdit is interactive editing: scripts are split into individual
	// statements using the dialect's normal configuration, delimiter and
	// batch separator included.
	ContextEdit UsageContext = iota
	// ContextScript is whole-script execution; it resolves to the same
	// splitting configuration as edit.
	ContextScript
	// ContextStream is pass-through execution: the underlying channel handles
	// multi-statement scripts itself, so no splitting happens at all.
	ContextStream
)

// String returns the context name.
func (c UsageContext) String() string {
	switch c {
	case ContextEdit:
		return "edit"
	case ContextScript:
		return "script"
	case ContextStream:
		return "stream"
	default:
		return "unknown"
	}
}

// SplitterOptions is the full configuration handed to the statement
// splitter. It is resolved from a (dialect, usage context) pair and is
// immutable once resolved.
type SplitterOptions struct {
	// Delimiter terminates a statement at nesting depth zero; ";" everywhere
	// the sampled engines go
	Delimiter string

	// Line comments: -- is universal, # is dialect-gated
	DashComments bool
	HashComments bool
	// BlockComments enables /* ... */ (never nested)
	BlockComments bool

	// String/identifier lexing
	DoubleQuoteStrings  bool
	BacktickIdentifiers bool
	BracketIdentifiers  bool
	DollarQuoting       bool
	BackslashEscapes    bool

	// BatchSeparator, when non-empty, is matched case-insensitively alone on
	// its own line at depth zero. It produces a boundary but is not part of
	// any emitted statement.
	BatchSeparator string

	// NoSplit returns the entire input as a single statement, skipping the
	// scanner entirely.
	NoSplit bool
}

// Statement is one emitted statement unit.
type Statement struct {
	// Text is the statement text, delimiter excluded.
	Text string
	// Complete is false only when input ended inside an unterminated string,
	// comment, identifier or parenthesis. The text is still returned so the
	// caller can decide whether to proceed.
	Complete bool
}
