// Package splitter divides SQL script text into individually executable
// statements.
//
// The splitter does not parse SQL. It tracks just enough lexical context
// (strings, comments, quoted identifiers, dollar-quoted bodies, parenthesis
// depth) to know when a statement delimiter really terminates a statement,
// and when a batch separator line marks a script boundary. Everything else
// in the input passes through untouched, so concatenating the emitted
// statements with their delimiters reconstructs the original text.
// The one exception: whitespace-only spans (between consecutive delimiters,
// or trailing after the last one) produce no statement and are not
// reconstructable.
//
// Split handles a full buffer in one call. Stream accepts arbitrarily
// chunked input and emits statements as their boundaries are recognized;
// both share one scanner, so any chunking of the same input produces the
// same statement sequence.
package splitter

import (
	"strings"
	"unicode/utf8"

	"github.com/coxery/dbgate/pkg/core"
)

// Split produces the statement sequence covering text. Deterministic:
// identical (text, options) always yields an identical sequence.
// Whitespace-only spans are dropped, so there is no statement for trailing
// whitespace after the final delimiter.
//
// When options.NoSplit is set the whole input is returned as one complete
// statement, whatever it contains.
func Split(text string, opts core.SplitterOptions) []core.Statement {
	if opts.NoSplit {
		return []core.Statement{{Text: text, Complete: true}}
	}
	s := NewStream(opts)
	out := s.Feed(text)
	if last, ok := s.Finish(); ok {
		out = append(out, last)
	}
	return out
}

// state is the scanner's lexical context. Held lookahead (a lone '-' that
// may start a comment, a '$' that may open a dollar quote) is modeled as
// its own state so that chunk boundaries can fall anywhere.
type state int

const (
	stDefault state = iota
	stLineComment
	stBlockComment
	stBlockCommentStar // saw '*' inside a block comment
	stSingleQuote
	stSingleQuoteEscape // after the escape character inside '...'
	stSingleQuoteMaybe  // after a quote that may be the end or half of ''
	stDoubleQuote
	stDoubleQuoteEscape
	stDoubleQuoteMaybe
	stBacktick
	stBacktickMaybe
	stBracket
	stBracketMaybe
	stDollarOpen  // after '$', reading a candidate opening tag
	stDollar      // inside $tag$ ... $tag$
	stDollarClose // inside a dollar body, matching a candidate closing tag
	stDash        // held '-' that may start a line comment
	stSlash       // held '/' that may start a block comment
)

// Stream is a stateful splitting session over chunked input. It is owned by
// exactly one caller; a fresh Stream is required per script.
type Stream struct {
	opts  core.SplitterOptions
	delim []rune

	st    state
	depth int // parenthesis nesting

	buf        []byte // current statement text
	lineStart  int    // offset in buf where the current input line began
	sepAllowed bool   // current line saw no statement boundary yet

	dollarTag    string // tag of the open dollar quote
	tagBuf       []byte // candidate opening/closing tag runes
	delimMatched int    // runes of a multi-rune delimiter matched so far
	partial      []byte // trailing bytes of an incomplete UTF-8 rune

	done bool
}

// NewStream creates a splitting session for one script. An empty delimiter
// defaults to ";".
func NewStream(opts core.SplitterOptions) *Stream {
	delim := opts.Delimiter
	if delim == "" {
		delim = ";"
	}
	return &Stream{
		opts:       opts,
		delim:      []rune(delim),
		sepAllowed: true,
	}
}

// Feed consumes the next chunk of input and returns the statements whose
// boundaries were recognized within it. The chunk may end anywhere,
// including inside a multi-byte rune.
func (s *Stream) Feed(chunk string) []core.Statement {
	if s.done {
		return nil
	}
	if s.opts.NoSplit {
		s.buf = append(s.buf, chunk...)
		return nil
	}

	data := chunk
	if len(s.partial) > 0 {
		data = string(s.partial) + chunk
		s.partial = s.partial[:0]
	}

	var out []core.Statement
	for i := 0; i < len(data); {
		if !utf8.FullRuneInString(data[i:]) {
			s.partial = append(s.partial, data[i:]...)
			break
		}
		r, size := utf8.DecodeRuneInString(data[i:])
		if r == utf8.RuneError && size == 1 {
			// Invalid byte: pass through as content, it cannot be syntax.
			s.buf = append(s.buf, data[i])
			i++
			continue
		}
		s.step(r, &out)
		i += size
	}
	return out
}

// Finish flushes the trailing partial statement, if any. The returned
// statement has Complete=false when input ended inside an unterminated
// string, comment, quoted identifier or open parenthesis.
func (s *Stream) Finish() (core.Statement, bool) {
	if s.done {
		return core.Statement{}, false
	}
	s.done = true
	s.buf = append(s.buf, s.partial...)
	s.partial = nil

	if s.opts.NoSplit {
		return core.Statement{Text: string(s.buf), Complete: true}, true
	}

	// Resolve held lookahead: at end of input it is plain content.
	switch s.st {
	case stDash:
		s.buf = append(s.buf, '-')
		s.st = stDefault
	case stSlash:
		s.buf = append(s.buf, '/')
		s.st = stDefault
	case stDollarOpen:
		s.buf = append(s.buf, '$')
		s.buf = append(s.buf, s.tagBuf...)
		s.st = stDefault
	case stDollarClose:
		s.buf = append(s.buf, '$')
		s.buf = append(s.buf, s.tagBuf...)
		s.st = stDollar
	case stSingleQuoteMaybe, stDoubleQuoteMaybe, stBacktickMaybe, stBracketMaybe:
		// The candidate end quote really was the end.
		s.st = stDefault
	case stLineComment:
		// A line comment is terminated by end of input.
		s.st = stDefault
	}
	if s.delimMatched > 0 {
		for _, r := range s.delim[:s.delimMatched] {
			s.buf = utf8.AppendRune(s.buf, r)
		}
		s.delimMatched = 0
	}

	// A trailing batch separator line without a final newline.
	if s.opts.BatchSeparator != "" && s.st == stDefault && s.depth == 0 && s.sepAllowed {
		line := strings.TrimSpace(string(s.buf[s.lineStart:]))
		if line != "" && strings.EqualFold(line, s.opts.BatchSeparator) {
			s.buf = s.buf[:s.lineStart]
		}
	}

	text := string(s.buf)
	complete := s.st == stDefault && s.depth == 0
	if complete && strings.TrimSpace(text) == "" {
		return core.Statement{}, false
	}
	return core.Statement{Text: text, Complete: complete}, true
}

// Abandon discards all buffered state without flushing a final statement.
// The stream cannot be used afterwards.
func (s *Stream) Abandon() {
	s.done = true
	s.buf = nil
	s.partial = nil
	s.tagBuf = nil
}

func (s *Stream) appendRune(c rune) {
	s.buf = utf8.AppendRune(s.buf, c)
}

// boundary finalizes the current statement at a delimiter or batch
// separator. Whitespace-only spans produce no statement.
func (s *Stream) boundary(out *[]core.Statement) {
	text := string(s.buf)
	if strings.TrimSpace(text) != "" {
		*out = append(*out, core.Statement{Text: text, Complete: true})
	}
	s.buf = s.buf[:0]
	s.lineStart = 0
}

// step advances the scanner by one rune. Held lookahead that turns out to
// be plain content is flushed and the rune reprocessed, so every rune is
// consumed in a well-defined state.
func (s *Stream) step(c rune, out *[]core.Statement) {
	for {
		switch s.st {

		case stDash:
			s.st = stDefault
			if c == '-' {
				s.buf = append(s.buf, '-', '-')
				s.st = stLineComment
				return
			}
			s.buf = append(s.buf, '-')
			continue

		case stSlash:
			s.st = stDefault
			if c == '*' {
				s.buf = append(s.buf, '/', '*')
				s.st = stBlockComment
				return
			}
			s.buf = append(s.buf, '/')
			continue

		case stLineComment:
			if c == '\n' {
				s.st = stDefault
				continue
			}
			s.appendRune(c)
			return

		case stBlockComment:
			if c == '*' {
				s.st = stBlockCommentStar
			}
			s.appendRune(c)
			return

		case stBlockCommentStar:
			switch c {
			case '/':
				s.st = stDefault
			case '*':
				// still a candidate end
			default:
				s.st = stBlockComment
			}
			s.appendRune(c)
			return

		case stSingleQuote:
			switch {
			case c == '\\' && s.opts.BackslashEscapes:
				s.st = stSingleQuoteEscape
			case c == '\'':
				s.st = stSingleQuoteMaybe
			}
			s.appendRune(c)
			return

		case stSingleQuoteEscape:
			s.st = stSingleQuote
			s.appendRune(c)
			return

		case stSingleQuoteMaybe:
			if c == '\'' {
				// doubled quote, still inside the literal
				s.st = stSingleQuote
				s.appendRune(c)
				return
			}
			s.st = stDefault
			continue

		case stDoubleQuote:
			switch {
			case c == '\\' && s.opts.BackslashEscapes && s.opts.DoubleQuoteStrings:
				s.st = stDoubleQuoteEscape
			case c == '"':
				s.st = stDoubleQuoteMaybe
			}
			s.appendRune(c)
			return

		case stDoubleQuoteEscape:
			s.st = stDoubleQuote
			s.appendRune(c)
			return

		case stDoubleQuoteMaybe:
			if c == '"' {
				s.st = stDoubleQuote
				s.appendRune(c)
				return
			}
			s.st = stDefault
			continue

		case stBacktick:
			if c == '`' {
				s.st = stBacktickMaybe
			}
			s.appendRune(c)
			return

		case stBacktickMaybe:
			if c == '`' {
				s.st = stBacktick
				s.appendRune(c)
				return
			}
			s.st = stDefault
			continue

		case stBracket:
			if c == ']' {
				s.st = stBracketMaybe
			}
			s.appendRune(c)
			return

		case stBracketMaybe:
			if c == ']' {
				// ]] is an escaped ] inside the identifier
				s.st = stBracket
				s.appendRune(c)
				return
			}
			s.st = stDefault
			continue

		case stDollarOpen:
			if c == '$' {
				s.dollarTag = string(s.tagBuf)
				s.buf = append(s.buf, '$')
				s.buf = append(s.buf, s.tagBuf...)
				s.buf = append(s.buf, '$')
				s.tagBuf = s.tagBuf[:0]
				s.st = stDollar
				return
			}
			if isTagRune(c) {
				s.tagBuf = utf8.AppendRune(s.tagBuf, c)
				return
			}
			// Not a dollar quote ($1 placeholders land here). Tag runes are
			// never syntax, so they flush straight into the statement.
			s.buf = append(s.buf, '$')
			s.buf = append(s.buf, s.tagBuf...)
			s.tagBuf = s.tagBuf[:0]
			s.st = stDefault
			continue

		case stDollar:
			if c == '$' {
				s.tagBuf = s.tagBuf[:0]
				s.st = stDollarClose
				return
			}
			s.appendRune(c)
			return

		case stDollarClose:
			if c == '$' && string(s.tagBuf) == s.dollarTag {
				s.buf = append(s.buf, '$')
				s.buf = append(s.buf, s.tagBuf...)
				s.buf = append(s.buf, '$')
				s.tagBuf = s.tagBuf[:0]
				s.dollarTag = ""
				s.st = stDefault
				return
			}
			if isTagRune(c) && strings.HasPrefix(s.dollarTag, string(s.tagBuf)+string(c)) {
				s.tagBuf = utf8.AppendRune(s.tagBuf, c)
				return
			}
			// Mismatch: the held '$' and tag runes are body content. The
			// current rune may itself start a new closing candidate.
			s.buf = append(s.buf, '$')
			s.buf = append(s.buf, s.tagBuf...)
			s.tagBuf = s.tagBuf[:0]
			s.st = stDollar
			continue

		default: // stDefault
			s.stepDefault(c, out)
			return
		}
	}
}

// stepDefault handles one rune in the default context.
func (s *Stream) stepDefault(c rune, out *[]core.Statement) {
	// Continue a partially matched multi-rune delimiter.
	if s.delimMatched > 0 {
		if c == s.delim[s.delimMatched] {
			s.delimMatched++
			if s.delimMatched == len(s.delim) {
				s.delimMatched = 0
				s.boundary(out)
				s.sepAllowed = false
			}
			return
		}
		for _, r := range s.delim[:s.delimMatched] {
			s.appendRune(r)
		}
		s.delimMatched = 0
		// fall through to process c normally
	}

	if c == '\n' {
		if s.opts.BatchSeparator != "" && s.depth == 0 && s.sepAllowed {
			line := strings.TrimSpace(string(s.buf[s.lineStart:]))
			if line != "" && strings.EqualFold(line, s.opts.BatchSeparator) {
				// The separator line belongs to neither statement.
				s.buf = s.buf[:s.lineStart]
				s.boundary(out)
				s.sepAllowed = true
				return
			}
		}
		s.appendRune(c)
		s.lineStart = len(s.buf)
		s.sepAllowed = true
		return
	}

	if s.depth == 0 && c == s.delim[0] {
		if len(s.delim) == 1 {
			s.boundary(out)
			s.sepAllowed = false
			return
		}
		s.delimMatched = 1
		return
	}

	switch {
	case c == '(':
		s.depth++
		s.appendRune(c)
	case c == ')':
		if s.depth > 0 {
			s.depth--
		}
		s.appendRune(c)
	case c == '\'':
		s.st = stSingleQuote
		s.appendRune(c)
	case c == '"':
		s.st = stDoubleQuote
		s.appendRune(c)
	case c == '`' && s.opts.BacktickIdentifiers:
		s.st = stBacktick
		s.appendRune(c)
	case c == '[' && s.opts.BracketIdentifiers:
		s.st = stBracket
		s.appendRune(c)
	case c == '$' && s.opts.DollarQuoting:
		s.tagBuf = s.tagBuf[:0]
		s.st = stDollarOpen
	case c == '-' && s.opts.DashComments:
		s.st = stDash
	case c == '/' && s.opts.BlockComments:
		s.st = stSlash
	case c == '#' && s.opts.HashComments:
		s.st = stLineComment
		s.appendRune(c)
	default:
		s.appendRune(c)
	}
}

// isTagRune reports whether c may appear in a dollar-quote tag.
func isTagRune(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_':
		return true
	}
	return false
}
