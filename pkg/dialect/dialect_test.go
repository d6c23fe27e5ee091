package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coxery/dbgate/pkg/core"
)

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		quote    string
		quoteEnd string
		escape   string
		in       string
		want     string
	}{
		{"ansi", `"`, `"`, `""`, "user", `"user"`},
		{"ansi embedded quote", `"`, `"`, `""`, `we"ird`, `"we""ird"`},
		{"backtick", "`", "`", "``", "order", "`order`"},
		{"bracket", "[", "]", "]]", "group", "[group]"},
		{"bracket embedded end", "[", "]", "]]", "we]ird", "[we]]ird]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDialect("test").Identifiers(tt.quote, tt.quoteEnd, tt.escape).Build()
			assert.Equal(t, tt.want, d.QuoteIdentifier(tt.in))
		})
	}
}

func TestEscapeString(t *testing.T) {
	t.Run("quote doubling", func(t *testing.T) {
		d := NewDialect("test").StringEscape(`'`).Build()
		assert.Equal(t, `it''s`, d.EscapeString(`it's`))
		assert.Equal(t, `'it''s'`, d.QuoteString(`it's`))
	})

	t.Run("backslash", func(t *testing.T) {
		d := NewDialect("test").StringEscape(`\`).Build()
		assert.Equal(t, `it\'s a \\`, d.EscapeString(`it's a \`))
	})
}

func TestSupports(t *testing.T) {
	d := NewDialect("test").Capabilities(core.Capabilities{
		CreateColumn: true,
		DropColumn:   true,
	}).Build()

	assert.True(t, d.Supports(core.OpCreateColumn))
	assert.True(t, d.Supports(core.OpDropColumn))
	assert.False(t, d.Supports(core.OpCreateForeignKey))
	assert.False(t, d.Supports(core.OpExplicitDropConstraint))
}

func TestSplitterOptionsResolution(t *testing.T) {
	d := NewDialect("test").
		Splitter(core.SplitterConfig{
			BracketIdentifiers: true,
			BatchSeparator:     "GO",
		}).
		Build()

	t.Run("stream is always no-split", func(t *testing.T) {
		opts := d.SplitterOptions(core.ContextStream)
		assert.True(t, opts.NoSplit)
	})

	t.Run("edit uses the dialect's normal configuration", func(t *testing.T) {
		opts := d.SplitterOptions(core.ContextEdit)
		assert.False(t, opts.NoSplit)
		assert.Equal(t, ";", opts.Delimiter)
		assert.True(t, opts.BracketIdentifiers)
		assert.Equal(t, "GO", opts.BatchSeparator)
	})

	t.Run("script resolves like edit", func(t *testing.T) {
		assert.Equal(t, d.SplitterOptions(core.ContextEdit), d.SplitterOptions(core.ContextScript))
	})
}

func TestRegistry(t *testing.T) {
	d := NewDialect("registrytest").Title("Registry Test").Build()
	Register(d)

	got, ok := Get("registrytest")
	require.True(t, ok)
	assert.Equal(t, "Registry Test", got.Title())

	// lookup is case-insensitive
	_, ok = Get("RegistryTest")
	assert.True(t, ok)

	_, ok = Get("nosuchdialect")
	assert.False(t, ok)

	assert.Contains(t, List(), "registrytest")
}

func TestFallbackType(t *testing.T) {
	d := NewDialect("test").FallbackType("text").Build()
	assert.Equal(t, "text", d.FallbackType())
}
