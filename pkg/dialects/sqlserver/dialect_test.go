package sqlserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coxery/dbgate/pkg/core"
	"github.com/coxery/dbgate/pkg/dialect"
	"github.com/coxery/dbgate/pkg/splitter"
)

func TestRegistered(t *testing.T) {
	d, ok := dialect.Get("sqlserver")
	require.True(t, ok)
	assert.Equal(t, "Microsoft SQL Server", d.Title())
}

func TestBracketQuoting(t *testing.T) {
	assert.Equal(t, "[order]", SQLServer.QuoteIdentifier("order"))
	assert.Equal(t, "[a]]b]", SQLServer.QuoteIdentifier("a]b"))
}

func TestScriptSplitting(t *testing.T) {
	opts := SQLServer.SplitterOptions(core.ContextScript)
	script := "CREATE TABLE [a;b] (x int)\nGO\nINSERT INTO [a;b] VALUES (1); INSERT INTO [a;b] VALUES (2)\nGO\n"

	stmts := splitter.Split(script, opts)
	require.Len(t, stmts, 3)
	assert.Equal(t, "CREATE TABLE [a;b] (x int)\n", stmts[0].Text)
	assert.Equal(t, "INSERT INTO [a;b] VALUES (1)", stmts[1].Text)
}

func TestEditHonorsBatchSeparator(t *testing.T) {
	opts := SQLServer.SplitterOptions(core.ContextEdit)
	stmts := splitter.Split("SELECT 1\nGO\nSELECT 2", opts)
	require.Len(t, stmts, 2)
	assert.Equal(t, "SELECT 1\n", stmts[0].Text)
	assert.Equal(t, "SELECT 2", stmts[1].Text)
}

func TestDropColumnDependencyDeclaration(t *testing.T) {
	assert.Equal(t,
		[]core.DependencyKind{core.DepConstraints, core.DepIndexes},
		SQLServer.DropColumnDependencies())
}
