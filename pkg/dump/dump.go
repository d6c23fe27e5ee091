// Package dump generates dialect-correct schema-change statements from
// abstract intents.
//
// Every operation checks the owning dialect's capability flag before
// emitting anything: an unsupported operation fails with
// UnsupportedOperationError and no text, never a degraded statement. The
// dumper is pure and stateless; the caller executes the returned text.
package dump

import (
	"strings"

	"github.com/coxery/dbgate/pkg/core"
	"github.com/coxery/dbgate/pkg/dialect"
)

// Dumper renders schema-change intents as SQL text for one dialect.
type Dumper struct {
	d *dialect.Dialect
}

// New creates a dumper bound to a dialect.
func New(d *dialect.Dialect) *Dumper {
	return &Dumper{d: d}
}

// Dialect returns the dialect this dumper emits for.
func (dm *Dumper) Dialect() *dialect.Dialect {
	return dm.d
}

// gate returns the typed error for an unsupported operation.
func (dm *Dumper) gate(op core.Operation) error {
	if dm.d.Supports(op) {
		return nil
	}
	return &UnsupportedOperationError{Dialect: dm.d.Name(), Operation: op}
}

// AddColumn emits an ALTER TABLE statement adding a column. An empty data
// type falls back to the dialect's fallback type. Default is a raw SQL
// expression supplied by the caller.
func (dm *Dumper) AddColumn(col core.Column) (string, error) {
	if err := dm.gate(core.OpCreateColumn); err != nil {
		return "", err
	}
	dataType := col.DataType
	if dataType == "" {
		dataType = dm.d.FallbackType()
	}

	var b strings.Builder
	b.WriteString("ALTER TABLE ")
	b.WriteString(dm.d.QuoteIdentifier(col.Table))
	if dm.d.DDL().OmitAddColumnKeyword {
		b.WriteString(" ADD ")
	} else {
		b.WriteString(" ADD COLUMN ")
	}
	b.WriteString(dm.d.QuoteIdentifier(col.Name))
	b.WriteString(" ")
	b.WriteString(dataType)
	if col.NotNull {
		b.WriteString(" NOT NULL")
	}
	if col.Default != "" {
		b.WriteString(" DEFAULT ")
		b.WriteString(col.Default)
	}
	return b.String(), nil
}

// CreateIndex emits a CREATE INDEX statement.
func (dm *Dumper) CreateIndex(ix core.Index) (string, error) {
	if err := dm.gate(core.OpCreateIndex); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("CREATE ")
	if ix.Unique {
		b.WriteString("UNIQUE ")
	}
	b.WriteString("INDEX ")
	b.WriteString(dm.d.QuoteIdentifier(ix.Name))
	b.WriteString(" ON ")
	b.WriteString(dm.d.QuoteIdentifier(ix.Table))
	b.WriteString(" (")
	b.WriteString(dm.columnList(ix.Columns))
	b.WriteString(")")
	return b.String(), nil
}

// DropIndex emits a DROP INDEX statement. Engines whose DDL style demands
// it get the ON table form.
func (dm *Dumper) DropIndex(ix core.Index) (string, error) {
	if err := dm.gate(core.OpDropIndex); err != nil {
		return "", err
	}
	text := "DROP INDEX " + dm.d.QuoteIdentifier(ix.Name)
	if dm.d.DDL().DropIndexOnTable {
		text += " ON " + dm.d.QuoteIdentifier(ix.Table)
	}
	return text, nil
}

// CreateForeignKey emits an ALTER TABLE ... ADD CONSTRAINT ... FOREIGN KEY
// statement.
func (dm *Dumper) CreateForeignKey(fk core.ForeignKey) (string, error) {
	if err := dm.gate(core.OpCreateForeignKey); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("ALTER TABLE ")
	b.WriteString(dm.d.QuoteIdentifier(fk.Table))
	b.WriteString(" ADD CONSTRAINT ")
	b.WriteString(dm.d.QuoteIdentifier(fk.Name))
	b.WriteString(" FOREIGN KEY (")
	b.WriteString(dm.columnList(fk.Columns))
	b.WriteString(") REFERENCES ")
	b.WriteString(dm.d.QuoteIdentifier(fk.RefTable))
	b.WriteString(" (")
	b.WriteString(dm.columnList(fk.RefColumns))
	b.WriteString(")")
	return b.String(), nil
}

// DropForeignKey emits the dialect's foreign key drop. Dialects with
// explicit constraint drops use DROP CONSTRAINT; the rest use the typed
// DROP FOREIGN KEY form.
func (dm *Dumper) DropForeignKey(fk core.ForeignKey) (string, error) {
	if err := dm.gate(core.OpDropForeignKey); err != nil {
		return "", err
	}
	if dm.d.Supports(core.OpExplicitDropConstraint) {
		return "ALTER TABLE " + dm.d.QuoteIdentifier(fk.Table) +
			" DROP CONSTRAINT " + dm.d.QuoteIdentifier(fk.Name), nil
	}
	return "ALTER TABLE " + dm.d.QuoteIdentifier(fk.Table) +
		" DROP FOREIGN KEY " + dm.d.QuoteIdentifier(fk.Name), nil
}

// CreatePrimaryKey emits an ALTER TABLE ... ADD PRIMARY KEY statement,
// named when the intent carries a constraint name.
func (dm *Dumper) CreatePrimaryKey(pk core.PrimaryKey) (string, error) {
	if err := dm.gate(core.OpCreatePrimaryKey); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("ALTER TABLE ")
	b.WriteString(dm.d.QuoteIdentifier(pk.Table))
	if pk.Name != "" {
		b.WriteString(" ADD CONSTRAINT ")
		b.WriteString(dm.d.QuoteIdentifier(pk.Name))
		b.WriteString(" PRIMARY KEY (")
	} else {
		b.WriteString(" ADD PRIMARY KEY (")
	}
	b.WriteString(dm.columnList(pk.Columns))
	b.WriteString(")")
	return b.String(), nil
}

// DropPrimaryKey emits the dialect's primary key drop.
func (dm *Dumper) DropPrimaryKey(pk core.PrimaryKey) (string, error) {
	if err := dm.gate(core.OpDropPrimaryKey); err != nil {
		return "", err
	}
	if dm.d.Supports(core.OpExplicitDropConstraint) {
		return "ALTER TABLE " + dm.d.QuoteIdentifier(pk.Table) +
			" DROP CONSTRAINT " + dm.d.QuoteIdentifier(pk.Name), nil
	}
	return "ALTER TABLE " + dm.d.QuoteIdentifier(pk.Table) + " DROP PRIMARY KEY", nil
}

// DropConstraint emits a generic ALTER TABLE ... DROP CONSTRAINT. Only
// dialects with the explicitDropConstraint capability support it; the rest
// must use the typed drops.
func (dm *Dumper) DropConstraint(cn core.Constraint) (string, error) {
	if err := dm.gate(core.OpExplicitDropConstraint); err != nil {
		return "", err
	}
	return "ALTER TABLE " + dm.d.QuoteIdentifier(cn.Table) +
		" DROP CONSTRAINT " + dm.d.QuoteIdentifier(cn.Name), nil
}

// DropColumn emits the ordered statement sequence dropping a column. For
// each dependent-object kind in the dialect's DropColumnDependencies list
// (in declared order), drops for the dependents present in the intent's
// inventory come first; the column drop is always last. The caller must
// execute the sequence in this exact order.
//
// A nil inventory on a dialect that declares dependencies fails with
// InvalidDependencyStateError. Any failure returns no statements at all.
func (dm *Dumper) DropColumn(dc core.DropColumn) ([]string, error) {
	if err := dm.gate(core.OpDropColumn); err != nil {
		return nil, err
	}
	kinds := dm.d.DropColumnDependencies()
	if len(kinds) > 0 && dc.Dependencies == nil {
		return nil, &InvalidDependencyStateError{
			Dialect: dm.d.Name(),
			Table:   dc.Table,
			Column:  dc.Name,
		}
	}

	var stmts []string
	for _, kind := range kinds {
		switch kind {
		case core.DepIndexes:
			for _, ix := range dc.Dependencies.Indexes {
				text, err := dm.DropIndex(ix)
				if err != nil {
					return nil, err
				}
				stmts = append(stmts, text)
			}
		case core.DepForeignKeys:
			for _, fk := range dc.Dependencies.ForeignKeys {
				text, err := dm.DropForeignKey(fk)
				if err != nil {
					return nil, err
				}
				stmts = append(stmts, text)
			}
		case core.DepPrimaryKey:
			if pk := dc.Dependencies.PrimaryKey; pk != nil {
				text, err := dm.DropPrimaryKey(*pk)
				if err != nil {
					return nil, err
				}
				stmts = append(stmts, text)
			}
		case core.DepConstraints:
			for _, cn := range dc.Dependencies.Constraints {
				text, err := dm.DropConstraint(cn)
				if err != nil {
					return nil, err
				}
				stmts = append(stmts, text)
			}
		}
	}

	stmts = append(stmts, "ALTER TABLE "+dm.d.QuoteIdentifier(dc.Table)+
		" DROP COLUMN "+dm.d.QuoteIdentifier(dc.Name))
	return stmts, nil
}

// columnList renders a quoted, comma-separated column list.
func (dm *Dumper) columnList(cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = dm.d.QuoteIdentifier(c)
	}
	return strings.Join(quoted, ", ")
}
