package core

// Operation identifies a dialect capability that a caller may query or a
// dumper may gate on. Query-shaping capabilities (limit/range) and DDL
// operations share one enum so Capabilities.Has covers both.
type Operation int

const (
	// OpLimitSelect means the dialect supports LIMIT-style row capping.
	OpLimitSelect Operation = iota
	// OpRangeSelect means the dialect supports LIMIT/OFFSET-style ranges.
	OpRangeSelect
	// OpOffsetFetchRangeSyntax means ranges use OFFSET ... FETCH NEXT syntax.
	OpOffsetFetchRangeSyntax
	// OpExplicitDropConstraint means ALTER TABLE ... DROP CONSTRAINT works for
	// any constraint kind, without naming the kind.
	OpExplicitDropConstraint
	// OpCreateColumn means ALTER TABLE ... ADD COLUMN is supported.
	OpCreateColumn
	// OpDropColumn means ALTER TABLE ... DROP COLUMN is supported.
	OpDropColumn
	// OpCreateIndex means CREATE INDEX is supported.
	OpCreateIndex
	// OpDropIndex means DROP INDEX is supported.
	OpDropIndex
	// OpCreateForeignKey means adding a foreign key constraint is supported.
	OpCreateForeignKey
	// OpDropForeignKey means dropping a foreign key constraint is supported.
	OpDropForeignKey
	// OpCreatePrimaryKey means adding a primary key constraint is supported.
	OpCreatePrimaryKey
	// OpDropPrimaryKey means dropping a primary key constraint is supported.
	OpDropPrimaryKey
)

// String returns the camelCase capability name used in configuration files
// and error messages.
func (op Operation) String() string {
	switch op {
	case OpLimitSelect:
		return "limitSelect"
	case OpRangeSelect:
		return "rangeSelect"
	case OpOffsetFetchRangeSyntax:
		return "offsetFetchRangeSyntax"
	case OpExplicitDropConstraint:
		return "explicitDropConstraint"
	case OpCreateColumn:
		return "createColumn"
	case OpDropColumn:
		return "dropColumn"
	case OpCreateIndex:
		return "createIndex"
	case OpDropIndex:
		return "dropIndex"
	case OpCreateForeignKey:
		return "createForeignKey"
	case OpDropForeignKey:
		return "dropForeignKey"
	case OpCreatePrimaryKey:
		return "createPrimaryKey"
	case OpDropPrimaryKey:
		return "dropPrimaryKey"
	default:
		return "unknown"
	}
}

// Capabilities is the per-dialect capability table. One named flag per
// Operation; zero value means unsupported.
type Capabilities struct {
	LimitSelect            bool
	RangeSelect            bool
	OffsetFetchRangeSyntax bool
	ExplicitDropConstraint bool
	CreateColumn           bool
	DropColumn             bool
	CreateIndex            bool
	DropIndex              bool
	CreateForeignKey       bool
	DropForeignKey         bool
	CreatePrimaryKey       bool
	DropPrimaryKey         bool
}

// Has reports whether the capability flag for op is set.
func (c Capabilities) Has(op Operation) bool {
	switch op {
	case OpLimitSelect:
		return c.LimitSelect
	case OpRangeSelect:
		return c.RangeSelect
	case OpOffsetFetchRangeSyntax:
		return c.OffsetFetchRangeSyntax
	case OpExplicitDropConstraint:
		return c.ExplicitDropConstraint
	case OpCreateColumn:
		return c.CreateColumn
	case OpDropColumn:
		return c.DropColumn
	case OpCreateIndex:
		return c.CreateIndex
	case OpDropIndex:
		return c.DropIndex
	case OpCreateForeignKey:
		return c.CreateForeignKey
	case OpDropForeignKey:
		return c.DropForeignKey
	case OpCreatePrimaryKey:
		return c.CreatePrimaryKey
	case OpDropPrimaryKey:
		return c.DropPrimaryKey
	default:
		return false
	}
}

// DependencyKind names a dependent-object category that must be dropped
// before a column. The order in DialectConfig.DropColumnDependencies is
// authoritative for emission order.
type DependencyKind int

const (
	// DepIndexes covers plain and unique indexes referencing the column.
	DepIndexes DependencyKind = iota
	// DepForeignKeys covers foreign keys whose local columns include the column.
	DepForeignKeys
	// DepPrimaryKey covers a primary key the column participates in.
	DepPrimaryKey
	// DepConstraints covers other named constraints (check, default, unique).
	DepConstraints
)

// String returns the configuration-file name of the dependency kind.
func (k DependencyKind) String() string {
	switch k {
	case DepIndexes:
		return "indexes"
	case DepForeignKeys:
		return "foreignKeys"
	case DepPrimaryKey:
		return "primaryKey"
	case DepConstraints:
		return "constraints"
	default:
		return "unknown"
	}
}
