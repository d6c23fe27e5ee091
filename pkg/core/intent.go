package core

// Schema-change intents are plain data records consumed by pkg/dump. Each
// dumper operation takes the variant it needs; there is no common interface
// to implement and nothing here validates against a dialect — capability
// gating happens in the dumper.

// Column describes a column to add or drop.
type Column struct {
	Table    string
	Name     string
	DataType string // empty means the dialect's fallback type
	NotNull  bool
	Default  string // literal default value, empty means none
}

// Index describes a secondary index.
type Index struct {
	Table   string
	Name    string
	Columns []string
	Unique  bool
}

// ForeignKey describes a foreign key constraint.
type ForeignKey struct {
	Table      string
	Name       string
	Columns    []string
	RefTable   string
	RefColumns []string
}

// PrimaryKey describes a primary key constraint.
type PrimaryKey struct {
	Table   string
	Name    string
	Columns []string
}

// Constraint names an arbitrary constraint for generic drops.
type Constraint struct {
	Table string
	Name  string
}

// ColumnDependencies is the caller-discovered inventory of objects that
// depend on a column being dropped. The dumper consults it in the order
// declared by the dialect's DropColumnDependencies list. A nil inventory on
// a dialect that declares dependencies is an error; an empty one means the
// column is known to have no dependents.
type ColumnDependencies struct {
	Indexes     []Index
	ForeignKeys []ForeignKey
	PrimaryKey  *PrimaryKey
	Constraints []Constraint
}

// DropColumn describes a column drop together with its dependency inventory.
type DropColumn struct {
	Table        string
	Name         string
	Dependencies *ColumnDependencies
}
