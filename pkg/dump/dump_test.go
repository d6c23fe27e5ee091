package dump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coxery/dbgate/pkg/core"
	"github.com/coxery/dbgate/pkg/dialect"
	"github.com/coxery/dbgate/pkg/dialects/mysql"
	"github.com/coxery/dbgate/pkg/dialects/postgres"
	"github.com/coxery/dbgate/pkg/dialects/sqlite"
	"github.com/coxery/dbgate/pkg/dialects/sqlserver"
)

func TestAddColumn(t *testing.T) {
	tests := []struct {
		name string
		d    *dialect.Dialect
		col  core.Column
		want string
	}{
		{
			name: "postgres",
			d:    postgres.Postgres,
			col:  core.Column{Table: "users", Name: "age", DataType: "integer", NotNull: true, Default: "0"},
			want: `ALTER TABLE "users" ADD COLUMN "age" integer NOT NULL DEFAULT 0`,
		},
		{
			name: "sqlserver omits COLUMN keyword",
			d:    sqlserver.SQLServer,
			col:  core.Column{Table: "users", Name: "age", DataType: "int"},
			want: "ALTER TABLE [users] ADD [age] int",
		},
		{
			name: "mysql fallback type",
			d:    mysql.MySQL,
			col:  core.Column{Table: "users", Name: "nick"},
			want: "ALTER TABLE `users` ADD COLUMN `nick` varchar(255)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.d).AddColumn(tt.col)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateIndex(t *testing.T) {
	got, err := New(postgres.Postgres).CreateIndex(core.Index{
		Table:   "users",
		Name:    "ix_users_email",
		Columns: []string{"email", "tenant"},
		Unique:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, `CREATE UNIQUE INDEX "ix_users_email" ON "users" ("email", "tenant")`, got)
}

func TestDropIndex(t *testing.T) {
	t.Run("postgres bare form", func(t *testing.T) {
		got, err := New(postgres.Postgres).DropIndex(core.Index{Table: "users", Name: "ix_users_email"})
		require.NoError(t, err)
		assert.Equal(t, `DROP INDEX "ix_users_email"`, got)
	})

	t.Run("mysql on-table form", func(t *testing.T) {
		got, err := New(mysql.MySQL).DropIndex(core.Index{Table: "users", Name: "ix_users_email"})
		require.NoError(t, err)
		assert.Equal(t, "DROP INDEX `ix_users_email` ON `users`", got)
	})
}

func TestCreateForeignKey(t *testing.T) {
	got, err := New(postgres.Postgres).CreateForeignKey(core.ForeignKey{
		Table:      "orders",
		Name:       "fk_orders_user",
		Columns:    []string{"user_id"},
		RefTable:   "users",
		RefColumns: []string{"id"},
	})
	require.NoError(t, err)
	assert.Equal(t, `ALTER TABLE "orders" ADD CONSTRAINT "fk_orders_user" FOREIGN KEY ("user_id") REFERENCES "users" ("id")`, got)
}

func TestCreateForeignKeyUnsupported(t *testing.T) {
	got, err := New(sqlite.SQLite).CreateForeignKey(core.ForeignKey{Table: "orders", Name: "fk"})
	assert.Empty(t, got)

	var uoe *UnsupportedOperationError
	require.ErrorAs(t, err, &uoe)
	assert.Equal(t, "sqlite", uoe.Dialect)
	assert.Equal(t, core.OpCreateForeignKey, uoe.Operation)
}

func TestDropForeignKey(t *testing.T) {
	t.Run("mysql typed drop", func(t *testing.T) {
		got, err := New(mysql.MySQL).DropForeignKey(core.ForeignKey{Table: "orders", Name: "fk_orders_user"})
		require.NoError(t, err)
		assert.Equal(t, "ALTER TABLE `orders` DROP FOREIGN KEY `fk_orders_user`", got)
	})

	t.Run("postgres constraint drop", func(t *testing.T) {
		got, err := New(postgres.Postgres).DropForeignKey(core.ForeignKey{Table: "orders", Name: "fk_orders_user"})
		require.NoError(t, err)
		assert.Equal(t, `ALTER TABLE "orders" DROP CONSTRAINT "fk_orders_user"`, got)
	})
}

func TestDropPrimaryKey(t *testing.T) {
	t.Run("mysql unnamed", func(t *testing.T) {
		got, err := New(mysql.MySQL).DropPrimaryKey(core.PrimaryKey{Table: "users", Name: "pk_users"})
		require.NoError(t, err)
		assert.Equal(t, "ALTER TABLE `users` DROP PRIMARY KEY", got)
	})

	t.Run("sqlserver named", func(t *testing.T) {
		got, err := New(sqlserver.SQLServer).DropPrimaryKey(core.PrimaryKey{Table: "users", Name: "pk_users"})
		require.NoError(t, err)
		assert.Equal(t, "ALTER TABLE [users] DROP CONSTRAINT [pk_users]", got)
	})
}

func TestDropConstraint(t *testing.T) {
	t.Run("supported", func(t *testing.T) {
		got, err := New(sqlserver.SQLServer).DropConstraint(core.Constraint{Table: "users", Name: "df_users_age"})
		require.NoError(t, err)
		assert.Equal(t, "ALTER TABLE [users] DROP CONSTRAINT [df_users_age]", got)
	})

	t.Run("mysql has no generic drop", func(t *testing.T) {
		_, err := New(mysql.MySQL).DropConstraint(core.Constraint{Table: "users", Name: "c"})
		var uoe *UnsupportedOperationError
		require.ErrorAs(t, err, &uoe)
	})
}

// allCaps enables every operation for dependency-ordering tests.
var allCaps = core.Capabilities{
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
}

func TestDropColumnDependencyOrder(t *testing.T) {
	d := dialect.NewDialect("deptest").
		Capabilities(allCaps).
		DropColumnDependencies(core.DepIndexes, core.DepPrimaryKey).
		Build()

	stmts, err := New(d).DropColumn(core.DropColumn{
		Table: "t",
		Name:  "c",
		Dependencies: &core.ColumnDependencies{
			Indexes:    []core.Index{{Table: "t", Name: "ix_c", Columns: []string{"c"}}},
			PrimaryKey: &core.PrimaryKey{Table: "t", Name: "pk_t", Columns: []string{"c"}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		`DROP INDEX "ix_c"`,
		`ALTER TABLE "t" DROP CONSTRAINT "pk_t"`,
		`ALTER TABLE "t" DROP COLUMN "c"`,
	}, stmts)
}

func TestDropColumnDeclaredOrderWins(t *testing.T) {
	// Same inventory, reversed declaration: the declared order is authoritative.
	d := dialect.NewDialect("deptest2").
		Capabilities(allCaps).
		DropColumnDependencies(core.DepPrimaryKey, core.DepIndexes).
		Build()

	stmts, err := New(d).DropColumn(core.DropColumn{
		Table: "t",
		Name:  "c",
		Dependencies: &core.ColumnDependencies{
			Indexes:    []core.Index{{Table: "t", Name: "ix_c"}},
			PrimaryKey: &core.PrimaryKey{Table: "t", Name: "pk_t"},
		},
	})
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	assert.Contains(t, stmts[0], "pk_t")
	assert.Contains(t, stmts[1], "ix_c")
}

func TestDropColumnMissingInventory(t *testing.T) {
	// MySQL declares foreign key dependencies, so a nil inventory is an error.
	_, err := New(mysql.MySQL).DropColumn(core.DropColumn{Table: "users", Name: "tenant_id"})

	var ids *InvalidDependencyStateError
	require.ErrorAs(t, err, &ids)
	assert.Equal(t, "mysql", ids.Dialect)
	assert.Equal(t, "tenant_id", ids.Column)
}

func TestDropColumnNoDeclaredDependencies(t *testing.T) {
	// Postgres declares none; a nil inventory is fine and only the column
	// drop is emitted.
	stmts, err := New(postgres.Postgres).DropColumn(core.DropColumn{Table: "users", Name: "age"})
	require.NoError(t, err)
	require.Equal(t, []string{`ALTER TABLE "users" DROP COLUMN "age"`}, stmts)
}

func TestDropColumnEmptyInventory(t *testing.T) {
	stmts, err := New(mysql.MySQL).DropColumn(core.DropColumn{
		Table:        "users",
		Name:         "age",
		Dependencies: &core.ColumnDependencies{},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"ALTER TABLE `users` DROP COLUMN `age`"}, stmts)
}

func TestDropColumnUnsupported(t *testing.T) {
	d := dialect.NewDialect("nocaps").Build()
	stmts, err := New(d).DropColumn(core.DropColumn{Table: "t", Name: "c"})
	assert.Nil(t, stmts)

	var uoe *UnsupportedOperationError
	require.ErrorAs(t, err, &uoe)
	assert.Equal(t, core.OpDropColumn, uoe.Operation)
}

func TestQuotingInEmittedText(t *testing.T) {
	got, err := New(sqlserver.SQLServer).AddColumn(core.Column{Table: "we]ird", Name: "col"})
	require.NoError(t, err)
	assert.Equal(t, "ALTER TABLE [we]]ird] ADD [col] nvarchar(max)", got)
}
