package database

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	script, err := migrations.ReadFile(names[0])
	require.NoError(t, err)
	assert.Contains(t, string(script), "create table if not exists events")
}

func TestPSQLPlaceholders(t *testing.T) {
	sql, args, err := PSQL.Delete(EventsTable).Where("id = ?", "x").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM events WHERE id = $1", sql)
	assert.Equal(t, []interface{}{"x"}, args)
}
