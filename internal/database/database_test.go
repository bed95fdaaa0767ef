package database

import (
	"testing"

	"github.com/coopebred/registro-socios/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_SQLiteWithMigration(t *testing.T) {
	db, err := Connect(config.StoreConfig{
		Driver:       config.DriverSQLite,
		SQLitePath:   ":memory:",
		RunMigration: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	assert.True(t, db.Migrator().HasTable("SocioIndividual"))
	assert.True(t, db.Migrator().HasTable("SocioEmpresa"))
}

func TestConnect_SQLiteWithoutMigration(t *testing.T) {
	db, err := Connect(config.StoreConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	assert.False(t, db.Migrator().HasTable("SocioIndividual"))
}

func TestConnect_RESTDriverRejected(t *testing.T) {
	_, err := Connect(config.StoreConfig{Driver: config.DriverREST})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not use a database connection")
}
