package infra

import (
	"io/fs"
	"testing"

	"github.com/amirasaad/parcels/internal/migrations"
	"github.com/amirasaad/parcels/pkg/config"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	assert.Contains(t, files, "000001_create_parcels.up.sql")
	assert.Contains(t, files, "000001_create_parcels.down.sql")

	src, err := iofs.New(migrations.FS, ".")
	require.NoError(t, err)
	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)
}

func TestNewDBConnection_MissingURL(t *testing.T) {
	t.Parallel()

	_, err := NewDBConnection(&config.DB{}, "test")
	require.Error(t, err)

	_, err = NewDBConnection(nil, "test")
	require.Error(t, err)
}
