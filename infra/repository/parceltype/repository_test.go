package parceltype

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/parcels/pkg/domain"
	repo "github.com/amirasaad/parcels/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (repo.ParcelTypeRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return New(db), mock
}

func TestRepository_List(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "parcel_types" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "clothing").
			AddRow(2, "electronics"))

	types, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.ParcelType{
		{ID: 1, Name: "clothing"},
		{ID: 2, Name: "electronics"},
	}, types)
}

func TestRepository_Get(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "parcel_types" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "misc"))

	pt, err := r.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "misc", pt.Name)
}

func TestRepository_GetNotFound(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "parcel_types"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := r.Get(context.Background(), 3)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_Count(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "parcel_types"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := r.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestRepository_CreateMany(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "parcel_types" (.+) VALUES (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectCommit()

	err := r.CreateMany(context.Background(), []domain.ParcelType{
		{ID: 1, Name: "clothing"},
		{ID: 2, Name: "electronics"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	require.NoError(t, r.CreateMany(context.Background(), nil))
}
