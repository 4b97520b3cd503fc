package parcel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/parcels/pkg/domain"
	repo "github.com/amirasaad/parcels/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var viewColumns = []string{
	"id", "session_id", "name", "weight", "content_value",
	"parcel_type_id", "delivery_cost", "created_at", "updated_at", "parcel_type",
}

func newMockRepo(t *testing.T) (repo.ParcelRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return New(db), mock
}

func TestRepository_Create(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)

	p, err := domain.NewParcel("sess-1", "Books", 2, 100, 1)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "parcels" (.+) VALUES (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	require.NoError(t, r.Create(context.Background(), p))
	assert.Equal(t, int64(42), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateError(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)

	p, err := domain.NewParcel("sess-1", "Books", 2, 100, 1)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "parcels"`).WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	require.Error(t, r.Create(context.Background(), p))
	assert.Zero(t, p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT parcels\.\*, COALESCE\(parcel_types\.name, \$1\) AS parcel_type FROM "parcels" LEFT JOIN parcel_types ON parcel_types\.id = parcels\.parcel_type_id WHERE parcels\.id = \$2`).
		WillReturnRows(sqlmock.NewRows(viewColumns).
			AddRow(7, "sess-1", "Books", 2.0, 100.0, 1, 180.0, now, now, "clothing"))

	view, err := r.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), view.ID)
	assert.Equal(t, "sess-1", view.SessionID)
	assert.Equal(t, "clothing", view.ParcelType)
	require.NotNil(t, view.DeliveryCost)
	assert.InDelta(t, 180.0, *view.DeliveryCost, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetNotFound(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT parcels\.\*`).WillReturnRows(sqlmock.NewRows(viewColumns))

	view, err := r.Get(context.Background(), 99)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, view)
}

func TestRepository_ListBySession(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)
	now := time.Now()
	typeID := int64(2)
	priced := false

	mock.ExpectQuery(`WHERE parcels\.session_id = \$2 AND parcels\.parcel_type_id = \$3 AND parcels\.delivery_cost IS NULL ORDER BY parcels\.id ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows(viewColumns).
			AddRow(3, "sess-1", "Phone", 0.4, 500.0, 2, nil, now, now, "electronics").
			AddRow(4, "sess-1", "Laptop", 2.5, 1500.0, 2, nil, now, now, ""))

	views, err := r.ListBySession(context.Background(), "sess-1", repo.ParcelFilter{
		Page:         2,
		PageSize:     2,
		ParcelTypeID: &typeID,
		Priced:       &priced,
	})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "electronics", views[0].ParcelType)
	assert.Nil(t, views[0].DeliveryCost)
	assert.Equal(t, domain.UnknownParcelType, views[1].ParcelType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListUnpriced(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "parcels" WHERE delivery_cost IS NULL ORDER BY id FOR UPDATE SKIP LOCKED`).
		WillReturnRows(sqlmock.NewRows(viewColumns[:9]).
			AddRow(1, "sess-1", "Books", 2.0, 100.0, 1, nil, now, now).
			AddRow(2, "sess-2", "Shoes", 1.0, 50.0, 1, nil, now, now))

	parcels, err := r.ListUnpriced(context.Background())
	require.NoError(t, err)
	require.Len(t, parcels, 2)
	assert.Equal(t, int64(1), parcels[0].ID)
	assert.False(t, parcels[1].Priced())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetDeliveryCost(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		desc    string
		rows    int64
		updated bool
	}{
		{desc: "unpriced parcel is updated", rows: 1, updated: true},
		{desc: "already priced parcel is left alone", rows: 0, updated: false},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			r, mock := newMockRepo(t)

			mock.ExpectBegin()
			mock.ExpectExec(`UPDATE "parcels" SET "delivery_cost"=\$1,"updated_at"=\$2 WHERE id = \$3 AND delivery_cost IS NULL`).
				WithArgs(180.0, sqlmock.AnyArg(), int64(7)).
				WillReturnResult(sqlmock.NewResult(0, tc.rows))
			mock.ExpectCommit()

			updated, err := r.SetDeliveryCost(context.Background(), 7, 180.0)
			require.NoError(t, err)
			assert.Equal(t, tc.updated, updated)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
