package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

const selectCatalogQuery = "SELECT id, name, duration_minutes, price FROM services ORDER BY name ASC, id ASC"

func TestListCatalog(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectCatalogQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "duration_minutes", "price"}).
			AddRow("wash", "Мытье", 15, 800).
			AddRow("consult", "Консультация", 0, 0))

	got, err := NewRepository(db).ListCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Service{
		{ID: "wash", Name: "Мытье", DurationMinutes: 15, Price: 800},
		{ID: "consult", Name: "Консультация", DurationMinutes: 0, Price: 0},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCatalog_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectCatalogQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "duration_minutes", "price"}))

	got, err := NewRepository(db).ListCatalog(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListCatalog_Errors(t *testing.T) {
	t.Run("query fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectQuery(regexp.QuoteMeta(selectCatalogQuery)).WillReturnError(assert.AnError)

		_, err = NewRepository(db).ListCatalog(context.Background())
		assert.ErrorIs(t, err, ErrExecQuery)
	})

	t.Run("bad duration", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectQuery(regexp.QuoteMeta(selectCatalogQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "duration_minutes", "price"}).
				AddRow("wash", "Мытье", "fifteen", 800))

		_, err = NewRepository(db).ListCatalog(context.Background())
		assert.ErrorIs(t, err, ErrScanRow)
	})
}
