package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unionadmin/backend/internal/domain/shared"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB opens GORM over a mocked Postgres connection so the emitted SQL
// can be asserted without a live server
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormReceiptRepository_SumAmountSQL(t *testing.T) {
	t.Run("casts and sums in the database", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(CAST\(amount AS DECIMAL\)\), 0\) FROM "receipts" WHERE is_deleted = \$1`).
			WithArgs(false).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("1750000"))

		sum, err := NewGormReceiptRepository(db).SumAmount(context.Background(), shared.ListQuery{})
		require.NoError(t, err)
		assert.Equal(t, "1750000", sum.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filters are pushed into the aggregate query", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(CAST\(amount AS DECIMAL\)\), 0\) FROM "receipts" WHERE is_deleted = \$1 AND document_date >= \$2`).
			WithArgs(false, "2024-01-01").
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("0"))

		q := shared.ListQuery{Conditions: []shared.Condition{
			{Field: "documentDate", Op: shared.OpGte, Value: "2024-01-01"},
		}}
		sum, err := NewGormReceiptRepository(db).SumAmount(context.Background(), q)
		require.NoError(t, err)
		assert.True(t, sum.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
