package persistence

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unionadmin/backend/internal/domain/finance"
	"github.com/unionadmin/backend/internal/domain/shared"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupFinanceDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&finance.Category{}, &finance.Receipt{}, &finance.Expense{}))
	return db
}

func TestGormReceiptRepository(t *testing.T) {
	db := setupFinanceDB(t)
	repo := NewGormReceiptRepository(db)
	ctx := context.Background()
	actor := unionActor()
	docDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("create and find keeps the date-stamped code", func(t *testing.T) {
		receipt, err := finance.NewReceipt("Hoi phi thang 6", "500000", docDate, "Nguyen Van A", "", nil, actor)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, receipt))

		found, err := repo.FindByID(ctx, receipt.ID)
		require.NoError(t, err)
		assert.Equal(t, "PT15062024", found.Code)
		assert.Equal(t, "500000", found.Amount)
		require.Len(t, found.History, 1)
	})

	t.Run("update persists appended history", func(t *testing.T) {
		receipt, err := finance.NewReceipt("Thu khac", "200000", docDate, "Tran B", "", nil, actor)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, receipt))

		require.NoError(t, receipt.Update("Thu khac", "250000", docDate, "Tran B", "", actor))
		require.NoError(t, repo.Save(ctx, receipt))

		found, err := repo.FindByID(ctx, receipt.ID)
		require.NoError(t, err)
		assert.Equal(t, "250000", found.Amount)
		require.Len(t, found.History, 2)
		assert.Equal(t, "250000", found.History[1].Fields["amount"])
	})

	t.Run("sum runs in the database over the filtered set", func(t *testing.T) {
		later := docDate.AddDate(0, 1, 0)
		receipt, err := finance.NewReceipt("Thu thang 7", "1000000", later, "Le C", "", nil, actor)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, receipt))

		sum, err := repo.SumAmount(ctx, shared.ListQuery{})
		require.NoError(t, err)
		assert.Equal(t, "1750000", sum.String())

		q := shared.ParseListQuery(url.Values{"documentDate": {">=2024-07-01"}})
		sum, err = repo.SumAmount(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, "1000000", sum.String())
	})

	t.Run("soft-deleted receipts drop out of list and sum", func(t *testing.T) {
		results, total, err := repo.List(ctx, shared.ListQuery{Current: 1, PageSize: 10})
		require.NoError(t, err)
		require.Equal(t, int64(3), total)

		victim := results[0]
		require.True(t, victim.MarkDeleted(actor, time.Now()))
		require.NoError(t, repo.Save(ctx, &victim))

		_, total, err = repo.List(ctx, shared.ListQuery{Current: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		_, err = repo.FindByID(ctx, victim.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormCategoryRepository_KindIsolation(t *testing.T) {
	db := setupFinanceDB(t)
	repo := NewGormCategoryRepository(db)
	ctx := context.Background()
	actor := unionActor()

	income, err := finance.NewCategory(finance.CategoryKindIncome, "Hoi phi", 2024, "5000000", "", actor)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, income))

	expense, err := finance.NewCategory(finance.CategoryKindExpense, "Van phong pham", 2024, "2000000", "", actor)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, expense))

	incomes, total, err := repo.List(ctx, finance.CategoryKindIncome, shared.ListQuery{Current: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, incomes, 1)
	assert.Equal(t, "Hoi phi", incomes[0].Name)

	budget, err := repo.SumBudget(ctx, finance.CategoryKindExpense, shared.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, "2000000", budget.String())
}
