package persistence

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/domain/union"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUnionDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&union.Department{}, &union.Post{}, &union.Unionist{}))
	return db
}

func unionActor() shared.ActorRef {
	return shared.ActorRef{ID: uuid.New(), Email: "admin@union.local"}
}

func TestGormUnionistRepository_Create(t *testing.T) {
	db := setupUnionDB(t)
	repo := NewGormUnionistRepository(db)
	ctx := context.Background()
	actor := unionActor()

	t.Run("allocates sequential codes starting at CD00001", func(t *testing.T) {
		first, err := union.NewUnionist("Nguyen Van A", "male", "a@union.local", "0901", "", actor)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, first))
		assert.Equal(t, "CD00001", first.Code)

		second, err := union.NewUnionist("Tran Thi B", "female", "b@union.local", "0902", "", actor)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, second))
		assert.Equal(t, "CD00002", second.Code)
	})

	t.Run("never reuses a code after deletion", func(t *testing.T) {
		victim, err := repo.FindByCode(ctx, "CD00002")
		require.NoError(t, err)
		require.True(t, victim.MarkDeleted(actor, time.Now()))
		require.NoError(t, repo.Save(ctx, victim))

		next, err := union.NewUnionist("Le Van C", "male", "c@union.local", "0903", "", actor)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, next))
		assert.Equal(t, "CD00003", next.Code)
	})
}

func TestGormUnionistRepository_FindByCode(t *testing.T) {
	db := setupUnionDB(t)
	repo := NewGormUnionistRepository(db)
	ctx := context.Background()

	unionist, err := union.NewUnionist("Nguyen Van A", "male", "a@union.local", "0901", "", unionActor())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, unionist))

	found, err := repo.FindByCode(ctx, "CD00001")
	require.NoError(t, err)
	assert.Equal(t, unionist.ID, found.ID)

	_, err = repo.FindByCode(ctx, "CD99999")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormUnionistRepository_List(t *testing.T) {
	db := setupUnionDB(t)
	repo := NewGormUnionistRepository(db)
	ctx := context.Background()
	actor := unionActor()

	names := []string{"An Nguyen", "Binh Tran", "Chi Le", "Dung Pham", "An Vo"}
	for i, name := range names {
		u, err := union.NewUnionist(name, "male", "", "", "", actor)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, u))
		if i == 4 {
			require.True(t, u.MarkDeleted(actor, time.Now()))
			require.NoError(t, repo.Save(ctx, u))
		}
	}

	t.Run("excludes soft-deleted records", func(t *testing.T) {
		results, total, err := repo.List(ctx, shared.ParseListQuery(url.Values{}))
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		assert.Len(t, results, 4)
	})

	t.Run("substring filter on fullName", func(t *testing.T) {
		q := shared.ParseListQuery(url.Values{"fullName": {":Chi"}})
		results, total, err := repo.List(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, results, 1)
		assert.Equal(t, "Chi Le", results[0].FullName)
	})

	t.Run("paginates with total unaffected by page size", func(t *testing.T) {
		q := shared.ParseListQuery(url.Values{"current": {"2"}, "pageSize": {"3"}, "sort": {"code"}})
		results, total, err := repo.List(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		require.Len(t, results, 1)
		assert.Equal(t, "CD00004", results[0].Code)
	})

	t.Run("unknown filter fields are dropped", func(t *testing.T) {
		q := shared.ParseListQuery(url.Values{"notAColumn": {"x"}})
		_, total, err := repo.List(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
	})
}
