package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unionadmin/backend/internal/domain/shared"
)

func testActor() shared.ActorRef {
	return shared.ActorRef{ID: uuid.New(), Email: "admin@union.local"}
}

func TestNewUser(t *testing.T) {
	actor := testActor()

	t.Run("creates user with hashed password", func(t *testing.T) {
		user, err := NewUser("Alice@Union.Local", "s3cret-pass", "Alice Tran", actor)
		require.NoError(t, err)

		assert.Equal(t, "alice@union.local", user.Email)
		assert.Empty(t, user.Code, "code is assigned on insert")
		assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
		assert.True(t, user.CheckPassword("s3cret-pass"))
		assert.False(t, user.CheckPassword("wrong"))
		assert.Equal(t, actor, user.CreatedBy)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewUser("not-an-email", "s3cret-pass", "Alice", actor)
		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("alice@union.local", "short", "Alice", actor)
		require.Error(t, err)
	})

	t.Run("rejects blank full name", func(t *testing.T) {
		_, err := NewUser("alice@union.local", "s3cret-pass", "   ", actor)
		require.Error(t, err)
	})
}

func TestUserChangePassword(t *testing.T) {
	actor := testActor()
	user, err := NewUser("bob@union.local", "original-pass", "Bob Le", actor)
	require.NoError(t, err)

	other := shared.ActorRef{ID: uuid.New(), Email: "bob@union.local"}
	require.NoError(t, user.ChangePassword("updated-pass", other))

	assert.False(t, user.CheckPassword("original-pass"))
	assert.True(t, user.CheckPassword("updated-pass"))
	assert.Equal(t, other, user.UpdatedBy)

	assert.Error(t, user.ChangePassword("tiny", other))
}

func TestRolePermissions(t *testing.T) {
	actor := testActor()
	role, err := NewRole("accountant", "Finance staff", actor)
	require.NoError(t, err)

	create, err := NewPermission("Create receipts", "receipts", "create")
	require.NoError(t, err)
	read, err := NewPermission("Read receipts", "receipts", "read")
	require.NoError(t, err)
	role.Permissions = []Permission{*create, *read}

	assert.Equal(t, "receipts:create", create.Claim())
	assert.ElementsMatch(t, []string{"receipts:create", "receipts:read"}, role.Claims())
	assert.True(t, role.HasPermission("receipts", "read"))
	assert.False(t, role.HasPermission("receipts", "delete"))

	_, err = NewPermission("bad", "", "create")
	assert.Error(t, err)
}

func TestNewPermissionDefaultName(t *testing.T) {
	perm, err := NewPermission("", "fees", "update")
	require.NoError(t, err)
	assert.Equal(t, "Fees Update", perm.Name)
}
