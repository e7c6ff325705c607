package union

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unionadmin/backend/internal/domain/shared"
)

func testActor() shared.ActorRef {
	return shared.ActorRef{ID: uuid.New(), Email: "admin@union.vn"}
}

func TestNewUnionist(t *testing.T) {
	t.Run("creates with audit stamps and no code", func(t *testing.T) {
		u, err := NewUnionist("Nguyen Van A", "male", "A@Union.VN ", "0901234567", "Ha Noi", testActor())
		require.NoError(t, err)

		assert.Empty(t, u.Code, "code is allocated by the repository at insert")
		assert.Equal(t, "Nguyen Van A", u.FullName)
		assert.Equal(t, "a@union.vn", u.Email)
		assert.False(t, u.IsDeleted)
		assert.NotEmpty(t, u.CreatedBy.Email)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := NewUnionist("   ", "", "", "", "", testActor())
		require.Error(t, err)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "VALIDATION_FAILED", derr.Code)
	})
}

func TestUnionist_Update(t *testing.T) {
	u, err := NewUnionist("Nguyen Van A", "male", "a@union.vn", "", "", testActor())
	require.NoError(t, err)
	u.Code = "CD00001"

	editor := shared.ActorRef{ID: uuid.New(), Email: "editor@union.vn"}
	require.NoError(t, u.Update("Nguyen Van B", "male", "b@union.vn", "", "", editor))

	assert.Equal(t, "Nguyen Van B", u.FullName)
	assert.Equal(t, "CD00001", u.Code, "update never touches the business code")
	assert.Equal(t, editor, u.UpdatedBy)
}

func TestUnionist_Assignments(t *testing.T) {
	u, err := NewUnionist("Tran Thi C", "female", "", "", "", testActor())
	require.NoError(t, err)

	deptID := uuid.New()
	postID := uuid.New()
	u.AssignDepartment(&deptID, testActor())
	u.AssignPost(&postID, testActor())
	assert.Equal(t, deptID, *u.DepartmentID)
	assert.Equal(t, postID, *u.PostID)

	u.AssignDepartment(nil, testActor())
	assert.Nil(t, u.DepartmentID)
}
