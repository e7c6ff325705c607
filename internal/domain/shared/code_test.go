package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeRule_Next(t *testing.T) {
	t.Run("empty collection starts each rule at one", func(t *testing.T) {
		code, err := MemberCodeRule.Next("")
		require.NoError(t, err)
		assert.Equal(t, "STU00001", code)

		code, err = UnionistCodeRule.Next("")
		require.NoError(t, err)
		assert.Equal(t, "CD00001", code)

		code, err = DepartmentCodeRule.Next("")
		require.NoError(t, err)
		assert.Equal(t, "DV01", code)
	})

	t.Run("increments and keeps zero padding", func(t *testing.T) {
		code, err := UnionistCodeRule.Next("CD00004")
		require.NoError(t, err)
		assert.Equal(t, "CD00005", code)

		code, err = DepartmentCodeRule.Next("DV09")
		require.NoError(t, err)
		assert.Equal(t, "DV10", code)
	})

	t.Run("overflowing the fixed width fails loudly", func(t *testing.T) {
		_, err := DepartmentCodeRule.Next("DV99")
		require.Error(t, err)
		var derr *DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "CODE_EXHAUSTED", derr.Code)
	})

	t.Run("malformed prior code is rejected", func(t *testing.T) {
		_, err := MemberCodeRule.Next("STUxxxxx")
		assert.Error(t, err)

		_, err = MemberCodeRule.Next("CD00001")
		assert.Error(t, err)
	})
}

func TestDateCode(t *testing.T) {
	day := time.Date(2024, time.March, 7, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "PT07032024", DateCode(ReceiptCodePrefix, day))
	assert.Equal(t, "PC07032024", DateCode(ExpenseCodePrefix, day))
	assert.Equal(t, "DMT07032024", DateCode(IncomeCategoryCodePrefix, day))
	assert.Equal(t, "DMC07032024", DateCode(ExpenseCategoryCodePrefix, day))
}

func TestAuditable_SoftDelete(t *testing.T) {
	actor := ActorRef{Email: "admin@union.vn"}
	other := ActorRef{Email: "other@union.vn"}

	var a Auditable
	first := time.Now()
	require.True(t, a.MarkDeleted(actor, first))
	assert.True(t, a.IsDeleted)
	assert.Equal(t, actor, a.DeletedBy)

	// repeated delete keeps the original actor and timestamp
	assert.False(t, a.MarkDeleted(other, first.Add(time.Hour)))
	assert.Equal(t, actor, a.DeletedBy)
	assert.Equal(t, first, *a.DeletedAt)
}

func TestHistory_Append(t *testing.T) {
	actor := ActorRef{Email: "kt@union.vn"}

	var h History
	h.Append(actor, map[string]string{"fee": "50000"})
	h.Append(actor, map[string]string{"fee": "60000"})

	require.Len(t, h, 2)
	assert.Equal(t, "50000", h[0].Fields["fee"])
	assert.Equal(t, "60000", h[1].Fields["fee"])
	assert.False(t, h[1].UpdatedAt.Before(h[0].UpdatedAt))
}
