package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unionadmin/backend/internal/domain/shared"
)

func testActor() shared.ActorRef {
	return shared.ActorRef{ID: uuid.New(), Email: "treasurer@union.vn"}
}

func TestNewReceipt(t *testing.T) {
	day := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	t.Run("stamps PT date code and initial history entry", func(t *testing.T) {
		r, err := NewReceipt("Fee collection Q2", "500000", day, "Nguyen Van A", "", nil, testActor())
		require.NoError(t, err)

		assert.Equal(t, "PT15062024", r.Code)
		require.Len(t, r.History, 1)
		assert.Equal(t, "500000", r.History[0].Fields["amount"])
	})

	t.Run("rejects amount below the floor", func(t *testing.T) {
		_, err := NewReceipt("Too small", "999", day, "", "", nil, testActor())
		require.Error(t, err)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "VALIDATION_FAILED", derr.Code)
	})

	t.Run("rejects amount at the exclusive ceiling", func(t *testing.T) {
		_, err := NewReceipt("Too big", "10000000000", day, "", "", nil, testActor())
		assert.Error(t, err)

		_, err = NewReceipt("Just under", "9999999999", day, "", "", nil, testActor())
		assert.NoError(t, err)
	})

	t.Run("rejects non-numeric amount", func(t *testing.T) {
		_, err := NewReceipt("Bad", "abc", day, "", "", nil, testActor())
		assert.Error(t, err)
	})

	t.Run("rejects dates outside 1970..today", func(t *testing.T) {
		_, err := NewReceipt("Old", "5000", time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC), "", "", nil, testActor())
		assert.Error(t, err)

		_, err = NewReceipt("Future", "5000", time.Now().AddDate(0, 0, 2), "", "", nil, testActor())
		assert.Error(t, err)
	})
}

func TestReceipt_Update(t *testing.T) {
	day := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	r, err := NewReceipt("Fee collection", "500000", day, "", "", nil, testActor())
	require.NoError(t, err)

	t.Run("appends exactly one history entry per tracked update", func(t *testing.T) {
		require.NoError(t, r.Update("Fee collection", "600000", day, "", "", testActor()))

		require.Len(t, r.History, 2)
		assert.Equal(t, "600000", r.History[1].Fields["amount"])
		assert.Equal(t, "500000", r.History[0].Fields["amount"], "prior entries are never mutated")
		assert.False(t, r.History[1].UpdatedAt.Before(r.CreatedAt))
	})

	t.Run("keeps the original code even when the date changes", func(t *testing.T) {
		newDay := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, r.Update("Fee collection", "600000", newDay, "", "", testActor()))
		assert.Equal(t, "PT15062024", r.Code)
	})

	t.Run("invalid update leaves history untouched", func(t *testing.T) {
		before := len(r.History)
		require.Error(t, r.Update("Fee collection", "1", day, "", "", testActor()))
		assert.Len(t, r.History, before)
	})

	t.Run("payer name change alone appends a history entry", func(t *testing.T) {
		r, err := NewReceipt("Fee collection", "500000", day, "Nguyen Van A", "", nil, testActor())
		require.NoError(t, err)

		require.NoError(t, r.Update("Fee collection", "500000", day, "Tran Thi B", "", testActor()))
		require.Len(t, r.History, 2)
		assert.Equal(t, "Tran Thi B", r.History[1].Fields["payerName"])
	})
}

func TestExpense_Update(t *testing.T) {
	day := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	t.Run("payee name change alone appends a history entry", func(t *testing.T) {
		e, err := NewExpense("Event venue", "2000000", day, "Company A", "", nil, testActor())
		require.NoError(t, err)
		require.Len(t, e.History, 1)

		require.NoError(t, e.Update("Event venue", "2000000", day, "Company B", "", testActor()))
		require.Len(t, e.History, 2)
		assert.Equal(t, "Company B", e.History[1].Fields["payeeName"])
	})
}

func TestFee_History(t *testing.T) {
	fee, err := NewFee(uuid.New(), 2024, "50000", testActor())
	require.NoError(t, err)
	require.Len(t, fee.History, 1)

	t.Run("update from 50000 to 60000 yields exactly two entries", func(t *testing.T) {
		require.NoError(t, fee.UpdateFee("60000", testActor()))
		require.Len(t, fee.History, 2)
		assert.Equal(t, "60000", fee.History[1].Fields["fee"])
	})

	t.Run("no-op amount change appends nothing", func(t *testing.T) {
		require.NoError(t, fee.UpdateFee("60000", testActor()))
		assert.Len(t, fee.History, 2)
	})
}

func TestNewCategory(t *testing.T) {
	t.Run("income and expense kinds stamp their own prefixes", func(t *testing.T) {
		in, err := NewCategory(CategoryKindIncome, "Member fees", 2024, "120000000", "", testActor())
		require.NoError(t, err)
		assert.True(t, len(in.Code) == len("DMT")+8 && in.Code[:3] == "DMT", "code %q", in.Code)

		out, err := NewCategory(CategoryKindExpense, "Events", 2024, "80000000", "", testActor())
		require.NoError(t, err)
		assert.Equal(t, "DMC", out.Code[:3])
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := NewCategory("transfer", "X", 2024, "5000", "", testActor())
		assert.Error(t, err)
	})
}

func TestCategory_Update(t *testing.T) {
	c, err := NewCategory(CategoryKindIncome, "Member fees", 2024, "120000000", "", testActor())
	require.NoError(t, err)

	t.Run("rejects years before 1970", func(t *testing.T) {
		require.Error(t, c.Update("Member fees", 1969, "120000000", "", testActor()))
		assert.Equal(t, 2024, c.Year)
	})

	t.Run("year change alone appends a history entry", func(t *testing.T) {
		require.NoError(t, c.Update("Member fees", 2025, "120000000", "", testActor()))
		require.Len(t, c.History, 2)
		assert.Equal(t, "2025", c.History[1].Fields["year"])
	})
}
