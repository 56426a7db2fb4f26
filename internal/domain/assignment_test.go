package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceShiftAssignments(t *testing.T) {
	existing := []WorkAssignment{
		{ID: "1", Date: "2025-07-01", Shift: SlotMorning, StaffID: "n3", BedArea: "B1-B3"},
		{ID: "2", Date: "2025-07-01", Shift: SlotAfternoon, StaffID: "n4"},
		{ID: "3", Date: "2025-07-02", Shift: SlotMorning, StaffID: "n3"},
	}

	t.Run("replaces only the targeted date and shift", func(t *testing.T) {
		batch := []WorkAssignment{
			{StaffID: "n5", BedArea: "B4-Y2"},
			{StaffID: "n6", Duties: []string{"Pipe line"}},
		}

		out := ReplaceShiftAssignments(existing, "2025-07-01", SlotMorning, batch)
		require.Len(t, out, 4)

		// ของเวรอื่นและวันอื่นไม่ถูกแตะ
		assert.Equal(t, "2", out[0].ID)
		assert.Equal(t, "3", out[1].ID)

		assert.Equal(t, "n5", out[2].StaffID)
		assert.Equal(t, "2025-07-01", out[2].Date)
		assert.Equal(t, SlotMorning, out[2].Shift)
		assert.NotEmpty(t, out[2].ID)
	})

	t.Run("empty batch clears the shift", func(t *testing.T) {
		out := ReplaceShiftAssignments(existing, "2025-07-01", SlotMorning, nil)
		require.Len(t, out, 2)
	})

	t.Run("records without staff id are dropped", func(t *testing.T) {
		batch := []WorkAssignment{
			{StaffID: ""},
			{StaffID: "n5"},
		}
		out := ReplaceShiftAssignments(nil, "2025-07-01", SlotNight, batch)
		require.Len(t, out, 1)
		assert.Equal(t, "n5", out[0].StaffID)
	})

	t.Run("existing id is preserved", func(t *testing.T) {
		batch := []WorkAssignment{{ID: "เดิม", StaffID: "n5"}}
		out := ReplaceShiftAssignments(nil, "2025-07-01", SlotMorning, batch)
		require.Len(t, out, 1)
		assert.Equal(t, "เดิม", out[0].ID)
	})
}

func TestCleanAssignments(t *testing.T) {
	as := []WorkAssignment{
		{StaffID: "n3", Duties: []string{}},
		{StaffID: "n4", Duties: []string{"ยา Stock"}},
	}

	cleaned := CleanAssignments(as)
	require.Len(t, cleaned, 2)
	assert.Nil(t, cleaned[0].Duties)
	assert.Equal(t, []string{"ยา Stock"}, cleaned[1].Duties)
}
