package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchShiftCode(t *testing.T) {
	t.Run("nurse catalog wins over assistant catalog", func(t *testing.T) {
		shift, ok := MatchShiftCode("ช")
		require.True(t, ok)
		assert.Equal(t, ShiftMorning, shift.ID)
	})

	t.Run("assistant-only code resolves", func(t *testing.T) {
		shift, ok := MatchShiftCode("MB")
		require.True(t, ok)
		assert.Equal(t, ShiftHousekeeping, shift.ID)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, ok := MatchShiftCode("ประชุม")
		assert.False(t, ok)
	})
}

func TestCommitCell(t *testing.T) {
	t.Run("known code maps to shift id", func(t *testing.T) {
		es := CommitCell(nil, "n3", "2025-07-01", SlotMorning, "ชบ")
		require.Len(t, es, 1)
		assert.Equal(t, ShiftMorningAfternoon, es[0].ShiftID)
		assert.Empty(t, es[0].CustomText)
	})

	t.Run("unknown text becomes other with custom text", func(t *testing.T) {
		es := CommitCell(nil, "n3", "2025-07-01", SlotMorning, " ประชุมวิชาการ ")
		require.Len(t, es, 1)
		assert.Equal(t, ShiftOther, es[0].ShiftID)
		assert.Equal(t, "ประชุมวิชาการ", es[0].CustomText)
	})

	t.Run("empty text removes the entry", func(t *testing.T) {
		es := ScheduleEntries{
			{StaffID: "n3", Date: "2025-07-01", Slot: SlotMorning, ShiftID: ShiftMorning},
			{StaffID: "n3", Date: "2025-07-02", Slot: SlotMorning, ShiftID: ShiftMorning},
		}
		es = CommitCell(es, "n3", "2025-07-01", SlotMorning, "   ")
		require.Len(t, es, 1)
		assert.Equal(t, "2025-07-02", es[0].Date)
	})

	t.Run("re-commit replaces the previous entry", func(t *testing.T) {
		es := CommitCell(nil, "n3", "2025-07-01", SlotMorning, "ช")
		es = CommitCell(es, "n3", "2025-07-01", SlotMorning, "ด")
		require.Len(t, es, 1)
		assert.Equal(t, ShiftNight, es[0].ShiftID)
	})

	t.Run("special texts get automatic formatting", func(t *testing.T) {
		es := CommitCell(nil, "n3", "2025-07-01", SlotMorning, "O")
		require.NotNil(t, es[0].Formatting)
		assert.Equal(t, ColorRed, es[0].Formatting.TextColor)
		assert.Equal(t, ColorWhite, es[0].Formatting.BackgroundColor)

		es = CommitCell(nil, "a1", "2025-07-01", SlotMorning, "va")
		require.NotNil(t, es[0].Formatting)
		assert.Equal(t, ColorWhite, es[0].Formatting.TextColor)
		assert.Equal(t, ColorRed, es[0].Formatting.BackgroundColor)

		es = CommitCell(nil, "a1", "2025-07-01", SlotMorning, "MB")
		require.NotNil(t, es[0].Formatting)
		assert.Equal(t, ColorGreen, es[0].Formatting.BackgroundColor)
	})
}

func TestDisplayText(t *testing.T) {
	catalog := NurseShifts()

	t.Run("catalog code", func(t *testing.T) {
		text, ok := DisplayText(&ScheduleEntry{ShiftID: ShiftOff}, catalog)
		require.True(t, ok)
		assert.Equal(t, "O", text)
	})

	t.Run("other uses custom text", func(t *testing.T) {
		text, ok := DisplayText(&ScheduleEntry{ShiftID: ShiftOther, CustomText: "ประชุม"}, catalog)
		require.True(t, ok)
		assert.Equal(t, "ประชุม", text)
	})

	t.Run("other without custom text falls back to code", func(t *testing.T) {
		text, ok := DisplayText(&ScheduleEntry{ShiftID: ShiftOther}, catalog)
		require.True(t, ok)
		assert.Equal(t, "อื่นๆ", text)
	})

	t.Run("unknown shift id", func(t *testing.T) {
		_, ok := DisplayText(&ScheduleEntry{ShiftID: "housekeeping"}, catalog)
		// แม่บ้านไม่อยู่ในตารางเวรพยาบาล
		assert.False(t, ok)
	})
}

func TestEffectiveTextColor(t *testing.T) {
	shift, _ := NurseShifts().FindByID(ShiftMorning)

	assert.Equal(t, ColorBlack, EffectiveTextColor(&ScheduleEntry{}, shift))
	assert.Equal(t, ColorRed, EffectiveTextColor(&ScheduleEntry{
		Formatting: &Formatting{TextColor: ColorRed},
	}, shift))
}

func TestCleanScheduleEntries(t *testing.T) {
	es := ScheduleEntries{
		{StaffID: "n3", Formatting: &Formatting{}},
		{StaffID: "n4", Formatting: &Formatting{Bold: true}},
		{StaffID: "n5"},
	}

	cleaned := CleanScheduleEntries(es)
	require.Len(t, cleaned, 3)
	assert.Nil(t, cleaned[0].Formatting)
	assert.NotNil(t, cleaned[1].Formatting)
	assert.Nil(t, cleaned[2].Formatting)
}
