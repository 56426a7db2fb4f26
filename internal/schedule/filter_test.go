package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/icu-ward-dev/shift-manager/backend/internal/domain"
)

func staffIDs(staff []domain.Staff) []string {
	ids := make([]string, 0, len(staff))
	for _, s := range staff {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestStaffOnShift(t *testing.T) {
	a := testAggregator()

	t.Run("morning_afternoon qualifies for both morning and afternoon", func(t *testing.T) {
		entries := domain.ScheduleEntries{
			entry("n3", "2025-07-01", domain.SlotMorning, domain.ShiftMorningAfternoon),
		}

		assert.Equal(t, []string{"n3"}, staffIDs(a.StaffOnShift("2025-07-01", domain.SlotMorning, entries)))
		assert.Equal(t, []string{"n3"}, staffIDs(a.StaffOnShift("2025-07-01", domain.SlotAfternoon, entries)))
		assert.Empty(t, a.StaffOnShift("2025-07-01", domain.SlotNight, entries))
	})

	t.Run("exempt staff denied only for plain morning", func(t *testing.T) {
		entries := domain.ScheduleEntries{
			entry("n1", "2025-07-01", domain.SlotMorning, domain.ShiftMorning),
			entry("n2", "2025-07-01", domain.SlotMorning, domain.ShiftMorningSpecial),
			entry("n3", "2025-07-01", domain.SlotMorning, domain.ShiftMorning),
		}

		onShift := staffIDs(a.StaffOnShift("2025-07-01", domain.SlotMorning, entries))
		assert.NotContains(t, onShift, "n1")
		assert.Contains(t, onShift, "n2")
		assert.Contains(t, onShift, "n3")
	})

	t.Run("night list from night and night_afternoon", func(t *testing.T) {
		entries := domain.ScheduleEntries{
			entry("n3", "2025-07-01", domain.SlotAfternoon, domain.ShiftNightAfternoon),
			entry("n4", "2025-07-01", domain.SlotMorning, domain.ShiftNight),
			entry("n5", "2025-07-01", domain.SlotMorning, domain.ShiftMorning),
		}

		assert.Equal(t, []string{"n3", "n4"}, staffIDs(a.StaffOnShift("2025-07-01", domain.SlotNight, entries)))
	})

	t.Run("output follows roster order", func(t *testing.T) {
		entries := domain.ScheduleEntries{
			entry("n7", "2025-07-01", domain.SlotMorning, domain.ShiftMorning),
			entry("a1", "2025-07-01", domain.SlotMorning, domain.ShiftMorning),
			entry("n4", "2025-07-01", domain.SlotAfternoon, domain.ShiftMorningAfternoon),
		}

		assert.Equal(t, []string{"n4", "n7", "a1"}, staffIDs(a.StaffOnShift("2025-07-01", domain.SlotMorning, entries)))
	})

	t.Run("combined shift lists staff once per category", func(t *testing.T) {
		entries := domain.ScheduleEntries{
			entry("n3", "2025-07-01", domain.SlotMorning, domain.ShiftMorningAfternoon),
			entry("n3", "2025-07-01", domain.SlotAfternoon, domain.ShiftAfternoon),
		}

		assert.Equal(t, []string{"n3"}, staffIDs(a.StaffOnShift("2025-07-01", domain.SlotAfternoon, entries)))
	})

	t.Run("part-time staff evaluated via slotless entry", func(t *testing.T) {
		entries := domain.ScheduleEntries{
			entry("a7", "2025-07-01", domain.SlotNone, domain.ShiftNight),
		}

		assert.Equal(t, []string{"a7"}, staffIDs(a.StaffOnShift("2025-07-01", domain.SlotNight, entries)))
	})

	t.Run("other dates do not leak in", func(t *testing.T) {
		entries := domain.ScheduleEntries{
			entry("n3", "2025-07-02", domain.SlotMorning, domain.ShiftMorning),
		}

		assert.Empty(t, a.StaffOnShift("2025-07-01", domain.SlotMorning, entries))
	})
}
