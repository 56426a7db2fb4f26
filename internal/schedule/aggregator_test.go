package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/icu-ward-dev/shift-manager/backend/internal/domain"
	"github.com/icu-ward-dev/shift-manager/backend/internal/holiday"
)

func testAggregator() *Aggregator {
	return NewAggregator(domain.DefaultRoster(), []string{"n1", "n2"})
}

func entry(staffID, date string, slot domain.ShiftSlot, shiftID string) domain.ScheduleEntry {
	return domain.ScheduleEntry{StaffID: staffID, Date: date, Slot: slot, ShiftID: shiftID}
}

func TestDayShiftCounts(t *testing.T) {
	a := testAggregator()
	roster := domain.DefaultRoster()
	nurses := roster.ByClass(domain.ClassNurse)

	t.Run("exempt staff not counted for plain morning", func(t *testing.T) {
		entries := domain.ScheduleEntries{
			entry("n1", "2025-07-01", domain.SlotMorning, domain.ShiftMorning),
			entry("n3", "2025-07-01", domain.SlotMorning, domain.ShiftMorning),
		}

		counts := a.DayShiftCounts(nurses, "2025-07-01", entries)
		assert.Equal(t, 1, counts.Morning)
	})

	t.Run("exempt staff still counted for morning_special", func(t *testing.T) {
		entries := domain.ScheduleEntries{
			entry("n1", "2025-07-01", domain.SlotMorning, domain.ShiftMorningSpecial),
		}

		counts := a.DayShiftCounts(nurses, "2025-07-01", entries)
		assert.Equal(t, 1, counts.Morning)
	})

	t.Run("combined shifts count into multiple categories", func(t *testing.T) {
		entries := domain.ScheduleEntries{
			entry("n3", "2025-07-01", domain.SlotMorning, domain.ShiftMorningAfternoon),
			entry("n4", "2025-07-01", domain.SlotAfternoon, domain.ShiftNightAfternoon),
		}

		counts := a.DayShiftCounts(nurses, "2025-07-01", entries)
		assert.Equal(t, 1, counts.Morning)
		assert.Equal(t, 2, counts.Afternoon)
		assert.Equal(t, 1, counts.Night)
	})

	t.Run("exempt morning_afternoon counts only the afternoon leg", func(t *testing.T) {
		entries := domain.ScheduleEntries{
			entry("n1", "2025-07-01", domain.SlotMorning, domain.ShiftMorningAfternoon),
		}

		counts := a.DayShiftCounts(nurses, "2025-07-01", entries)
		assert.Equal(t, 0, counts.Morning)
		assert.Equal(t, 1, counts.Afternoon)
	})

	t.Run("non-working markers are not counted", func(t *testing.T) {
		entries := domain.ScheduleEntries{
			entry("n3", "2025-07-01", domain.SlotMorning, domain.ShiftOff),
			entry("n4", "2025-07-01", domain.SlotMorning, domain.ShiftVacation),
			entry("n5", "2025-07-01", domain.SlotMorning, domain.ShiftTraining),
		}

		counts := a.DayShiftCounts(nurses, "2025-07-01", entries)
		assert.Equal(t, DayCounts{}, counts)
	})

	t.Run("unknown shift id is skipped", func(t *testing.T) {
		entries := domain.ScheduleEntries{
			entry("n3", "2025-07-01", domain.SlotMorning, "ไม่มีรหัสนี้"),
		}

		counts := a.DayShiftCounts(nurses, "2025-07-01", entries)
		assert.Equal(t, DayCounts{}, counts)
	})

	t.Run("part-time staff counted via slotless entry only", func(t *testing.T) {
		assistants := roster.ByClass(domain.ClassAssistant)
		entries := domain.ScheduleEntries{
			entry("a7", "2025-07-01", domain.SlotNone, domain.ShiftAfternoon),
			// entry ที่ระบุ slot ของพาร์ทไทม์ต้องไม่ถูกมองเห็น
			entry("a8", "2025-07-01", domain.SlotMorning, domain.ShiftMorning),
		}

		counts := a.DayShiftCounts(assistants, "2025-07-01", entries)
		assert.Equal(t, 1, counts.Afternoon)
		assert.Equal(t, 0, counts.Morning)
	})
}

func TestMonthlyDayCounts(t *testing.T) {
	resolver := holiday.NewResolver()

	t.Run("july 2025", func(t *testing.T) {
		holidays := resolver.Resolve(2025, time.July, nil)
		counts := MonthlyDayCounts(2025, time.July, holidays)

		assert.Equal(t, 31, counts.TotalDays)
		assert.Equal(t, 8, counts.WeekendDays)
		// 11 ก.ค. (ศุกร์) และ 28 ก.ค. (จันทร์)
		assert.Equal(t, 2, counts.PublicHolidayDays)
		assert.Equal(t, 10, counts.HolidayDays)
		assert.Equal(t, 21, counts.WorkingDays)
	})

	t.Run("holiday on weekend is not double counted", func(t *testing.T) {
		// 13 ก.ค. 2568 เป็นอาทิตย์ เพิ่มวันหยุด custom ทับลงไป
		customs := []domain.CustomHoliday{
			{ID: "1", Date: "2025-07-13", Name: "วันหยุดพิเศษ", Type: "custom"},
		}
		holidays := resolver.Resolve(2025, time.July, customs)
		counts := MonthlyDayCounts(2025, time.July, holidays)

		assert.Equal(t, 8, counts.WeekendDays)
		assert.Equal(t, 2, counts.PublicHolidayDays)
	})

	t.Run("partition always sums to total", func(t *testing.T) {
		for month := time.January; month <= time.December; month++ {
			holidays := resolver.Resolve(2025, month, nil)
			counts := MonthlyDayCounts(2025, month, holidays)
			assert.Equal(t, counts.TotalDays, counts.WorkingDays+counts.WeekendDays+counts.PublicHolidayDays)
			assert.Equal(t, counts.HolidayDays, counts.WeekendDays+counts.PublicHolidayDays)
		}
	})
}

func TestTotalShifts(t *testing.T) {
	a := testAggregator()

	t.Run("exempt staff still accumulates monthly totals", func(t *testing.T) {
		// n1 ถูกยกเว้นจากยอดรายวัน แต่ยอดรายเดือนของตัวเองยังนับ ช ตามปกติ
		entries := domain.ScheduleEntries{
			entry("n1", "2025-07-01", domain.SlotMorning, domain.ShiftMorning),
		}
		assert.Equal(t, 1, a.TotalShifts("n1", 2025, time.July, entries))
	})

	t.Run("off is excluded", func(t *testing.T) {
		entries := domain.ScheduleEntries{
			entry("n3", "2025-07-01", domain.SlotMorning, domain.ShiftMorning),
			entry("n3", "2025-07-02", domain.SlotMorning, domain.ShiftOff),
			entry("n3", "2025-07-03", domain.SlotMorning, domain.ShiftVacation),
			entry("n3", "2025-07-03", domain.SlotAfternoon, domain.ShiftTraining),
		}
		// va และ อ ยังนับ เพราะข้อความที่แสดงไม่ใช่ O
		assert.Equal(t, 3, a.TotalShifts("n3", 2025, time.July, entries))
	})

	t.Run("other entry counts unless its text is O", func(t *testing.T) {
		other := entry("n3", "2025-07-01", domain.SlotMorning, domain.ShiftOther)
		other.CustomText = "ประชุม"
		offLike := entry("n3", "2025-07-02", domain.SlotMorning, domain.ShiftOther)
		offLike.CustomText = "O"

		entries := domain.ScheduleEntries{other, offLike}
		assert.Equal(t, 1, a.TotalShifts("n3", 2025, time.July, entries))
	})

	t.Run("unknown staff id yields zero", func(t *testing.T) {
		entries := domain.ScheduleEntries{
			entry("n99", "2025-07-01", domain.SlotMorning, domain.ShiftMorning),
		}
		assert.Equal(t, 0, a.TotalShifts("n99", 2025, time.July, entries))
	})
}

func TestOvertimeShifts(t *testing.T) {
	a := testAggregator()

	red := entry("n3", "2025-07-01", domain.SlotMorning, domain.ShiftMorning)
	red.Formatting = &domain.Formatting{TextColor: domain.ColorRed}

	darkRed := entry("n3", "2025-07-02", domain.SlotAfternoon, domain.ShiftAfternoon)
	darkRed.Formatting = &domain.Formatting{TextColor: domain.ColorDarkRed}

	// สีมาตรฐานเป็นดำ ไม่เข้าเกณฑ์ OT
	plain := entry("n3", "2025-07-03", domain.SlotMorning, domain.ShiftMorning)

	// ข้อความ O ไม่นับต่อให้สีแดง (สีมาตรฐานของ off เป็นขาวจึง override เอง)
	off := entry("n3", "2025-07-04", domain.SlotMorning, domain.ShiftOff)
	off.Formatting = &domain.Formatting{TextColor: domain.ColorRed}

	entries := domain.ScheduleEntries{red, darkRed, plain, off}
	assert.Equal(t, 2, a.OvertimeShifts("n3", 2025, time.July, entries))
}

func TestShiftPayShifts(t *testing.T) {
	a := testAggregator()

	afternoon := entry("n3", "2025-07-01", domain.SlotAfternoon, domain.ShiftAfternoon)
	night := entry("n3", "2025-07-02", domain.SlotMorning, domain.ShiftNight)

	// เวรบ่ายที่ถูกทำสีแดง (OT) ไม่เข้าเกณฑ์ค่าเวร
	redAfternoon := entry("n3", "2025-07-03", domain.SlotAfternoon, domain.ShiftAfternoon)
	redAfternoon.Formatting = &domain.Formatting{TextColor: domain.ColorRed}

	// เวรเช้าสีดำก็ไม่เข้าเกณฑ์ เพราะดูเฉพาะบ่ายกับดึก
	morning := entry("n3", "2025-07-04", domain.SlotMorning, domain.ShiftMorning)

	entries := domain.ScheduleEntries{afternoon, night, redAfternoon, morning}
	assert.Equal(t, 2, a.ShiftPayShifts("n3", 2025, time.July, entries))
}
