package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/icu-ward-dev/shift-manager/backend/internal/domain"
)

func holidayDates(hs []domain.Holiday) []string {
	dates := make([]string, 0, len(hs))
	for _, h := range hs {
		dates = append(dates, h.Date)
	}
	return dates
}

func TestResolve_July2025(t *testing.T) {
	r := NewResolver()

	holidays := r.Resolve(2025, time.July, nil)
	dates := holidayDates(holidays)

	// อาสาฬหบูชาและวันเฉลิมพระชนมพรรษาต้องอยู่ครบ
	assert.Contains(t, dates, "2025-07-11")
	assert.Contains(t, dates, "2025-07-28")

	// เข้าพรรษา 2568 ตรงวันเสาร์ จึงไม่อยู่ในตารางตั้งแต่ต้น
	assert.NotContains(t, dates, "2025-07-12")
	assert.NotContains(t, dates, "2025-07-21")
}

func TestResolve_YearWithoutLunarTable(t *testing.T) {
	r := NewResolver()

	// ปี 2026 ไม่มีตารางจันทรคติ เดือนกุมภาพันธ์จึงไม่มีวันหยุดเลย
	// (มาฆบูชาไม่ถูกคำนวณเอง)
	holidays := r.Resolve(2026, time.February, nil)
	assert.Empty(t, holidays)

	// แต่วันหยุดราชการแบบตรงวันยังอยู่ครบ
	holidays = r.Resolve(2026, time.December, nil)
	dates := holidayDates(holidays)
	assert.Contains(t, dates, "2026-12-05")
	assert.Contains(t, dates, "2026-12-10")
}

func TestResolve_TombstoneHidesPublicHoliday(t *testing.T) {
	r := NewResolver()

	tomb := domain.NewTombstone("2025-07-28", "วันเฉลิมพระชนมพรรษาพระบาทสมเด็จพระเจ้าอยู่หัว")
	assert.True(t, tomb.IsTombstone())

	holidays := r.Resolve(2025, time.July, []domain.CustomHoliday{tomb})
	dates := holidayDates(holidays)

	// วันที่ถูกซ่อนหายไป และตัว record ซ่อนเองก็ต้องไม่โผล่เป็นวันหยุด
	assert.NotContains(t, dates, "2025-07-28")
	for _, h := range holidays {
		assert.NotContains(t, h.Name, domain.HiddenPrefix)
	}

	// วันหยุดอื่นของเดือนไม่ถูกกระทบ
	assert.Contains(t, dates, "2025-07-11")
}

func TestResolve_CustomHolidays(t *testing.T) {
	r := NewResolver()

	customs := []domain.CustomHoliday{
		{ID: "1", Date: "2025-07-18", Name: "วันหยุดกรณีพิเศษ", Type: "custom"},
		// คนละเดือน ต้องถูกกรองทิ้ง
		{ID: "2", Date: "2025-08-04", Name: "วันหยุดชดเชย", Type: "custom"},
	}

	holidays := r.Resolve(2025, time.July, customs)
	dates := holidayDates(holidays)

	assert.Contains(t, dates, "2025-07-18")
	assert.NotContains(t, dates, "2025-08-04")

	for _, h := range holidays {
		if h.Date == "2025-07-18" {
			assert.Equal(t, domain.HolidayCustom, h.Category)
		} else {
			assert.Equal(t, domain.HolidayPublic, h.Category)
		}
	}
}

func TestResolve_DeduplicatesByDateAndName(t *testing.T) {
	r := NewResolver()

	customs := []domain.CustomHoliday{
		// ชื่อซ้ำกับวันหยุดราชการวันเดียวกัน ต้องเหลือรายการเดียว
		{ID: "1", Date: "2025-07-11", Name: "วันอาสาฬหบูชา", Type: "custom"},
		// วันเดียวกันแต่คนละชื่อ ถือเป็นคนละรายการ
		{ID: "2", Date: "2025-07-11", Name: "วันหยุดภายในหอผู้ป่วย", Type: "custom"},
	}

	holidays := r.Resolve(2025, time.July, customs)

	seen := 0
	for _, h := range holidays {
		if h.Date == "2025-07-11" {
			seen++
		}
	}
	assert.Equal(t, 2, seen)
}

func TestNameIndex_LastNameWins(t *testing.T) {
	index := NameIndex([]domain.Holiday{
		{Date: "2025-07-11", Name: "วันอาสาฬหบูชา"},
		{Date: "2025-07-11", Name: "วันหยุดภายในหอผู้ป่วย"},
	})

	assert.Equal(t, "วันหยุดภายในหอผู้ป่วย", index["2025-07-11"])
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend("2025-07-12"))  // เสาร์
	assert.True(t, IsWeekend("2025-07-13"))  // อาทิตย์
	assert.False(t, IsWeekend("2025-07-11")) // ศุกร์
	assert.False(t, IsWeekend("ไม่ใช่วันที่"))
}
