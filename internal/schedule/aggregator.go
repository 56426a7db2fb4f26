package schedule

import (
	"time"

	"github.com/icu-ward-dev/shift-manager/backend/internal/domain"
	"github.com/icu-ward-dev/shift-manager/backend/internal/holiday"
)

// Aggregator คำนวณยอดสรุปจาก entry list ทั้งชุดทุกครั้งที่ถูกเรียก
// ไม่มี state สะสม roster และรายชื่อยกเว้นเวรเช้าถูกฉีดตอนสร้าง
type Aggregator struct {
	roster domain.Roster
	// เจ้าหน้าที่ในชุดนี้ไม่ถูกนับยอดเวรเช้าเมื่อขึ้นเวรเช้าปกติ (morning)
	// แต่ยังถูกนับตามปกติสำหรับ morning_special
	morningExempt map[string]bool
}

func NewAggregator(roster domain.Roster, morningExemptIDs []string) *Aggregator {
	exempt := make(map[string]bool, len(morningExemptIDs))
	for _, id := range morningExemptIDs {
		exempt[id] = true
	}
	return &Aggregator{
		roster:        roster,
		morningExempt: exempt,
	}
}

// slotsFor คืนช่องเวรที่ต้องตรวจของเจ้าหน้าที่หนึ่งคน: พาร์ทไทม์ดูเฉพาะ
// entry แบบไม่ระบุ slot ส่วนเจ้าหน้าที่ประจำดูช่องเช้าและช่องบ่ายเท่านั้น
func slotsFor(staff domain.Staff) []domain.ShiftSlot {
	if staff.IsPartTime {
		return []domain.ShiftSlot{domain.SlotNone}
	}
	return []domain.ShiftSlot{domain.SlotMorning, domain.SlotAfternoon}
}

// DayCounts คือยอดเจ้าหน้าที่ต่อประเภทเวรของวันหนึ่งวัน
type DayCounts struct {
	Night     int `json:"nightCount"`
	Morning   int `json:"morningCount"`
	Afternoon int `json:"afternoonCount"`
}

// DayShiftCounts นับยอดเวรดึก/เช้า/บ่ายของวันหนึ่งวันในกลุ่มเจ้าหน้าที่
// ที่กำหนด เวรควบ (เช่น ชบ) นับเข้าหลายยอดพร้อมกัน รหัสเวรที่ไม่อยู่ใน
// ตารางเวรจะถูกข้ามไปเฉย ๆ
func (a *Aggregator) DayShiftCounts(subset []domain.Staff, date string, entries domain.ScheduleEntries) DayCounts {
	counts := DayCounts{}

	for _, staff := range subset {
		catalog := domain.CatalogFor(staff.Class)
		for _, slot := range slotsFor(staff) {
			entry := entries.Find(staff.ID, date, slot)
			if entry == nil {
				continue
			}
			shift, ok := catalog.FindByID(entry.ShiftID)
			if !ok {
				continue
			}
			a.countShift(&counts, staff.ID, shift.ID)
		}
	}

	return counts
}

func (a *Aggregator) countShift(counts *DayCounts, staffID, shiftID string) {
	switch shiftID {
	case domain.ShiftNight:
		counts.Night++
	case domain.ShiftMorning:
		if !a.morningExempt[staffID] {
			counts.Morning++
		}
	case domain.ShiftMorningSpecial:
		counts.Morning++
	case domain.ShiftAfternoon:
		counts.Afternoon++
	case domain.ShiftMorningAfternoon:
		// ขาเช้าใช้การยกเว้นเดียวกับเวรเช้าปกติ แต่ขาบ่ายนับเสมอ
		if !a.morningExempt[staffID] {
			counts.Morning++
		}
		counts.Afternoon++
	case domain.ShiftNightAfternoon:
		counts.Night++
		counts.Afternoon++
	case domain.ShiftHousekeepingAfternoon:
		counts.Afternoon++
	default:
		// training, night_training, housekeeping, off, vacation, other
		// ไม่นับเข้ายอดใด
	}
}

// MonthDayCounts คือสรุปวันทำการของเดือน
type MonthDayCounts struct {
	TotalDays         int `json:"totalDays"`
	WorkingDays       int `json:"workingDays"`
	HolidayDays       int `json:"holidayDays"`
	WeekendDays       int `json:"weekendDays"`
	PublicHolidayDays int `json:"publicHolidayDays"`
}

// MonthlyDayCounts นับวันทำการของเดือนจากชุดวันหยุดที่ resolve แล้ว
// วันหยุดราชการที่ตรงกับเสาร์อาทิตย์นับเป็นเสาร์อาทิตย์อย่างเดียว
// เพื่อไม่ให้ถูกหักซ้ำ ดังนั้น
// working + weekend + publicHoliday == totalDays เสมอ
func MonthlyDayCounts(year int, month time.Month, holidays []domain.Holiday) MonthDayCounts {
	index := holiday.NameIndex(holidays)

	counts := MonthDayCounts{}
	for _, date := range MonthDates(year, month) {
		counts.TotalDays++
		if holiday.IsWeekend(date) {
			counts.WeekendDays++
			continue
		}
		if _, ok := index[date]; ok {
			counts.PublicHolidayDays++
		}
	}

	counts.HolidayDays = counts.WeekendDays + counts.PublicHolidayDays
	counts.WorkingDays = counts.TotalDays - counts.HolidayDays
	return counts
}

// forEachSlotShift ไล่ทุกวันของเดือนและทุกช่องเวรของเจ้าหน้าที่คนหนึ่ง
// แล้วเรียก fn กับ entry ที่ resolve กับตารางเวรได้ entry ที่รหัสเวร
// ไม่อยู่ในตารางเวรหรือ staffId ไม่อยู่ใน roster จะถูกข้ามโดยไม่ error
func (a *Aggregator) forEachSlotShift(staffID string, year int, month time.Month, entries domain.ScheduleEntries, fn func(entry *domain.ScheduleEntry, shift domain.ShiftDefinition)) {
	staff, ok := a.roster.Find(staffID)
	if !ok {
		return
	}
	catalog := domain.CatalogFor(staff.Class)

	for _, date := range MonthDates(year, month) {
		for _, slot := range slotsFor(staff) {
			entry := entries.Find(staffID, date, slot)
			if entry == nil {
				continue
			}
			shift, ok := catalog.FindByID(entry.ShiftID)
			if !ok {
				continue
			}
			fn(entry, shift)
		}
	}
}

// renderedText คือข้อความที่แสดงในช่อง: customText ของ entry แบบ other
// หรือรหัสเวรจากตารางเวร
func renderedText(entry *domain.ScheduleEntry, shift domain.ShiftDefinition) string {
	if shift.ID == domain.ShiftOther && entry.CustomText != "" {
		return entry.CustomText
	}
	return shift.DisplayCode
}

// TotalShifts นับเวรรวมของเจ้าหน้าที่หนึ่งคนในเดือน: ทุกช่องที่มี entry
// และข้อความที่แสดงไม่ใช่ตัวอักษร O นับทั้งหมด (va และ อ ก็นับ เพราะการ
// นับนี้ดูการมี entry ไม่ใช่ประเภทเวร)
func (a *Aggregator) TotalShifts(staffID string, year int, month time.Month, entries domain.ScheduleEntries) int {
	total := 0
	a.forEachSlotShift(staffID, year, month, entries, func(entry *domain.ScheduleEntry, shift domain.ShiftDefinition) {
		if renderedText(entry, shift) != "O" {
			total++
		}
	})
	return total
}

// OvertimeShifts นับเวร OT: ช่องที่สีตัวอักษรที่ใช้จริงเป็นสีแดงที่ระบบ
// รู้จัก และข้อความที่แสดงไม่ใช่ O
func (a *Aggregator) OvertimeShifts(staffID string, year int, month time.Month, entries domain.ScheduleEntries) int {
	total := 0
	a.forEachSlotShift(staffID, year, month, entries, func(entry *domain.ScheduleEntry, shift domain.ShiftDefinition) {
		textColor := domain.EffectiveTextColor(entry, shift)
		if (textColor == domain.ColorRed || textColor == domain.ColorDarkRed) && renderedText(entry, shift) != "O" {
			total++
		}
	})
	return total
}

// ShiftPayShifts นับเวรที่เข้าเกณฑ์ค่าเวร: เวรบ่ายหรือเวรดึกที่สีตัวอักษร
// ที่ใช้จริงเป็นสีดำ
func (a *Aggregator) ShiftPayShifts(staffID string, year int, month time.Month, entries domain.ScheduleEntries) int {
	total := 0
	a.forEachSlotShift(staffID, year, month, entries, func(entry *domain.ScheduleEntry, shift domain.ShiftDefinition) {
		if shift.ID != domain.ShiftAfternoon && shift.ID != domain.ShiftNight {
			return
		}
		if domain.EffectiveTextColor(entry, shift) == domain.ColorBlack {
			total++
		}
	})
	return total
}
