package schedule

import (
	"github.com/icu-ward-dev/shift-manager/backend/internal/domain"
)

// StaffOnShift หาว่าในวันหนึ่งใครอยู่เวรของช่วงที่ขอ (เช้า/บ่าย/ดึก)
// โดยไล่ตาม roster เพื่อให้ลำดับผลลัพธ์คงที่ เจ้าหน้าที่หนึ่งคนติดเวร
// ถ้าช่องเวรช่องใดช่องหนึ่งของเขาเข้าเกณฑ์ เวรควบจึงทำให้ติดได้มากกว่า
// หนึ่งช่วง เช่น ชบ ติดทั้งรายชื่อเวรเช้าและเวรบ่าย
func (a *Aggregator) StaffOnShift(date string, category domain.ShiftSlot, entries domain.ScheduleEntries) []domain.Staff {
	onShift := make([]domain.Staff, 0, len(a.roster))

	for _, staff := range a.roster {
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
			if a.qualifies(staff.ID, shift.ID, category) {
				onShift = append(onShift, staff)
				break
			}
		}
	}

	return onShift
}

// qualifies ตัดสินว่ารหัสเวรหนึ่งรหัสเข้าเกณฑ์ช่วงเวรที่ขอหรือไม่
// การยกเว้นเวรเช้าใช้เฉพาะรหัส morning ตรง ๆ เท่านั้น morning_special
// และขาเช้าของ morning_afternoon ยังติดรายชื่อตามปกติ
func (a *Aggregator) qualifies(staffID, shiftID string, category domain.ShiftSlot) bool {
	switch category {
	case domain.SlotMorning:
		switch shiftID {
		case domain.ShiftMorning:
			return !a.morningExempt[staffID]
		case domain.ShiftMorningSpecial, domain.ShiftMorningAfternoon:
			return true
		}
	case domain.SlotAfternoon:
		switch shiftID {
		case domain.ShiftAfternoon, domain.ShiftMorningAfternoon, domain.ShiftNightAfternoon:
			return true
		}
	case domain.SlotNight:
		switch shiftID {
		case domain.ShiftNight, domain.ShiftNightAfternoon:
			return true
		}
	}
	return false
}
