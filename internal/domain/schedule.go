package domain

import "strings"

// ShiftSlot คือช่องเวรของเจ้าหน้าที่ประจำ (เจ้าหน้าที่พาร์ทไทม์ไม่มีช่องเวร
// จึงมี entry แบบไม่ระบุ slot ได้อย่างมากวันละหนึ่งรายการ)
type ShiftSlot string

const (
	SlotNone      ShiftSlot = ""
	SlotMorning   ShiftSlot = "morning"
	SlotAfternoon ShiftSlot = "afternoon"
	SlotNight     ShiftSlot = "night"
)

type Formatting struct {
	Bold            bool   `json:"bold,omitempty"`
	Italic          bool   `json:"italic,omitempty"`
	Underline       bool   `json:"underline,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	FontSize        int    `json:"fontSize,omitempty"`
}

func (f *Formatting) IsEmpty() bool {
	if f == nil {
		return true
	}
	return !f.Bold && !f.Italic && !f.Underline &&
		f.BackgroundColor == "" && f.TextColor == "" && f.FontSize == 0
}

// ScheduleEntry คือเวรของเจ้าหน้าที่หนึ่งคนในหนึ่งวัน (และหนึ่งช่องเวร
// สำหรับเจ้าหน้าที่ประจำ) key คือ (staffId, date, shiftSlot)
type ScheduleEntry struct {
	StaffID    string      `json:"staffId"`
	Date       string      `json:"date"` // YYYY-MM-DD
	Slot       ShiftSlot   `json:"shiftSlot,omitempty"`
	ShiftID    string      `json:"shiftId"`
	CustomText string      `json:"customText,omitempty"`
	Formatting *Formatting `json:"formatting,omitempty"`
}

type ScheduleEntries []ScheduleEntry

// Find คืน entry ตาม key หรือ nil เมื่อไม่มี
func (es ScheduleEntries) Find(staffID, date string, slot ShiftSlot) *ScheduleEntry {
	for i := range es {
		e := &es[i]
		if e.StaffID == staffID && e.Date == date && e.Slot == slot {
			return e
		}
	}
	return nil
}

// Remove ตัด entry ตาม key ออก (ถ้ามี)
func (es ScheduleEntries) Remove(staffID, date string, slot ShiftSlot) ScheduleEntries {
	out := make(ScheduleEntries, 0, len(es))
	for _, e := range es {
		if e.StaffID == staffID && e.Date == date && e.Slot == slot {
			continue
		}
		out = append(out, e)
	}
	return out
}

// MatchShiftCode ค้นหาเวรจากรหัสที่พิมพ์ โดยดูตารางเวรพยาบาลก่อนแล้วจึงดู
// ตารางเวรผู้ช่วย (ตรรกะเดิมของหน้าตารางเวรค้นจากทั้งสองตารางรวมกัน)
func MatchShiftCode(code string) (ShiftDefinition, bool) {
	if s, ok := NurseShifts().FindByCode(code); ok {
		return s, true
	}
	return AssistantShifts().FindByCode(code)
}

// CommitCell บันทึกการแก้ไขช่องหนึ่งช่องลงใน entry list:
// ค่าว่างคือการลบ entry ออก ไม่ใช่การเก็บ entry เปล่า
// ข้อความอื่นจะถูก map เป็นรหัสเวรเมื่อตรงกับตารางเวร หรือเก็บเป็น other
// พร้อม customText เมื่อไม่ตรง
func CommitCell(es ScheduleEntries, staffID, date string, slot ShiftSlot, text string) ScheduleEntries {
	out := es.Remove(staffID, date, slot)

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return out
	}

	entry := ScheduleEntry{
		StaffID: staffID,
		Date:    date,
		Slot:    slot,
	}

	if shift, ok := MatchShiftCode(trimmed); ok {
		entry.ShiftID = shift.ID
	} else {
		entry.ShiftID = ShiftOther
		entry.CustomText = trimmed
	}

	// จัดรูปแบบสีอัตโนมัติสำหรับข้อความพิเศษ
	switch strings.ToUpper(trimmed) {
	case "O":
		entry.Formatting = &Formatting{TextColor: ColorRed, BackgroundColor: ColorWhite}
	case "VA":
		entry.Formatting = &Formatting{TextColor: ColorWhite, BackgroundColor: ColorRed}
	case "MB":
		entry.Formatting = &Formatting{TextColor: ColorBlack, BackgroundColor: ColorGreen}
	}

	return append(out, entry)
}

// DisplayText คือข้อความที่แสดงในช่องตาราง: customText ของ entry แบบ other
// หรือรหัสเวรจากตารางเวร เมื่อ shiftId ไม่อยู่ในตารางเวรจะคืน ok = false
// และผู้เรียกต้องข้ามช่องนั้นไปโดยไม่ error
func DisplayText(e *ScheduleEntry, catalog ShiftCatalog) (string, bool) {
	shift, ok := catalog.FindByID(e.ShiftID)
	if !ok {
		return "", false
	}
	if shift.ID == ShiftOther && e.CustomText != "" {
		return e.CustomText, true
	}
	return shift.DisplayCode, true
}

// EffectiveTextColor คือสีตัวอักษรที่ใช้จริง: สีที่ผู้ใช้กำหนดใน entry
// หรือสีมาตรฐานของเวรเมื่อไม่ได้กำหนด
func EffectiveTextColor(e *ScheduleEntry, shift ShiftDefinition) string {
	if e.Formatting != nil && e.Formatting.TextColor != "" {
		return e.Formatting.TextColor
	}
	return shift.Color
}

// CleanScheduleEntries ทำความสะอาดข้อมูลก่อนเขียนลง store ตามสัญญาของ
// store interface: ตัด formatting ที่ว่างเปล่าออกทั้ง object
func CleanScheduleEntries(es ScheduleEntries) ScheduleEntries {
	out := make(ScheduleEntries, 0, len(es))
	for _, e := range es {
		if e.Formatting.IsEmpty() {
			e.Formatting = nil
		}
		out = append(out, e)
	}
	return out
}
