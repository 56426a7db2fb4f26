package domain

import "github.com/google/uuid"

// ข้อมูลอ้างอิงสำหรับฟอร์มมอบหมายงาน
var (
	BedAreas = []string{"B1-B3", "B4-Y2", "B5-B7", "Y3-Y4", "B1-B2", "B3-B4", "Y1-Y2"}
	Duties   = []string{"Productivity", "ลงทะเบียน / จองเตียง", "Pipe line", "Check Delfib", "ยา Stock", "รถ Emergency"}
	ERTRoles = []string{"หัวหน้าแผน", "เคลื่อนย้ายกู้ชีพ", "เช็คชีวิตติดต่อ", "ดับเพลิง", "ช่างและเส้นทาง"}
	Teams    = []string{"ทีม A", "ทีม B"}
)

// WorkAssignment คือการมอบหมายงานของเจ้าหน้าที่หนึ่งคนในหนึ่งวันหนึ่งเวร
// (unique ตาม date, shift, staffId) ฟิลด์ BedArea/Duties/DrugSupervision
// ใช้กับพยาบาล Team ใช้กับผู้ช่วย ส่วน ERT ใช้ได้กับทุกประเภท
type WorkAssignment struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"` // YYYY-MM-DD
	Shift           ShiftSlot `json:"shift"`
	StaffID         string    `json:"staffId"`
	BedArea         string    `json:"bedArea,omitempty"`
	Duties          []string  `json:"duties,omitempty"`
	DrugSupervision bool      `json:"drugSupervision,omitempty"`
	ERT             string    `json:"ert,omitempty"`
	Team            string    `json:"team,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// NewAssignmentID สร้าง id สำหรับ record มอบหมายงานใหม่
func NewAssignmentID() string {
	return uuid.NewString()
}

// ReplaceShiftAssignments บันทึกชุดมอบหมายงานของ (วันที่, เวร) หนึ่งชุด:
// ลบ record เดิมของวันและเวรนั้นทั้งหมดก่อน แล้วเพิ่ม record ใหม่ให้ทุกคน
// ในชุดที่ส่งมา (คนที่ไม่ได้กรอกอะไรเลยก็ยังถูกบันทึก ซึ่งต่างจากการไม่มี
// record ที่แปลว่าไม่ได้รับมอบหมาย)
func ReplaceShiftAssignments(all []WorkAssignment, date string, shift ShiftSlot, batch []WorkAssignment) []WorkAssignment {
	out := make([]WorkAssignment, 0, len(all)+len(batch))
	for _, a := range all {
		if a.Date == date && a.Shift == shift {
			continue
		}
		out = append(out, a)
	}
	for _, a := range batch {
		if a.StaffID == "" {
			continue
		}
		a.Date = date
		a.Shift = shift
		if a.ID == "" {
			a.ID = NewAssignmentID()
		}
		out = append(out, a)
	}
	return out
}

// CleanAssignments ทำความสะอาดข้อมูลก่อนเขียนลง store: ตัด slice ว่างทิ้ง
// เพื่อให้ field ว่างถูก strip ออกตามสัญญาของ store interface
func CleanAssignments(as []WorkAssignment) []WorkAssignment {
	out := make([]WorkAssignment, 0, len(as))
	for _, a := range as {
		if len(a.Duties) == 0 {
			a.Duties = nil
		}
		out = append(out, a)
	}
	return out
}
