package domain

import "time"

// เอกสารใน document store มีสามฉบับ คีย์ตามชื่อตรรกะ:
// drafts/schedule, drafts/assignments และ published/current
// การบันทึกแทนที่เอกสารทั้งฉบับเสมอ ไม่มีการ merge รายฟิลด์
const (
	CollectionDrafts    = "drafts"
	CollectionPublished = "published"

	KeySchedule    = "schedule"
	KeyAssignments = "assignments"
	KeyCurrent     = "current"
)

// ScheduleDraft คือร่างตารางเวรพร้อมวันหยุดที่ผู้ดูแลกำหนดเอง
// เห็นได้เฉพาะผู้ดูแลระบบ
type ScheduleDraft struct {
	Schedule       ScheduleEntries `json:"schedule"`
	CustomHolidays []CustomHoliday `json:"customHolidays"`
	SavedAt        time.Time       `json:"savedAt"`
}

// AssignmentsDraft คือร่างตารางมอบหมายงาน
type AssignmentsDraft struct {
	Assignments []WorkAssignment `json:"assignments"`
	SavedAt     time.Time        `json:"savedAt"`
}

// PublishedSnapshot คือสำเนาที่เผยแพร่แล้วของทั้งสามชุดข้อมูล เจ้าหน้าที่
// ทุกคนที่ล็อกอินแล้วอ่านได้ และจะเปลี่ยนก็ต่อเมื่อมีการเผยแพร่ครั้งถัดไป
type PublishedSnapshot struct {
	PublishedSchedule       ScheduleEntries  `json:"publishedSchedule"`
	PublishedAssignments    []WorkAssignment `json:"publishedAssignments"`
	PublishedCustomHolidays []CustomHoliday  `json:"publishedCustomHolidays"`
	PublishedAt             time.Time        `json:"publishedAt"`
}

// BuildPublishedSnapshot ประกอบ snapshot จากร่างทั้งสองฉบับ เนื้อหา
// ขึ้นกับร่างเท่านั้น เผยแพร่ซ้ำโดยร่างไม่เปลี่ยนจะได้ snapshot เดิม
// ต่างกันแค่ PublishedAt
func BuildPublishedSnapshot(schedule *ScheduleDraft, assignments *AssignmentsDraft, at time.Time) *PublishedSnapshot {
	return &PublishedSnapshot{
		PublishedSchedule:       CleanScheduleEntries(schedule.Schedule),
		PublishedAssignments:    CleanAssignments(assignments.Assignments),
		PublishedCustomHolidays: schedule.CustomHolidays,
		PublishedAt:             at,
	}
}
