package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/icu-ward-dev/shift-manager/backend/internal/domain"
)

func validSlot(slot domain.ShiftSlot) bool {
	switch slot {
	case domain.SlotNone, domain.SlotMorning, domain.SlotAfternoon, domain.SlotNight:
		return true
	}
	return false
}

func (h *Handler) GetScheduleDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.repository.GetScheduleDraft()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "ร่างตารางเวร", draft)
}

// SaveScheduleDraft แทนที่ร่างตารางเวรทั้งฉบับ การบันทึกไม่ merge รายช่อง
func (h *Handler) SaveScheduleDraft(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Schedule       domain.ScheduleEntries `json:"schedule"`
		CustomHolidays []domain.CustomHoliday `json:"customHolidays"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	for _, e := range req.Schedule {
		if e.StaffID == "" || e.Date == "" || e.ShiftID == "" || !validSlot(e.Slot) {
			h.errorResponse(w, r, "ข้อมูลตารางเวรไม่ถูกต้อง")
			return
		}
	}

	draft := &domain.ScheduleDraft{
		Schedule:       req.Schedule,
		CustomHolidays: req.CustomHolidays,
	}
	if draft.Schedule == nil {
		draft.Schedule = domain.ScheduleEntries{}
	}
	if draft.CustomHolidays == nil {
		draft.CustomHolidays = []domain.CustomHoliday{}
	}

	if err := h.repository.SaveScheduleDraft(draft); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "บันทึกร่างตารางเวรแล้ว", draft)
}

// CommitScheduleCell บันทึกการแก้ไขช่องเดียวลงในร่าง โดยโหลดร่างปัจจุบัน
// แก้ แล้วบันทึกกลับทั้งฉบับ
func (h *Handler) CommitScheduleCell(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StaffID string           `json:"staffId" validate:"required"`
		Date    string           `json:"date" validate:"required,datetime=2006-01-02"`
		Slot    domain.ShiftSlot `json:"shiftSlot"`
		Text    string           `json:"text"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if !validSlot(req.Slot) {
		h.errorResponse(w, r, "ช่องเวรไม่ถูกต้อง")
		return
	}
	if _, ok := h.roster.Find(req.StaffID); !ok {
		h.errorResponse(w, r, "ไม่พบรหัสเจ้าหน้าที่นี้ในรายชื่อ")
		return
	}

	draft, err := h.repository.GetScheduleDraft()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	draft.Schedule = domain.CommitCell(draft.Schedule, req.StaffID, req.Date, req.Slot, req.Text)

	if err := h.repository.SaveScheduleDraft(draft); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "บันทึกช่องตารางเวรแล้ว", draft.Schedule.Find(req.StaffID, req.Date, req.Slot))
}

func (h *Handler) AddCustomHoliday(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date" validate:"required,datetime=2006-01-02"`
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	draft, err := h.repository.GetScheduleDraft()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	custom := domain.NewCustomHoliday(req.Date, req.Name)
	draft.CustomHolidays = append(draft.CustomHolidays, custom)

	if err := h.repository.SaveScheduleDraft(draft); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "เพิ่มวันหยุดแล้ว", custom)
}

// HidePublicHoliday ซ่อนวันหยุดราชการหนึ่งวันด้วย record ซ่อน ไม่แตะ
// ตารางวันหยุดราชการเอง
func (h *Handler) HidePublicHoliday(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date" validate:"required,datetime=2006-01-02"`
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	draft, err := h.repository.GetScheduleDraft()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	tomb := domain.NewTombstone(req.Date, req.Name)
	draft.CustomHolidays = append(draft.CustomHolidays, tomb)

	if err := h.repository.SaveScheduleDraft(draft); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "ซ่อนวันหยุดแล้ว", tomb)
}

func (h *Handler) DeleteCustomHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.errorResponse(w, r, "รหัสวันหยุดไม่ถูกต้อง")
		return
	}

	draft, err := h.repository.GetScheduleDraft()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	remaining := domain.RemoveCustomHoliday(draft.CustomHolidays, id)
	if len(remaining) == len(draft.CustomHolidays) {
		h.errorResponse(w, r, "ไม่พบวันหยุดนี้")
		return
	}
	draft.CustomHolidays = remaining

	if err := h.repository.SaveScheduleDraft(draft); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "ลบวันหยุดแล้ว", nil)
}

func (h *Handler) GetAssignmentsDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.repository.GetAssignmentsDraft()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "ร่างการมอบหมายงาน", draft)
}

func (h *Handler) SaveAssignmentsDraft(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Assignments []domain.WorkAssignment `json:"assignments"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	for _, a := range req.Assignments {
		if a.StaffID == "" || a.Date == "" || !validSlot(a.Shift) {
			h.errorResponse(w, r, "ข้อมูลการมอบหมายงานไม่ถูกต้อง")
			return
		}
	}

	draft := &domain.AssignmentsDraft{
		Assignments: req.Assignments,
	}
	if draft.Assignments == nil {
		draft.Assignments = []domain.WorkAssignment{}
	}

	if err := h.repository.SaveAssignmentsDraft(draft); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "บันทึกร่างการมอบหมายงานแล้ว", draft)
}

// ReplaceAssignmentsBatch แทนที่การมอบหมายงานของ (วันที่, เวร) หนึ่งชุด
// ในร่างด้วยชุดใหม่ทั้งชุด
func (h *Handler) ReplaceAssignmentsBatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date        string                  `json:"date" validate:"required,datetime=2006-01-02"`
		Shift       domain.ShiftSlot        `json:"shift" validate:"required"`
		Assignments []domain.WorkAssignment `json:"assignments"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if !validSlot(req.Shift) || req.Shift == domain.SlotNone {
		h.errorResponse(w, r, "ช่วงเวรไม่ถูกต้อง")
		return
	}

	for _, a := range req.Assignments {
		if a.StaffID == "" {
			continue
		}
		if _, ok := h.roster.Find(a.StaffID); !ok {
			h.errorResponse(w, r, "ไม่พบรหัสเจ้าหน้าที่ "+a.StaffID+" ในรายชื่อ")
			return
		}
	}

	draft, err := h.repository.GetAssignmentsDraft()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	draft.Assignments = domain.ReplaceShiftAssignments(draft.Assignments, req.Date, req.Shift, req.Assignments)

	if err := h.repository.SaveAssignmentsDraft(draft); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "บันทึกการมอบหมายงานแล้ว", draft)
}
