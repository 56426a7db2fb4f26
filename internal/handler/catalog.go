package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/icu-ward-dev/shift-manager/backend/internal/domain"
	"github.com/icu-ward-dev/shift-manager/backend/internal/schedule"
)

// parseYearMonth อ่าน query string ?year=YYYY&month=M ถ้าไม่ส่งมาใช้เดือน
// ปัจจุบัน
func parseYearMonth(r *http.Request) (int, time.Month, error) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, errors.New("ปีไม่ถูกต้อง")
		}
		year = y
	}
	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, errors.New("เดือนไม่ถูกต้อง")
		}
		month = time.Month(m)
	}

	return year, month, nil
}

func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "รายชื่อเจ้าหน้าที่", map[string]any{
		"nurses":     h.roster.ByClass(domain.ClassNurse),
		"assistants": h.roster.ByClass(domain.ClassAssistant),
	})
}

func (h *Handler) GetShiftCatalogs(w http.ResponseWriter, r *http.Request) {
	switch domain.StaffClass(r.URL.Query().Get("class")) {
	case domain.ClassNurse:
		h.successResponse(w, r, "ตารางเวรมาตรฐาน", domain.NurseShifts())
	case domain.ClassAssistant:
		h.successResponse(w, r, "ตารางเวรมาตรฐาน", domain.AssistantShifts())
	case "":
		h.successResponse(w, r, "ตารางเวรมาตรฐาน", map[string]any{
			"nurse":     domain.NurseShifts(),
			"assistant": domain.AssistantShifts(),
		})
	default:
		h.errorResponse(w, r, "ประเภทเจ้าหน้าที่ไม่ถูกต้อง")
	}
}

// GetHolidays คืนวันหยุดของเดือน scope=published ใช้วันหยุดที่ผู้ดูแล
// จัดการใน snapshot ที่เผยแพร่แล้ว นอกนั้นใช้ของร่างปัจจุบัน
func (h *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	var customs []domain.CustomHoliday
	switch r.URL.Query().Get("scope") {
	case "published":
		snapshot, _, err := h.repository.GetPublishedSnapshot()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		customs = snapshot.PublishedCustomHolidays
	case "", "draft":
		draft, err := h.repository.GetScheduleDraft()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		customs = draft.CustomHolidays
	default:
		h.errorResponse(w, r, "scope ไม่ถูกต้อง")
		return
	}

	holidays := h.resolver.Resolve(year, month, customs)
	counts := schedule.MonthlyDayCounts(year, month, holidays)

	h.successResponse(w, r, "วันหยุดของเดือน", map[string]any{
		"holidays":  holidays,
		"dayCounts": counts,
	})
}

func (h *Handler) GetAssignmentOptions(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "ตัวเลือกการมอบหมายงาน", map[string]any{
		"bedAreas": domain.BedAreas,
		"duties":   domain.Duties,
		"ertRoles": domain.ERTRoles,
		"teams":    domain.Teams,
	})
}
