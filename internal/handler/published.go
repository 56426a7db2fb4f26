package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/icu-ward-dev/shift-manager/backend/internal/domain"
	"github.com/icu-ward-dev/shift-manager/backend/internal/export"
	"github.com/icu-ward-dev/shift-manager/backend/internal/schedule"
)

const publishedCacheKey = "published_current"

// Publish รวมร่างตารางเวรและร่างการมอบหมายงานเป็น snapshot เผยแพร่
// ฉบับเดียว ล้าง cache แล้วส่งอีเมลแจ้งเตือนผ่าน message queue
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.repository.PublishDrafts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// ล้าง cache เพื่อให้การอ่านครั้งถัดไปเห็น snapshot ใหม่ทันที
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationExpiration)*time.Minute)
	defer cancel()

	if err := h.redisClient.Del(ctx, publishedCacheKey).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// แจ้งเตือนทางอีเมลเป็นงานของ consumer แยกต่างหาก ที่นี่แค่ส่งเข้า queue
	for _, recipient := range h.config.Email.Recipients {
		mailMessage := domain.MailMessage{
			Type: "schedule_published",
			To:   recipient,
			Data: domain.SchedulePublishedMailData{
				PublishedAt: snapshot.PublishedAt.Format(time.RFC3339),
				EntryCount:  len(snapshot.PublishedSchedule),
			},
		}

		mailData, err := json.Marshal(mailMessage)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		pubCtx, pubCancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
		err = h.notifyChannel.PublishWithContext(
			pubCtx,
			"",
			"notify_queue",
			true,
			false,
			amqp.Publishing{
				ContentType: "application/json",
				Body:        mailData,
			},
		)
		pubCancel()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "เผยแพร่ตารางเวรแล้ว", snapshot)
}

// loadPublished อ่าน snapshot ผ่าน cache: ลอง redis ก่อน พลาดจึงอ่านจาก
// ฐานข้อมูลแล้วเติม cache กลับ
func (h *Handler) loadPublished(r *http.Request) (*domain.PublishedSnapshot, bool, error) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Minute)
	defer cancel()

	cached, err := h.redisClient.Get(ctx, publishedCacheKey).Bytes()
	if err == nil {
		snapshot := &domain.PublishedSnapshot{}
		if err := json.Unmarshal(cached, snapshot); err == nil {
			return snapshot, true, nil
		}
		// cache เสีย อ่านจากฐานข้อมูลแทน
	} else if err != redis.Nil {
		return nil, false, err
	}

	snapshot, found, err := h.repository.GetPublishedSnapshot()
	if err != nil {
		return nil, false, err
	}
	if !found {
		return snapshot, false, nil
	}

	doc, err := json.Marshal(snapshot)
	if err != nil {
		return nil, false, err
	}
	if err := h.redisClient.Set(ctx, publishedCacheKey, doc, time.Duration(h.config.Redis.SnapshotExpiration)*time.Second).Err(); err != nil {
		return nil, false, err
	}

	return snapshot, true, nil
}

func (h *Handler) GetPublished(w http.ResponseWriter, r *http.Request) {
	snapshot, found, err := h.loadPublished(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !found {
		h.successResponse(w, r, "ยังไม่มีตารางเวรที่เผยแพร่", nil)
		return
	}

	h.successResponse(w, r, "ตารางเวรที่เผยแพร่แล้ว", snapshot)
}

type staffSummary struct {
	Staff       domain.Staff `json:"staff"`
	TotalShifts int          `json:"totalShifts"`
	Overtime    int          `json:"overtimeShifts"`
	ShiftPay    int          `json:"shiftPayShifts"`
}

// GetPublishedSummary คืนยอดสรุปของเดือน: ยอดรายวันต่อประเภทเวร ยอดราย
// เดือนต่อเจ้าหน้าที่ และจำนวนวันทำการ
func (h *Handler) GetPublishedSummary(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	snapshot, found, err := h.loadPublished(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !found {
		h.successResponse(w, r, "ยังไม่มีตารางเวรที่เผยแพร่", nil)
		return
	}

	entries := snapshot.PublishedSchedule
	holidays := h.resolver.Resolve(year, month, snapshot.PublishedCustomHolidays)

	nurses := h.roster.ByClass(domain.ClassNurse)
	assistants := h.roster.ByClass(domain.ClassAssistant)

	perDay := make(map[string]map[string]schedule.DayCounts)
	for _, date := range schedule.MonthDates(year, month) {
		perDay[date] = map[string]schedule.DayCounts{
			"nurse":     h.aggregator.DayShiftCounts(nurses, date, entries),
			"assistant": h.aggregator.DayShiftCounts(assistants, date, entries),
		}
	}

	perStaff := make([]staffSummary, 0, len(h.roster))
	for _, staff := range h.roster {
		perStaff = append(perStaff, staffSummary{
			Staff:       staff,
			TotalShifts: h.aggregator.TotalShifts(staff.ID, year, month, entries),
			Overtime:    h.aggregator.OvertimeShifts(staff.ID, year, month, entries),
			ShiftPay:    h.aggregator.ShiftPayShifts(staff.ID, year, month, entries),
		})
	}

	h.successResponse(w, r, "สรุปตารางเวรของเดือน", map[string]any{
		"perDay":    perDay,
		"perStaff":  perStaff,
		"dayCounts": schedule.MonthlyDayCounts(year, month, holidays),
		"holidays":  holidays,
	})
}

type onShiftStaff struct {
	Staff      domain.Staff           `json:"staff"`
	Assignment *domain.WorkAssignment `json:"assignment,omitempty"`
}

// GetStaffOnShift คืนรายชื่อเจ้าหน้าที่ที่อยู่เวรของ (วันที่, ช่วงเวร)
// พร้อม record มอบหมายงานของแต่ละคนถ้ามี
func (h *Handler) GetStaffOnShift(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		h.errorResponse(w, r, "วันที่ไม่ถูกต้อง")
		return
	}

	category := domain.ShiftSlot(r.URL.Query().Get("shift"))
	if category != domain.SlotMorning && category != domain.SlotAfternoon && category != domain.SlotNight {
		h.errorResponse(w, r, "ช่วงเวรไม่ถูกต้อง")
		return
	}

	snapshot, found, err := h.loadPublished(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !found {
		h.successResponse(w, r, "ยังไม่มีตารางเวรที่เผยแพร่", []onShiftStaff{})
		return
	}

	onShift := make([]onShiftStaff, 0)
	for _, staff := range h.aggregator.StaffOnShift(date, category, snapshot.PublishedSchedule) {
		item := onShiftStaff{Staff: staff}
		for i := range snapshot.PublishedAssignments {
			a := &snapshot.PublishedAssignments[i]
			if a.Date == date && a.Shift == category && a.StaffID == staff.ID {
				item.Assignment = a
				break
			}
		}
		onShift = append(onShift, item)
	}

	h.successResponse(w, r, "เจ้าหน้าที่ที่อยู่เวร", onShift)
}

// GetMySchedule คืนเวรและการมอบหมายงานของเดือนที่ขอ เฉพาะของผู้ที่
// ล็อกอินอยู่ ผู้ดูแลระบบระบุ ?staffId= เพื่อดูของคนอื่นได้
func (h *Handler) GetMySchedule(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	monthPrefix := fmt.Sprintf("%04d-%02d-", year, int(month))

	staffID := r.Context().Value(SubCtxKey).(string)
	role := domain.Role(r.Context().Value(RoleCtxKey).(string))
	if role == domain.RoleAdmin {
		staffID = r.URL.Query().Get("staffId")
	}

	staff, ok := h.roster.Find(staffID)
	if !ok {
		h.errorResponse(w, r, "ไม่พบรหัสเจ้าหน้าที่นี้ในรายชื่อ")
		return
	}

	snapshot, found, err := h.loadPublished(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !found {
		h.successResponse(w, r, "ยังไม่มีตารางเวรที่เผยแพร่", nil)
		return
	}

	entries := make(domain.ScheduleEntries, 0)
	for _, e := range snapshot.PublishedSchedule {
		if e.StaffID == staffID && strings.HasPrefix(e.Date, monthPrefix) {
			entries = append(entries, e)
		}
	}

	assignments := make([]domain.WorkAssignment, 0)
	for _, a := range snapshot.PublishedAssignments {
		if a.StaffID == staffID && strings.HasPrefix(a.Date, monthPrefix) {
			assignments = append(assignments, a)
		}
	}

	h.successResponse(w, r, "ตารางเวรของฉัน", map[string]any{
		"staff":       staff,
		"schedule":    entries,
		"assignments": assignments,
		"publishedAt": snapshot.PublishedAt,
	})
}

// ExportPublished ส่งออกตารางเวรของเดือนเป็นไฟล์ xlsx
func (h *Handler) ExportPublished(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	snapshot, found, err := h.loadPublished(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !found {
		h.errorResponse(w, r, "ยังไม่มีตารางเวรที่เผยแพร่")
		return
	}

	holidays := h.resolver.Resolve(year, month, snapshot.PublishedCustomHolidays)

	f, err := export.MonthWorkbook(h.roster, snapshot, holidays, year, month)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("schedule_%04d_%02d.xlsx", year, int(month))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := f.Write(w); err != nil {
		h.logInternalServerError(r, err)
	}
}
