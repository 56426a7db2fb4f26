package seed

import (
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/icu-ward-dev/shift-manager/backend/internal/domain"
	"github.com/icu-ward-dev/shift-manager/backend/internal/repository"
	"github.com/icu-ward-dev/shift-manager/backend/internal/schedule"
)

// SeedStaffAccounts ลงทะเบียนบัญชีให้เจ้าหน้าที่ทุกคนใน roster ด้วย
// รหัสผ่านตั้งต้นเดียวกัน บัญชีที่มีอยู่แล้วข้ามไป
func SeedStaffAccounts(r *repository.Repository, roster domain.Roster, password string) {
	cnt := 0
	for _, staff := range roster {
		account := &domain.StaffAccount{
			StaffID:  staff.ID,
			Password: password,
		}

		if err := r.CreateStaffAccount(account); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.ConstraintName == "staff_accounts_pkey" {
				continue
			}
			slog.Error("ลงทะเบียนบัญชีไม่สำเร็จ", "staffId", staff.ID, "error", err)
			continue
		}

		cnt++
	}

	slog.Info("ลงทะเบียนบัญชีเจ้าหน้าที่แล้ว", "count", cnt)
}

// SeedDemoDraft สร้างร่างตารางเวรตัวอย่างของเดือนปัจจุบันสำหรับทดลองระบบ
// ทับร่างเดิมทั้งฉบับ
func SeedDemoDraft(r *repository.Repository, roster domain.Roster) {
	now := time.Now()
	year, month := now.Year(), now.Month()
	dates := schedule.MonthDates(year, month)

	// หมุนเวรแบบง่าย ๆ ให้พอมีข้อมูลครบทุกประเภท
	rotation := []string{
		domain.ShiftMorning,
		domain.ShiftAfternoon,
		domain.ShiftNight,
		domain.ShiftOff,
		domain.ShiftMorningAfternoon,
	}

	entries := make(domain.ScheduleEntries, 0)
	for i, staff := range roster {
		for j, date := range dates {
			shiftID := rotation[(i+j)%len(rotation)]

			slot := domain.SlotMorning
			if staff.IsPartTime {
				slot = domain.SlotNone
			} else if shiftID == domain.ShiftAfternoon {
				slot = domain.SlotAfternoon
			}

			entries = append(entries, domain.ScheduleEntry{
				StaffID: staff.ID,
				Date:    date,
				Slot:    slot,
				ShiftID: shiftID,
			})
		}
	}

	draft := &domain.ScheduleDraft{
		Schedule:       entries,
		CustomHolidays: []domain.CustomHoliday{},
	}

	if err := r.SaveScheduleDraft(draft); err != nil {
		slog.Error("บันทึกร่างตารางเวรตัวอย่างไม่สำเร็จ", "error", err)
		return
	}

	slog.Info("บันทึกร่างตารางเวรตัวอย่างแล้ว", "entries", len(entries))
}
