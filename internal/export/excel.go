package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/icu-ward-dev/shift-manager/backend/internal/domain"
	"github.com/icu-ward-dev/shift-manager/backend/internal/holiday"
	"github.com/icu-ward-dev/shift-manager/backend/internal/schedule"
)

// MonthWorkbook สร้าง workbook ตารางเวรของเดือน: แถวละหนึ่งเจ้าหน้าที่
// คอลัมน์ละหนึ่งวัน เจ้าหน้าที่ประจำแสดงช่องเช้าและช่องบ่ายคั่นด้วย /
// พาร์ทไทม์แสดง entry แบบไม่ระบุ slot ผู้เรียกต้องเรียก Close เอง
func MonthWorkbook(roster domain.Roster, snapshot *domain.PublishedSnapshot, holidays []domain.Holiday, year int, month time.Month) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := fmt.Sprintf("%04d-%02d", year, int(month))
	f.SetSheetName("Sheet1", sheet)

	dates := schedule.MonthDates(year, month)
	holidayNames := holiday.NameIndex(holidays)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, closeOnError(f, err)
	}
	holidayStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FF0000"},
	})
	if err != nil {
		return nil, closeOnError(f, err)
	}

	// แถวหัวตาราง: ชื่อ ตามด้วยวันของเดือน
	if err := f.SetCellValue(sheet, "A1", "เจ้าหน้าที่"); err != nil {
		return nil, closeOnError(f, err)
	}
	for i, date := range dates {
		cell, err := excelize.CoordinatesToCellName(i+2, 1)
		if err != nil {
			return nil, closeOnError(f, err)
		}
		if err := f.SetCellValue(sheet, cell, date[8:]); err != nil {
			return nil, closeOnError(f, err)
		}

		style := headerStyle
		if holiday.IsWeekend(date) || holidayNames[date] != "" {
			style = holidayStyle
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return nil, closeOnError(f, err)
		}
	}

	startCell, _ := excelize.CoordinatesToCellName(1, 1)
	if err := f.SetCellStyle(sheet, startCell, startCell, headerStyle); err != nil {
		return nil, closeOnError(f, err)
	}

	for row, staff := range roster {
		nameCell, err := excelize.CoordinatesToCellName(1, row+2)
		if err != nil {
			return nil, closeOnError(f, err)
		}
		if err := f.SetCellValue(sheet, nameCell, staff.Name); err != nil {
			return nil, closeOnError(f, err)
		}

		catalog := domain.CatalogFor(staff.Class)
		for col, date := range dates {
			cell, err := excelize.CoordinatesToCellName(col+2, row+2)
			if err != nil {
				return nil, closeOnError(f, err)
			}
			if err := f.SetCellValue(sheet, cell, cellText(staff, date, snapshot.PublishedSchedule, catalog)); err != nil {
				return nil, closeOnError(f, err)
			}
		}
	}

	return f, nil
}

// cellText คือข้อความของช่อง (เจ้าหน้าที่, วัน) หนึ่งช่องในไฟล์ส่งออก
func cellText(staff domain.Staff, date string, entries domain.ScheduleEntries, catalog domain.ShiftCatalog) string {
	render := func(slot domain.ShiftSlot) string {
		entry := entries.Find(staff.ID, date, slot)
		if entry == nil {
			return ""
		}
		text, ok := domain.DisplayText(entry, catalog)
		if !ok {
			return ""
		}
		return text
	}

	if staff.IsPartTime {
		return render(domain.SlotNone)
	}

	morning := render(domain.SlotMorning)
	afternoon := render(domain.SlotAfternoon)
	if morning != "" && afternoon != "" {
		return morning + "/" + afternoon
	}
	return morning + afternoon
}

func closeOnError(f *excelize.File, err error) error {
	_ = f.Close()
	return err
}
