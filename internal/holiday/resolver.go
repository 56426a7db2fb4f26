package holiday

import (
	"fmt"
	"strings"
	"time"

	"github.com/icu-ward-dev/shift-manager/backend/internal/domain"
)

// fixedHolidays คือวันหยุดราชการไทยที่ตรงวันเดิมทุกปี (MM-DD -> ชื่อ)
var fixedHolidays = map[string]string{
	// มกราคม
	"01-01": "วันขึ้นปีใหม่",

	// เมษายน
	"04-06": "วันจักรี",
	"04-13": "วันสงกรานต์",
	"04-14": "วันสงกรานต์",
	"04-15": "วันสงกรานต์",

	// พฤษภาคม
	"05-01": "วันแรงงานแห่งชาติ",
	"05-05": "วันฉัตรมงคล",

	// กรกฎาคม
	"07-28": "วันเฉลิมพระชนมพรรษาพระบาทสมเด็จพระเจ้าอยู่หัว",

	// สิงหาคม
	"08-12": "วันแม่แห่งชาติ",

	// ตุลาคม
	"10-23": "วันปิยมหาราช",

	// ธันวาคม
	"12-05": "วันพ่อแห่งชาติ",
	"12-10": "วันรัฐธรรมนูญ",
}

// lunarHolidays คือวันหยุดทางพุทธศาสนาซึ่งเลื่อนตามปฏิทินจันทรคติ
// ระบบไม่คำนวณเอง แต่เก็บเป็นตารางรายปี (ปีที่ไม่อยู่ในตารางจะไม่มี
// วันหยุดพุทธเลย ซึ่งเป็นข้อจำกัดที่ยอมรับ ไม่ใช่บั๊ก)
//
// วันที่ตรงกับเสาร์อาทิตย์ถูกตัดออกจากตารางตั้งแต่ต้นทาง เพราะเสาร์อาทิตย์
// เป็นวันหยุดอยู่แล้วจึงไม่บันทึกซ้ำ:
//   2024: มาฆบูชา (24 ก.พ. เสาร์), อาสาฬหบูชา (20 ก.ค. เสาร์),
//         เข้าพรรษา (21 ก.ค. อาทิตย์)
//   2025: เข้าพรรษา (12 ก.ค. เสาร์)
var lunarHolidays = map[int]map[string]string{
	2024: {
		"05-22": "วันวิสาขบูชา",
		"10-18": "วันออกพรรษา",
	},
	2025: {
		"02-13": "วันมาฆบูชา",
		"05-13": "วันวิสาขบูชา",
		"07-11": "วันอาสาฬหบูชา",
		"10-09": "วันออกพรรษา",
	},
}

// Resolver รวมวันหยุดราชการ วันหยุดพุทธ และวันหยุดที่ผู้ดูแลจัดการเอง
// ให้เป็นชุดวันหยุดของเดือนหนึ่ง ๆ
type Resolver struct {
	fixed map[string]string
	lunar map[int]map[string]string
}

func NewResolver() *Resolver {
	return &Resolver{
		fixed: fixedHolidays,
		lunar: lunarHolidays,
	}
}

// publicHolidays คืนวันหยุดราชการ (รวมวันหยุดพุทธ) ของเดือนที่ขอ
func (r *Resolver) publicHolidays(year int, month time.Month) []domain.Holiday {
	monthPrefix := fmt.Sprintf("%02d-", int(month))

	holidays := make([]domain.Holiday, 0)
	appendMatching := func(table map[string]string) {
		for monthDay, name := range table {
			if strings.HasPrefix(monthDay, monthPrefix) {
				holidays = append(holidays, domain.Holiday{
					Date:     fmt.Sprintf("%04d-%s", year, monthDay),
					Name:     name,
					Category: domain.HolidayPublic,
				})
			}
		}
	}

	appendMatching(r.fixed)
	appendMatching(r.lunar[year])

	return holidays
}

// Resolve คืนชุดวันหยุดที่มองเห็นได้ของเดือน: วันหยุดราชการและวันหยุดพุทธ
// หักด้วยวันที่ผู้ดูแลซ่อน บวกด้วยวันหยุดที่ผู้ดูแลเพิ่มเอง โดยตัดรายการ
// ที่ (date, name) ซ้ำกันออก record ซ่อน (tombstone) จะไม่ปรากฏในผลลัพธ์
func (r *Resolver) Resolve(year int, month time.Month, customs []domain.CustomHoliday) []domain.Holiday {
	monthPrefix := fmt.Sprintf("%04d-%02d-", year, int(month))

	// แยกวันหยุดที่ผู้ดูแลจัดการของเดือนนี้เป็นสองกลุ่ม: การซ่อนวันหยุด
	// ราชการ และวันหยุดจริง
	hiddenDates := make(map[string]bool)
	visibleCustoms := make([]domain.Holiday, 0)
	for _, c := range customs {
		if !strings.HasPrefix(c.Date, monthPrefix) {
			continue
		}
		if c.IsTombstone() {
			hiddenDates[c.Date] = true
			continue
		}
		visibleCustoms = append(visibleCustoms, domain.Holiday{
			Date:     c.Date,
			Name:     c.Name,
			Category: domain.HolidayCustom,
		})
	}

	merged := make([]domain.Holiday, 0)
	seen := make(map[string]bool)
	appendUnique := func(h domain.Holiday) {
		// ตัดซ้ำด้วยคู่ (date, name) ไม่ใช่ date เดี่ยว ๆ เพราะวันเดียวกัน
		// อาจมีวันหยุดคนละชื่อจากคนละแหล่งได้
		key := h.Date + "\x00" + h.Name
		if seen[key] {
			return
		}
		seen[key] = true
		merged = append(merged, h)
	}

	for _, h := range r.publicHolidays(year, month) {
		if hiddenDates[h.Date] {
			continue
		}
		appendUnique(h)
	}
	for _, h := range visibleCustoms {
		appendUnique(h)
	}

	return merged
}

// NameIndex สร้าง lookup จากวันที่ไปยังชื่อวันหยุดสำหรับการแสดงผล
// วันที่ที่มีหลายชื่อจะเหลือชื่อที่ถูกเพิ่มทีหลัง
func NameIndex(holidays []domain.Holiday) map[string]string {
	index := make(map[string]string, len(holidays))
	for _, h := range holidays {
		index[h.Date] = h.Name
	}
	return index
}

// IsWeekend รายงานว่า date (YYYY-MM-DD) ตรงกับเสาร์หรืออาทิตย์หรือไม่
// วันที่ parse ไม่ได้ถือว่าไม่ใช่เสาร์อาทิตย์
func IsWeekend(date string) bool {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}
