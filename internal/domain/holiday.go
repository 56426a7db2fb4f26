package domain

import (
	"strconv"
	"strings"
	"time"
)

type HolidayCategory string

const (
	HolidayPublic HolidayCategory = "public"
	HolidayCustom HolidayCategory = "custom"
)

// Holiday คือวันหยุดหนึ่งวันในผลลัพธ์ของ resolver (ไม่รวมเสาร์อาทิตย์
// ซึ่งคำนวณแยกต่างหากเพราะมีบทบาทต่างกันในการนับวันทำการ)
type Holiday struct {
	Date     string          `json:"date"` // YYYY-MM-DD
	Name     string          `json:"name"`
	Category HolidayCategory `json:"category"`
}

// HiddenPrefix คือ sentinel นำหน้าชื่อ CustomHoliday ที่เป็น "การซ่อน"
// วันหยุดราชการ: record แบบนี้ไม่ใช่วันหยุดจริง แต่เป็นคำสั่งให้ตัด
// วันหยุดราชการในวันเดียวกันออกจากผลลัพธ์
const HiddenPrefix = "ซ่อน:"

type CustomHoliday struct {
	ID   string `json:"id"`
	Date string `json:"date"` // YYYY-MM-DD
	Name string `json:"name"`
	Type string `json:"type"` // เป็น "custom" เสมอ
}

// IsTombstone รายงานว่า record นี้เป็นการซ่อนวันหยุดราชการ ไม่ใช่วันหยุดจริง
func (c CustomHoliday) IsTombstone() bool {
	return strings.HasPrefix(c.Name, HiddenPrefix)
}

// NewCustomHoliday สร้างวันหยุดที่ผู้ดูแลเพิ่มเอง id มาจาก timestamp
// ตามพฤติกรรมเดิมของระบบ
func NewCustomHoliday(date, name string) CustomHoliday {
	return CustomHoliday{
		ID:   strconv.FormatInt(time.Now().UnixMilli(), 10),
		Date: date,
		Name: strings.TrimSpace(name),
		Type: "custom",
	}
}

// NewTombstone สร้าง record ซ่อนวันหยุดราชการในวันที่กำหนด โดยไม่แก้ไข
// ตารางวันหยุดราชการเอง
func NewTombstone(date, name string) CustomHoliday {
	return CustomHoliday{
		ID:   "hidden_" + date + "_" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		Date: date,
		Name: HiddenPrefix + " " + name,
		Type: "custom",
	}
}

// RemoveCustomHoliday ตัด record ออกตาม id
func RemoveCustomHoliday(hs []CustomHoliday, id string) []CustomHoliday {
	out := make([]CustomHoliday, 0, len(hs))
	for _, h := range hs {
		if h.ID == id {
			continue
		}
		out = append(out, h)
	}
	return out
}
