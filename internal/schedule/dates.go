package schedule

import "time"

const dateLayout = "2006-01-02"

// MonthDates คืนวันที่ทุกวันของเดือนในรูป YYYY-MM-DD เรียงตามลำดับ
func MonthDates(year int, month time.Month) []string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	dates := make([]string, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}
	return dates
}

// DaysInMonth คืนจำนวนวันของเดือน
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
