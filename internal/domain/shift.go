package domain

// รหัสเวรทั้งหมดที่ระบบรู้จัก
const (
	ShiftMorning               = "morning"
	ShiftMorningSpecial        = "morning_special"
	ShiftAfternoon             = "afternoon"
	ShiftNight                 = "night"
	ShiftMorningAfternoon      = "morning_afternoon"
	ShiftNightAfternoon        = "night_afternoon"
	ShiftHousekeeping          = "housekeeping"
	ShiftHousekeepingAfternoon = "housekeeping_afternoon"
	ShiftTraining              = "training"
	ShiftNightTraining         = "night_training"
	ShiftOff                   = "off"
	ShiftVacation              = "vacation"
	// ShiftOther ใช้เมื่อข้อความที่พิมพ์ไม่ตรงกับรหัสเวรใดเลย
	// entry จะเก็บข้อความนั้นไว้ใน customText
	ShiftOther = "other"
)

// สีมาตรฐานที่ตรรกะการนับยอดอ้างถึง
const (
	ColorBlack   = "#000000"
	ColorWhite   = "#ffffff"
	ColorRed     = "#ff0000"
	ColorDarkRed = "#d32f2f"
	ColorGreen   = "#00ff00"
)

type ShiftDefinition struct {
	ID              string `json:"id"`
	DisplayCode     string `json:"displayCode"`
	Name            string `json:"name"`
	Color           string `json:"color"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

// ShiftCatalog คือตารางเวรมาตรฐานของเจ้าหน้าที่แต่ละประเภท
type ShiftCatalog []ShiftDefinition

func (c ShiftCatalog) FindByID(id string) (ShiftDefinition, bool) {
	for _, s := range c {
		if s.ID == id {
			return s, true
		}
	}
	return ShiftDefinition{}, false
}

func (c ShiftCatalog) FindByCode(code string) (ShiftDefinition, bool) {
	for _, s := range c {
		if s.DisplayCode == code {
			return s, true
		}
	}
	return ShiftDefinition{}, false
}

// NurseShifts คือตารางเวรของพยาบาล
func NurseShifts() ShiftCatalog {
	return ShiftCatalog{
		{ID: ShiftMorning, DisplayCode: "ช", Name: "เวรเช้า", Color: ColorBlack},
		{ID: ShiftMorningSpecial, DisplayCode: "ช*", Name: "เวรเช้า*", Color: ColorBlack, BackgroundColor: "#e3f2fd"},
		{ID: ShiftAfternoon, DisplayCode: "บ", Name: "เวรบ่าย", Color: ColorBlack},
		{ID: ShiftNight, DisplayCode: "ด", Name: "เวรดึก", Color: ColorBlack},
		{ID: ShiftMorningAfternoon, DisplayCode: "ชบ", Name: "เวรเช้าบ่าย", Color: ColorBlack},
		{ID: ShiftNightAfternoon, DisplayCode: "ดบ", Name: "เวรดึกบ่าย", Color: ColorBlack},
		{ID: ShiftTraining, DisplayCode: "อ", Name: "อบรม", Color: ColorBlack},
		{ID: ShiftNightTraining, DisplayCode: "ดอ", Name: "ดึกอบรม", Color: ColorBlack},
		{ID: ShiftOff, DisplayCode: "O", Name: "Off", Color: ColorWhite, BackgroundColor: "#f44336"},
		{ID: ShiftVacation, DisplayCode: "va", Name: "Vacation", Color: ColorWhite, BackgroundColor: ColorDarkRed},
		{ID: ShiftOther, DisplayCode: "อื่นๆ", Name: "อื่นๆ", Color: ColorBlack, BackgroundColor: "#ffeb3b"},
	}
}

// AssistantShifts คือตารางเวรของผู้ช่วย
func AssistantShifts() ShiftCatalog {
	return ShiftCatalog{
		{ID: ShiftMorning, DisplayCode: "ช", Name: "เวรเช้า", Color: ColorBlack},
		{ID: ShiftAfternoon, DisplayCode: "บ", Name: "เวรบ่าย", Color: ColorBlack},
		{ID: ShiftNight, DisplayCode: "ด", Name: "เวรดึก", Color: ColorBlack},
		{ID: ShiftMorningAfternoon, DisplayCode: "ชบ", Name: "เวรเช้าบ่าย", Color: ColorBlack},
		{ID: ShiftNightAfternoon, DisplayCode: "ดบ", Name: "เวรดึกบ่าย", Color: ColorBlack},
		{ID: ShiftHousekeeping, DisplayCode: "MB", Name: "แม่บ้าน", Color: ColorBlack},
		{ID: ShiftHousekeepingAfternoon, DisplayCode: "MBบ", Name: "แม่บ้านบ่าย", Color: ColorBlack},
		{ID: ShiftTraining, DisplayCode: "อ", Name: "อบรม", Color: ColorBlack},
		{ID: ShiftNightTraining, DisplayCode: "ดอ", Name: "ดึกอบรม", Color: ColorBlack},
		{ID: ShiftOff, DisplayCode: "O", Name: "Off", Color: ColorWhite, BackgroundColor: "#f44336"},
		{ID: ShiftVacation, DisplayCode: "va", Name: "Vacation", Color: ColorWhite, BackgroundColor: ColorDarkRed},
		{ID: ShiftOther, DisplayCode: "อื่นๆ", Name: "อื่นๆ", Color: ColorBlack, BackgroundColor: "#ffeb3b"},
	}
}

// CatalogFor เลือกตารางเวรตามประเภทเจ้าหน้าที่
func CatalogFor(class StaffClass) ShiftCatalog {
	if class == ClassNurse {
		return NurseShifts()
	}
	return AssistantShifts()
}
