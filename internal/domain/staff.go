package domain

type StaffClass string

const (
	ClassNurse     StaffClass = "nurse"
	ClassAssistant StaffClass = "assistant"
)

type Staff struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Class      StaffClass `json:"class"`
	IsPartTime bool       `json:"isPartTime,omitempty"`
}

// Roster คือรายชื่อเจ้าหน้าที่ของหอผู้ป่วย โหลดครั้งเดียวตอนเริ่มระบบ
// และไม่เปลี่ยนแปลงระหว่าง session
type Roster []Staff

func (r Roster) Find(id string) (Staff, bool) {
	for _, s := range r {
		if s.ID == id {
			return s, true
		}
	}
	return Staff{}, false
}

func (r Roster) ByClass(class StaffClass) []Staff {
	staff := make([]Staff, 0)
	for _, s := range r {
		if s.Class == class {
			staff = append(staff, s)
		}
	}
	return staff
}

// DefaultRoster คือรายชื่อเจ้าหน้าที่ชุดปัจจุบันของหอผู้ป่วย
func DefaultRoster() Roster {
	return Roster{
		// พยาบาล
		{ID: "n1", Name: "น.ส.ประนอม", Class: ClassNurse},
		{ID: "n2", Name: "นางสาวศิรินทรา", Class: ClassNurse},
		{ID: "n3", Name: "นางหทัยชนก", Class: ClassNurse},
		{ID: "n4", Name: "นางสาวโยธกา", Class: ClassNurse},
		{ID: "n5", Name: "นางสาวปาณิสรา", Class: ClassNurse},
		{ID: "n6", Name: "นางสาวขวัญเรือน", Class: ClassNurse},
		{ID: "n7", Name: "นางสาวสุวรรณา", Class: ClassNurse},
		{ID: "n8", Name: "นางสาวนฤมล", Class: ClassNurse},
		{ID: "n9", Name: "นางสาวอมลกานต์", Class: ClassNurse},
		{ID: "n10", Name: "นางสาวนนทิยา", Class: ClassNurse},
		{ID: "n11", Name: "นางสาวกรกนก", Class: ClassNurse},
		{ID: "n12", Name: "นางสาวสุรีรัตน์", Class: ClassNurse},
		{ID: "n13", Name: "นางสาวสุธิตรา", Class: ClassNurse},
		{ID: "n14", Name: "นางสาววิภาวี", Class: ClassNurse},
		{ID: "n15", Name: "นางสาวพณิดา", Class: ClassNurse},

		// ผู้ช่วยพยาบาลและผู้ช่วยเหลือคนไข้
		{ID: "a1", Name: "ภาณุวัฒน์", Class: ClassAssistant},
		{ID: "a2", Name: "สุกัญญา", Class: ClassAssistant},
		{ID: "a3", Name: "ณัทชกา", Class: ClassAssistant},
		{ID: "a4", Name: "ดวงแก้ว", Class: ClassAssistant},
		{ID: "a5", Name: "อรอุษา", Class: ClassAssistant},
		{ID: "a6", Name: "อัมพร", Class: ClassAssistant},

		// พาร์ทไทม์
		{ID: "a7", Name: "ดวงพร", Class: ClassAssistant, IsPartTime: true},
		{ID: "a8", Name: "กาญจนา", Class: ClassAssistant, IsPartTime: true},
		{ID: "a9", Name: "สาริสา", Class: ClassAssistant, IsPartTime: true},
		{ID: "a10", Name: "รุ้งจินดา", Class: ClassAssistant, IsPartTime: true},
	}
}
