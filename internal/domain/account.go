package domain

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// StaffAccount คือบัญชีล็อกอินของเจ้าหน้าที่ คีย์ด้วย staffId จาก roster
// รหัสผ่านเก็บและเทียบแบบ plaintext ตามระบบเดิม (เป็นช่องโหว่ที่รู้กันอยู่
// และคงไว้เพื่อความเข้ากันได้ ไม่ใช่ทางเลือกการออกแบบใหม่)
type StaffAccount struct {
	StaffID   string     `json:"staffId"`
	Password  string     `json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}
