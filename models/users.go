package models

import "time"

// User -> akun staff/admin, tabel milik kolaborator autentikasi.
// Core hanya membaca role dari token, tidak pernah menyentuh tabel ini.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(255); not null" json:"name"`
	Email     string `gorm:"type:varchar(255); unique;not null" json:"email"`
	Password  string `gorm:"type:varchar(255); not null" json:"-"`
	Role      string `gorm:"type:varchar(255); not null" json:"role"` // admin, staff
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	ActivityLogin  = "LOGIN"
	ActivityLogout = "LOGOUT"
)

// ActivityEntry -> log aktivitas staff di key "activity_log",
// hanya 100 entry terakhir yang disimpan.
type ActivityEntry struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"createdAt"`
}
