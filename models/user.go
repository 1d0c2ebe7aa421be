package models

import "time"

const (
	RoleStudent = "student"
	RoleWasher  = "washer"
	RoleAdmin   = "admin"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Email       string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password    string    `gorm:"type:varchar(255);not null" json:"-"`
	Role        string    `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	HostelBlock string    `gorm:"type:varchar(50)" json:"hostel_block"`
	RoomNumber  string    `gorm:"type:varchar(20)" json:"room_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsEmployee reports whether the user may work the order queue.
// Washers and admins are collectively "employees".
func (u *User) IsEmployee() bool {
	return u.Role == RoleWasher || u.Role == RoleAdmin
}
