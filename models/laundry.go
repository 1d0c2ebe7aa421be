package models

import "time"

type Laundry struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	UserID              uint           `gorm:"not null;index" json:"user_id"`
	User                User           `gorm:"foreignKey:UserID" json:"user"`
	AssignedToID        *uint          `gorm:"index" json:"assigned_to_id,omitempty"`
	AssignedTo          *User          `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
	Clothes             []ClothingItem `gorm:"foreignKey:LaundryID;constraint:OnDelete:CASCADE" json:"clothes"`
	Status              string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	RejectionReason     string         `gorm:"type:text" json:"rejection_reason,omitempty"`
	PickupDate          *time.Time     `json:"pickup_date,omitempty"`
	DeliveryDate        *time.Time     `json:"delivery_date,omitempty"`
	SpecialInstructions string         `gorm:"type:text" json:"special_instructions"`
	ActivityLog         []ActivityLog  `gorm:"foreignKey:LaundryID;constraint:OnDelete:CASCADE" json:"activity_log"`
	CreatedAt           time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"not null" json:"updated_at"`
}

type ClothingItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	LaundryID uint   `gorm:"not null;index" json:"laundry_id"`
	ItemType  string `gorm:"type:varchar(100);not null" json:"item_type"`
	Quantity  int    `gorm:"not null" json:"quantity"`
}

// ActivityLog rows are append-only. Every status mutation writes exactly one
// entry, including admin direct overrides; nothing updates or deletes them.
type ActivityLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	LaundryID   uint      `gorm:"not null;index" json:"laundry_id"`
	Status      string    `gorm:"type:varchar(20);not null" json:"status"`
	UpdatedByID uint      `gorm:"not null" json:"updated_by_id"`
	UpdatedBy   User      `gorm:"foreignKey:UpdatedByID" json:"updated_by"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
	Notes       string    `gorm:"type:text" json:"notes"`
}

// TotalQuantity sums item counts across the order.
func (l *Laundry) TotalQuantity() int {
	total := 0
	for _, item := range l.Clothes {
		total += item.Quantity
	}
	return total
}
