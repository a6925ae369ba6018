package models

import "time"

// Registration is one accepted email submission. Rows are append-only.
type Registration struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

// TableName pins the table created by repository.EnsureSchema.
func (Registration) TableName() string { return "registrations" }
