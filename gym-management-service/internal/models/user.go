package models

import "time"

const RoleMember = "MEMBER"

// User is the local projection of an auth-service user. It is created by user.created
// events and never deleted by them. GymID is only set by joining a gym or by an event
// that carries one.
type User struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	FirstName string    `gorm:"size:120" json:"firstName"`
	LastName  string    `gorm:"size:120" json:"lastName"`
	Role      string    `gorm:"size:32;not null" json:"role"`
	GymID     *string   `gorm:"size:36;index" json:"gymId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
