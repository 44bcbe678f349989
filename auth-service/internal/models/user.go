package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gymcore/gymcore/pkg/events"
	"gorm.io/gorm"
)

type Role string

const (
	RoleOwner        Role = "OWNER"
	RoleManager      Role = "MANAGER"
	RoleReceptionist Role = "RECEPTIONIST"
	RoleMember       Role = "MEMBER"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
)

// User is the identity record owned by the auth service.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:72;not null" json:"-"`
	FirstName    string    `gorm:"size:120" json:"firstName"`
	LastName     string    `gorm:"size:120" json:"lastName"`
	Role         Role      `gorm:"size:32;not null;index" json:"role"`
	GymID        *string   `gorm:"size:36" json:"gymId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}

	return
}

// CreatedEvent is the user.created payload for u.
func (u *User) CreatedEvent() events.UserCreated {
	evt := events.UserCreated{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
	}
	if u.GymID != nil {
		evt.GymID = *u.GymID
	}
	return evt
}
