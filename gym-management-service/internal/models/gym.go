package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Gym struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Name       string    `gorm:"size:160;not null" json:"name"`
	UniqueCode string    `gorm:"size:16;not null;uniqueIndex" json:"uniqueCode"`
	IsActive   bool      `gorm:"not null" json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (g *Gym) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}

	return
}
