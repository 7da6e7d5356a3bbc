package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"not null;type:varchar(255);unique"`
	Name         string    `gorm:"type:varchar(100)"`
	HashPassword string    `gorm:"not null;type:varchar(255)"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
}
