package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	ID           uuid.UUID
	Email        string
	Name         string
	IsAdmin      bool
	IsActive     bool
	HashPassword string
	CreatedAt    time.Time
}

type CreateUserModel struct {
	Email    string
	Name     string
	Password string
	IsAdmin  bool
}
