package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sweet 甜點entity
// 沒有in_stock欄位 該狀態一律由quantity推導, 避免寫入路徑漏更新造成狀態漂移
type Sweet struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"not null;type:varchar(100);unique"`
	Category    string          `gorm:"not null;type:varchar(50)"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	Quantity    int             `gorm:"not null;default:0"`
	Description string          `gorm:"type:text"`
	ImageURL    string          `gorm:"type:varchar(500)"`
	Rating      float64         `gorm:"type:decimal(2,1)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
