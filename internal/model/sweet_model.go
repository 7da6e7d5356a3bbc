package model

import (
	"time"

	"github.com/google/uuid"
)

// SweetModel 甜點目錄的領域模型
// InStock 為衍生欄位, 一律由 Quantity 計算, 不允許外部直接設置
type SweetModel struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Price       float64
	Quantity    int
	Description string
	ImageURL    string
	Rating      float64
	InStock     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateSweetModel 創建甜點的輸入
// Price/Quantity/Rating用指標區分"未提供"與零值
type CreateSweetModel struct {
	Name        string
	Category    string
	Price       *float64
	Quantity    *int
	Description string
	ImageURL    string
	Rating      *float64
}

// UpdateSweetModel 部分更新, nil代表該欄位不變
type UpdateSweetModel struct {
	Name        *string
	Category    *string
	Price       *float64
	Quantity    *int
	Description *string
	ImageURL    *string
	Rating      *float64
}

// SweetSearchFilter 搜尋條件, 全部條件用AND串接
// Name/Category為不分大小寫的子字串比對, 價格區間兩端各自獨立
type SweetSearchFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

func (f SweetSearchFilter) IsEmpty() bool {
	return f.Name == "" && f.Category == "" && f.MinPrice == nil && f.MaxPrice == nil
}
