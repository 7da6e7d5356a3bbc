package dto

import "time"

// SweetDTO 表示甜點資訊
// in_stock為衍生欄位, 由quantity計算得出
type SweetDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Rating      float64   `json:"rating"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateSweetDTO 創建甜點請求
// price用指標, 缺少該欄位與價格為0要能區分
type CreateSweetDTO struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Rating      *float64 `json:"rating"`
}

// UpdateSweetDTO 部分更新請求, 未出現的欄位維持原值
type UpdateSweetDTO struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
	Rating      *float64 `json:"rating"`
}

// RestockSweetDTO 補貨請求, quantity必須為正整數
type RestockSweetDTO struct {
	Quantity int `json:"quantity"`
}

// DeleteSweetResponse 刪除回應, 帶刪除前的甜點snapshot
type DeleteSweetResponse struct {
	Message string   `json:"message"`
	Sweet   SweetDTO `json:"sweet"`
}
