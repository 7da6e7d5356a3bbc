package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/sweetshop/internal/infra/repository/db/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSweetNotFound  = errors.New("sweet not found")
	ErrStockNotEnough = errors.New("stock is not enough")
)

type SweetRepo struct {
	db *DbDao
}

func NewSweetRepo(db *DbDao) *SweetRepo {
	return &SweetRepo{db: db}
}

// Create - 創建甜點
func (s *SweetRepo) CreateSweet(ctx context.Context, sweet *model.Sweet) error {
	return s.db.WithContext(ctx).Create(sweet).Error
}

// Read - 根據ID查詢甜點
func (s *SweetRepo) GetSweetByID(ctx context.Context, id uuid.UUID) (*model.Sweet, error) {
	var sweet model.Sweet
	err := s.db.WithContext(ctx).First(&sweet, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSweetNotFound
		}
		return nil, err
	}
	return &sweet, nil
}

// Read - 根據名稱查詢甜點
func (s *SweetRepo) GetSweetByName(ctx context.Context, name string) (*model.Sweet, error) {
	var sweet model.Sweet
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&sweet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSweetNotFound
		}
		return nil, err
	}
	return &sweet, nil
}

// Read - 查詢所有甜點
func (s *SweetRepo) GetAllSweets(ctx context.Context) ([]model.Sweet, error) {
	var sweets []model.Sweet
	err := s.db.WithContext(ctx).Find(&sweets).Error
	return sweets, err
}

// Read - 條件搜尋甜點
// 名稱與分類為不分大小寫模糊比對, 價格區間兩端各自獨立, 條件全部AND
func (s *SweetRepo) SearchSweets(ctx context.Context, name, category string, minPrice, maxPrice *float64) ([]model.Sweet, error) {
	query := s.db.WithContext(ctx).Model(&model.Sweet{})

	if name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}
	if category != "" {
		query = query.Where("category ILIKE ?", "%"+category+"%")
	}
	if minPrice != nil {
		query = query.Where("price >= ?", *minPrice)
	}
	if maxPrice != nil {
		query = query.Where("price <= ?", *maxPrice)
	}

	var sweets []model.Sweet
	err := query.Find(&sweets).Error
	return sweets, err
}

// Update - 部分更新甜點欄位
func (s *SweetRepo) UpdateSweetFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := s.db.WithContext(ctx).Model(&model.Sweet{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSweetNotFound
	}
	return nil
}

// Update - 增加庫存
// 單一語句的原子遞增, 同時會更新updated_at
func (s *SweetRepo) AddStock(ctx context.Context, id uuid.UUID, amount int) error {
	result := s.db.WithContext(ctx).Model(&model.Sweet{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSweetNotFound
	}
	return nil
}

// Update - 減少庫存
// 條件式的原子遞減, 庫存不足時不會寫入, quantity永遠不會為負
func (s *SweetRepo) ReduceStock(ctx context.Context, id uuid.UUID, amount int) error {
	result := s.db.WithContext(ctx).Model(&model.Sweet{}).
		Where("id = ? AND quantity >= ?", id, amount).
		Update("quantity", gorm.Expr("quantity - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		//區分不存在與庫存不足
		var count int64
		if err := s.db.WithContext(ctx).Model(&model.Sweet{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrSweetNotFound
		}
		return ErrStockNotEnough
	}
	return nil
}

// Delete - 刪除甜點, 回傳刪除前的snapshot
func (s *SweetRepo) DeleteSweet(ctx context.Context, id uuid.UUID) (*model.Sweet, error) {
	var sweet model.Sweet
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sweet, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSweetNotFound
			}
			return err
		}
		return tx.Delete(&model.Sweet{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &sweet, nil
}

// 批量創建甜點 for seed
func (s *SweetRepo) CreateSweetsBatch(ctx context.Context, sweets []model.Sweet) error {
	return s.db.WithContext(ctx).Create(&sweets).Error
}

func (s *SweetRepo) CountSweets(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Sweet{}).Count(&count).Error
	return count, err
}
