package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/sweetshop/internal/constants"
	"github.com/RoyceAzure/lab/sweetshop/internal/infra/event"
	"github.com/RoyceAzure/lab/sweetshop/internal/infra/repository/cache"
	"github.com/RoyceAzure/lab/sweetshop/internal/infra/repository/db"
	dbmodel "github.com/RoyceAzure/lab/sweetshop/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/sweetshop/internal/model"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ISweetService interface {
	// ListSweets 查詢全部甜點, 依store原生排序
	ListSweets(ctx context.Context) ([]model.SweetModel, error)
	// SearchSweets 條件搜尋, 所有條件AND, 無條件等同ListSweets
	SearchSweets(ctx context.Context, filter model.SweetSearchFilter) ([]model.SweetModel, error)
	// GetSweet 單筆查詢
	//
	// 錯誤:
	//   - er.NotFoundCode 404: 甜點不存在
	GetSweet(ctx context.Context, id uuid.UUID) (*model.SweetModel, error)
	// CreateSweet 創建甜點
	// 驗證順序: 必填欄位 => rating區間 => 名稱唯一(storage unique index)
	//
	// 錯誤:
	//   - er.InvalidArgumentCode 460: 欄位驗證失敗或名稱重複
	//   - er.InternalErrorCode 500: 內部處理錯誤
	CreateSweet(ctx context.Context, arg *model.CreateSweetModel) (*model.SweetModel, error)
	// UpdateSweet 部分更新, 只覆寫有提供的欄位
	//
	// 錯誤:
	//   - er.NotFoundCode 404: 甜點不存在
	//   - er.InvalidArgumentCode 460: 欄位驗證失敗或名稱重複
	UpdateSweet(ctx context.Context, id uuid.UUID, arg *model.UpdateSweetModel) (*model.SweetModel, error)
	// DeleteSweet 刪除甜點並回傳刪除前snapshot
	//
	// 錯誤:
	//   - er.NotFoundCode 404: 甜點不存在
	DeleteSweet(ctx context.Context, id uuid.UUID) (*model.SweetModel, error)
	// PurchaseSweet 購買, 庫存原子遞減1
	// 庫存為0時整筆拒絕, 不會clamp, quantity不可能為負
	//
	// 錯誤:
	//   - er.NotFoundCode 404: 甜點不存在
	//   - er.BadRequestCode 400: 庫存不足
	PurchaseSweet(ctx context.Context, id uuid.UUID) (*model.SweetModel, error)
	// RestockSweet 補貨, 庫存原子遞增amount
	// amount必須為正整數, 0或負數一律拒絕
	//
	// 錯誤:
	//   - er.NotFoundCode 404: 甜點不存在
	//   - er.InvalidArgumentCode 460: amount不是正整數
	RestockSweet(ctx context.Context, id uuid.UUID, amount int) (*model.SweetModel, error)
}

type SweetService struct {
	sweetRepo  db.ISweetStore
	sweetCache *cache.SweetCache
	publisher  event.StockPublisher
	logger     *zerolog.Logger
}

// NewSweetService 創建甜點服務
// sweetCache與publisher允許為nil, 對應未配置redis/kafka的部署
func NewSweetService(sweetRepo db.ISweetStore, sweetCache *cache.SweetCache, publisher event.StockPublisher, logger *zerolog.Logger) ISweetService {
	if reflect.ValueOf(sweetRepo).IsNil() {
		panic("sweet service initialization failed: sweetRepo cannot be nil")
	}

	return &SweetService{
		sweetRepo:  sweetRepo,
		sweetCache: sweetCache,
		publisher:  publisher,
		logger:     logger,
	}
}

func (s *SweetService) ListSweets(ctx context.Context) ([]model.SweetModel, error) {
	entities, err := s.sweetRepo.GetAllSweets(ctx)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return convertSweetEntitiesToModels(entities), nil
}

func (s *SweetService) SearchSweets(ctx context.Context, filter model.SweetSearchFilter) ([]model.SweetModel, error) {
	entities, err := s.sweetRepo.SearchSweets(ctx, filter.Name, filter.Category, filter.MinPrice, filter.MaxPrice)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return convertSweetEntitiesToModels(entities), nil
}

func (s *SweetService) GetSweet(ctx context.Context, id uuid.UUID) (*model.SweetModel, error) {
	if s.sweetCache != nil {
		if cached, err := s.sweetCache.Get(ctx, id); err == nil && cached != nil {
			return convertSweetEntityToModel(cached), nil
		}
	}

	entity, err := s.sweetRepo.GetSweetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrSweetNotFound) {
			return nil, er.New(er.NotFoundCode, "sweet not found")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	//次要寫入, 快取失敗不影響查詢結果
	if s.sweetCache != nil {
		if err := s.sweetCache.Set(ctx, entity); err != nil && s.logger != nil {
			s.logger.Warn().Err(err).Str("sweet_id", id.String()).Msg("failed to cache sweet")
		}
	}

	return convertSweetEntityToModel(entity), nil
}

func (s *SweetService) CreateSweet(ctx context.Context, arg *model.CreateSweetModel) (*model.SweetModel, error) {
	if err := validateCreateSweet(arg); err != nil {
		return nil, err
	}

	quantity := 0
	if arg.Quantity != nil {
		quantity = *arg.Quantity
	}

	rating := float64(constants.DefaultSweetRating)
	if arg.Rating != nil {
		rating = *arg.Rating
	}

	imageURL := arg.ImageURL
	if imageURL == "" {
		imageURL = constants.DefaultSweetImageURL
	}

	entity := &dbmodel.Sweet{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(arg.Name),
		Category:    strings.TrimSpace(arg.Category),
		Price:       decimal.NewFromFloat(*arg.Price),
		Quantity:    quantity,
		Description: strings.TrimSpace(arg.Description),
		ImageURL:    imageURL,
		Rating:      rating,
	}

	if err := s.sweetRepo.CreateSweet(ctx, entity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, er.New(er.InvalidArgumentCode, "sweet name already exists")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	s.afterStockWrite(ctx, event.StockEventCreated, entity)

	return convertSweetEntityToModel(entity), nil
}

func (s *SweetService) UpdateSweet(ctx context.Context, id uuid.UUID, arg *model.UpdateSweetModel) (*model.SweetModel, error) {
	updates, err := buildSweetUpdates(arg)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.sweetRepo.UpdateSweetFields(ctx, id, updates); err != nil {
			if errors.Is(err, db.ErrSweetNotFound) {
				return nil, er.New(er.NotFoundCode, "sweet not found")
			}
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, er.New(er.InvalidArgumentCode, "sweet name already exists")
			}
			return nil, er.New(er.InternalErrorCode, err.Error())
		}
	}

	entity, err := s.sweetRepo.GetSweetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrSweetNotFound) {
			return nil, er.New(er.NotFoundCode, "sweet not found")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	s.afterStockWrite(ctx, event.StockEventUpdated, entity)

	return convertSweetEntityToModel(entity), nil
}

func (s *SweetService) DeleteSweet(ctx context.Context, id uuid.UUID) (*model.SweetModel, error) {
	entity, err := s.sweetRepo.DeleteSweet(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrSweetNotFound) {
			return nil, er.New(er.NotFoundCode, "sweet not found")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	s.afterStockWrite(ctx, event.StockEventDeleted, entity)

	return convertSweetEntityToModel(entity), nil
}

func (s *SweetService) PurchaseSweet(ctx context.Context, id uuid.UUID) (*model.SweetModel, error) {
	//原子條件遞減, 並發購買不可能把庫存打到負數
	if err := s.sweetRepo.ReduceStock(ctx, id, 1); err != nil {
		if errors.Is(err, db.ErrSweetNotFound) {
			return nil, er.New(er.NotFoundCode, "sweet not found")
		}
		if errors.Is(err, db.ErrStockNotEnough) {
			return nil, er.New(er.BadRequestCode, "out of stock")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	entity, err := s.sweetRepo.GetSweetByID(ctx, id)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	s.afterStockWrite(ctx, event.StockEventPurchased, entity)

	return convertSweetEntityToModel(entity), nil
}

func (s *SweetService) RestockSweet(ctx context.Context, id uuid.UUID, amount int) (*model.SweetModel, error) {
	if amount < 1 {
		return nil, er.New(er.InvalidArgumentCode, "restock amount must be a positive integer")
	}

	if err := s.sweetRepo.AddStock(ctx, id, amount); err != nil {
		if errors.Is(err, db.ErrSweetNotFound) {
			return nil, er.New(er.NotFoundCode, "sweet not found")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	entity, err := s.sweetRepo.GetSweetByID(ctx, id)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	s.afterStockWrite(ctx, event.StockEventRestocked, entity)

	return convertSweetEntityToModel(entity), nil
}

// afterStockWrite 庫存寫入成功後的次要作業: 快取失效與事件發布
// 次要事件發布, 有錯誤會記錄, 交由後續程序處理
func (s *SweetService) afterStockWrite(ctx context.Context, evtType event.StockEventType, entity *dbmodel.Sweet) {
	if s.sweetCache != nil {
		if err := s.sweetCache.Delete(ctx, entity.ID); err != nil && s.logger != nil {
			s.logger.Warn().Err(err).Str("sweet_id", entity.ID.String()).Msg("failed to invalidate sweet cache")
		}
	}

	if s.publisher != nil {
		evt := event.StockEvent{
			Type:       evtType,
			SweetID:    entity.ID,
			Name:       entity.Name,
			Quantity:   entity.Quantity,
			InStock:    entity.Quantity > 0,
			OccurredAt: time.Now().UTC(),
		}
		go func() {
			publishCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.publisher.Publish(publishCtx, evt); err != nil && s.logger != nil {
				s.logger.Error().Err(err).Str("sweet_id", evt.SweetID.String()).Str("event_type", string(evt.Type)).Msg("failed to publish stock event")
			}
		}()
	}
}

func validateCreateSweet(arg *model.CreateSweetModel) error {
	if strings.TrimSpace(arg.Name) == "" {
		return er.New(er.InvalidArgumentCode, "name is required")
	}
	if strings.TrimSpace(arg.Category) == "" {
		return er.New(er.InvalidArgumentCode, "category is required")
	}
	if arg.Price == nil {
		return er.New(er.InvalidArgumentCode, "price is required")
	}
	if arg.Quantity != nil && *arg.Quantity < 0 {
		return er.New(er.InvalidArgumentCode, "quantity cannot be negative")
	}
	if arg.Rating != nil && (*arg.Rating < constants.MinSweetRating || *arg.Rating > constants.MaxSweetRating) {
		return er.New(er.InvalidArgumentCode, "rating must be between 0 and 5")
	}
	return nil
}

// buildSweetUpdates 對有提供的欄位做與創建相同的驗證, 轉成column updates
func buildSweetUpdates(arg *model.UpdateSweetModel) (map[string]interface{}, error) {
	updates := make(map[string]interface{})

	if arg.Name != nil {
		name := strings.TrimSpace(*arg.Name)
		if name == "" {
			return nil, er.New(er.InvalidArgumentCode, "name is required")
		}
		updates["name"] = name
	}
	if arg.Category != nil {
		category := strings.TrimSpace(*arg.Category)
		if category == "" {
			return nil, er.New(er.InvalidArgumentCode, "category is required")
		}
		updates["category"] = category
	}
	if arg.Price != nil {
		updates["price"] = decimal.NewFromFloat(*arg.Price)
	}
	if arg.Quantity != nil {
		if *arg.Quantity < 0 {
			return nil, er.New(er.InvalidArgumentCode, "quantity cannot be negative")
		}
		updates["quantity"] = *arg.Quantity
	}
	if arg.Description != nil {
		updates["description"] = strings.TrimSpace(*arg.Description)
	}
	if arg.ImageURL != nil {
		updates["image_url"] = *arg.ImageURL
	}
	if arg.Rating != nil {
		if *arg.Rating < constants.MinSweetRating || *arg.Rating > constants.MaxSweetRating {
			return nil, er.New(er.InvalidArgumentCode, "rating must be between 0 and 5")
		}
		updates["rating"] = *arg.Rating
	}

	return updates, nil
}

// convertSweetEntityToModel 唯一的entity轉model路徑
// InStock在這裡推導, 所有讀寫路徑共用, 不存在狀態漂移
func convertSweetEntityToModel(entity *dbmodel.Sweet) *model.SweetModel {
	return &model.SweetModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Category:    entity.Category,
		Price:       entity.Price.InexactFloat64(),
		Quantity:    entity.Quantity,
		Description: entity.Description,
		ImageURL:    entity.ImageURL,
		Rating:      entity.Rating,
		InStock:     entity.Quantity > 0,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func convertSweetEntitiesToModels(entities []dbmodel.Sweet) []model.SweetModel {
	models := make([]model.SweetModel, 0, len(entities))
	for i := range entities {
		models = append(models, *convertSweetEntityToModel(&entities[i]))
	}
	return models
}
