package db

import (
	"context"

	"github.com/RoyceAzure/lab/sweetshop/internal/infra/repository/db/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ISweetStore 甜點資料存取介面
type ISweetStore interface {
	CreateSweet(ctx context.Context, sweet *model.Sweet) error
	GetSweetByID(ctx context.Context, id uuid.UUID) (*model.Sweet, error)
	GetSweetByName(ctx context.Context, name string) (*model.Sweet, error)
	GetAllSweets(ctx context.Context) ([]model.Sweet, error)
	SearchSweets(ctx context.Context, name, category string, minPrice, maxPrice *float64) ([]model.Sweet, error)
	UpdateSweetFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	AddStock(ctx context.Context, id uuid.UUID, amount int) error
	ReduceStock(ctx context.Context, id uuid.UUID, amount int) error
	DeleteSweet(ctx context.Context, id uuid.UUID) (*model.Sweet, error)
}

var _ ISweetStore = (*SweetRepo)(nil)

// IUserStore 使用者資料存取介面
type IUserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

var _ IUserStore = (*UserRepo)(nil)

type DbDao struct {
	*gorm.DB
}

func NewDbDao(conn *gorm.DB) *DbDao {
	return &DbDao{
		DB: conn,
	}
}

// 初始化db schema
// 冪等性
func (d *DbDao) InitMigrate() error {
	return d.AutoMigrate(
		&model.User{},
		&model.Sweet{},
	)
}
