package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/sweetshop/internal/infra/repository/db"
	dbmodel "github.com/RoyceAzure/lab/sweetshop/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/sweetshop/internal/model"
	"github.com/RoyceAzure/rj/util/crypt"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IUserService interface {
	// CreateUser 創建使用者, 密碼在這裡hash, 不會以明文落地
	//
	// 錯誤:
	//   - er.InvalidArgumentCode 460: email或密碼為空, 密碼強度不足, email已存在
	//   - er.InternalErrorCode 500: 內部處理錯誤
	CreateUser(ctx context.Context, arg *model.CreateUserModel) (*model.UserModel, error)
	GetUserByEmail(ctx context.Context, email string) (*model.UserModel, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error)
}

type UserService struct {
	userRepo db.IUserStore
}

func NewUserService(userRepo db.IUserStore) IUserService {
	if reflect.ValueOf(userRepo).IsNil() {
		panic("user service initialization failed: userRepo cannot be nil")
	}

	return &UserService{
		userRepo: userRepo,
	}
}

func (u *UserService) CreateUser(ctx context.Context, arg *model.CreateUserModel) (*model.UserModel, error) {
	email := strings.TrimSpace(arg.Email)
	if email == "" || arg.Password == "" {
		return nil, er.New(er.InvalidArgumentCode, "email or password is empty")
	}

	if err := crypt.ValidateStringPassword(arg.Password); err != nil {
		return nil, er.New(er.InvalidArgumentCode, err.Error())
	}

	hashPassword, err := crypt.HashPassword(arg.Password)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	userEntity := &dbmodel.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(arg.Name),
		HashPassword: hashPassword,
		IsAdmin:      arg.IsAdmin,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := u.userRepo.CreateUser(ctx, userEntity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, er.New(er.InvalidArgumentCode, "email already exists")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return convertUserEntityToModel(userEntity), nil
}

func (u *UserService) GetUserByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	userEntity, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return convertUserEntityToModel(userEntity), nil
}

func (u *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	userEntity, err := u.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return convertUserEntityToModel(userEntity), nil
}

// 將 repository 模型轉換為服務層模型
func convertUserEntityToModel(u *dbmodel.User) *model.UserModel {
	return &model.UserModel{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		IsAdmin:      u.IsAdmin,
		IsActive:     u.IsActive,
		HashPassword: u.HashPassword,
		CreatedAt:    u.CreatedAt,
	}
}
