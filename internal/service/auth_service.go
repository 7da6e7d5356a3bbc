package service

import (
	"context"
	"reflect"
	"time"

	"github.com/RoyceAzure/lab/sweetshop/internal/constants"
	"github.com/RoyceAzure/lab/sweetshop/internal/model"
	"github.com/RoyceAzure/lab/sweetshop/internal/util"
	"github.com/RoyceAzure/rj/api/token"
	"github.com/RoyceAzure/rj/util/crypt"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
)

type IAuthService interface {
	// Register 註冊新使用者並直接發放access token
	//
	// 錯誤:
	//   - er.InvalidArgumentCode 460: 欄位驗證失敗或email已存在
	//   - er.InternalErrorCode 500: 內部處理錯誤
	Register(ctx context.Context, arg *model.CreateUserModel) (*model.LoginResponseModel, error)
	// Login 帳號密碼登入
	//
	// 參數:
	//   - email: User email
	//   - password: 密碼明文
	//
	// 返回值:
	//   - *model.LoginResponseModel: 包含訪問令牌和用戶資訊的響應模型
	//
	// 錯誤:
	//   - er.UnauthenticatedCode 401: email不存在或密碼錯誤
	//   - er.UnauthorizedCode 403: 使用者已禁用
	//   - er.InternalErrorCode 500: 內部處理錯誤
	Login(ctx context.Context, email string, password string) (*model.LoginResponseModel, error)
	CreateAccessToken(ctx context.Context, upn string, userID uuid.UUID) (string, *token.Payload[uuid.UUID], error)
	// Me 取得當前登入user資訊
	// 錯誤:
	//   - er.UnauthorizedCode 403: 未授權
	Me(ctx context.Context) (*model.UserModel, error)
}

type AuthService struct {
	userService IUserService
	tokenMaker  token.Maker[uuid.UUID]
}

func NewAuthService(userService IUserService, tokenMaker token.Maker[uuid.UUID]) IAuthService {
	if reflect.ValueOf(userService).IsNil() {
		panic("auth service initialization failed: userService cannot be nil")
	}
	if reflect.ValueOf(tokenMaker).IsNil() {
		panic("auth service initialization failed: tokenMaker cannot be nil")
	}

	return &AuthService{
		userService: userService,
		tokenMaker:  tokenMaker,
	}
}

func (a *AuthService) Register(ctx context.Context, arg *model.CreateUserModel) (*model.LoginResponseModel, error) {
	userModel, err := a.userService.CreateUser(ctx, arg)
	if err != nil {
		return nil, err
	}

	accessToken, _, err := a.CreateAccessToken(ctx, userModel.Email, userModel.ID)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, "created accessToken failed")
	}

	return &model.LoginResponseModel{
		AccessToken: accessToken,
		User:        *userModel,
	}, nil
}

func (a *AuthService) Login(ctx context.Context, email string, password string) (*model.LoginResponseModel, error) {
	//帳號不存在與密碼錯誤回同樣訊息, 不洩漏email是否註冊過
	userModel, err := a.userService.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, er.New(er.UnauthenticatedCode, "invalid email or password")
	}

	if err := crypt.CheckPassword(password, userModel.HashPassword); err != nil {
		return nil, er.New(er.UnauthenticatedCode, "invalid email or password")
	}

	if !userModel.IsActive {
		return nil, er.New(er.UnauthorizedCode, "user is not active")
	}

	accessToken, _, err := a.CreateAccessToken(ctx, userModel.Email, userModel.ID)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, "created accessToken failed")
	}

	return &model.LoginResponseModel{
		AccessToken: accessToken,
		User:        *userModel,
	}, nil
}

func (a *AuthService) CreateAccessToken(ctx context.Context, upn string, userID uuid.UUID) (string, *token.Payload[uuid.UUID], error) {
	return a.tokenMaker.CreateToken(upn, userID, time.Duration(constants.AccessTokenDuration)*time.Hour)
}

// Me 取得當前登入user資訊
// 錯誤:
//   - er.UnauthorizedCode 403: 未授權
func (a *AuthService) Me(ctx context.Context) (*model.UserModel, error) {
	payload := util.GetTokenPayloadFromContext[uuid.UUID](ctx)
	if payload == nil {
		return nil, er.New(er.UnauthorizedCode, "unauthorized")
	}

	userModel, err := a.userService.GetUserByID(ctx, payload.UserId)
	if err != nil {
		return nil, er.New(er.UnauthorizedCode, "unauthorized")
	}

	return userModel, nil
}
