package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/sweetshop/internal/api/dto"
	"github.com/RoyceAzure/lab/sweetshop/internal/constants"
	"github.com/RoyceAzure/lab/sweetshop/internal/model"
	"github.com/RoyceAzure/lab/sweetshop/internal/service"
	"github.com/RoyceAzure/rj/api"
	er "github.com/RoyceAzure/rj/util/rj_error"
)

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
	}
}

// @Summary register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param userInfo body dto.RegisterDTO true "email, name and password"
// @Success 200 {object} api.Response{data=dto.LoginResponse} "success"
// @Failure 460 {object} api.ResponseError{data=string} "InvalidArgumentCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /auth/register [post]
func (a *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var registerDTO dto.RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&registerDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	ctx := r.Context()

	loginRes, err := a.authService.Register(ctx, &model.CreateUserModel{
		Email:    registerDTO.Email,
		Name:     registerDTO.Name,
		Password: registerDTO.Password,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertLoginResponseModelToDTO(loginRes), nil)
}

// @Summary email and password login
// @Tags auth
// @Accept json
// @Produce json
// @Param loginInfo body dto.EmailAndPasswordLoginDTO true "email and password"
// @Success 200 {object} api.Response{data=dto.LoginResponse} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /auth/login [post]
func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.EmailAndPasswordLoginDTO
	if err := json.NewDecoder(r.Body).Decode(&loginDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	ctx := r.Context()

	loginRes, err := a.authService.Login(ctx, loginDTO.Email, loginDTO.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertLoginResponseModelToDTO(loginRes), nil)
}

// @Summary get current login user info
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} api.Response{data=dto.UserDTO} "success"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /auth/me [get]
func (a *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userModel, err := a.authService.Me(ctx)
	if err != nil || userModel == nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertUserModelToDTO(*userModel), nil)
}

// convertUserModelToDTO 將 UserModel 轉換為 UserDTO
func convertUserModelToDTO(model model.UserModel) dto.UserDTO {
	return dto.UserDTO{
		ID:       model.ID.String(),
		Email:    model.Email,
		Name:     model.Name,
		IsActive: model.IsActive,
		IsAdmin:  model.IsAdmin,
	}
}

func convertLoginResponseModelToDTO(m *model.LoginResponseModel) dto.LoginResponse {
	return dto.LoginResponse{
		AccessToken: dto.TokenInfo{
			Value:     m.AccessToken,
			ExpiresIn: int(constants.AccessTokenDuration) * 3600,
		},
		User: convertUserModelToDTO(m.User),
	}
}
