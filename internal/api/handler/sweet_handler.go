package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/sweetshop/internal/api/dto"
	"github.com/RoyceAzure/lab/sweetshop/internal/model"
	"github.com/RoyceAzure/lab/sweetshop/internal/service"
	"github.com/RoyceAzure/rj/api"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SweetHandler struct {
	sweetService service.ISweetService
}

func NewSweetHandler(sweetService service.ISweetService) *SweetHandler {
	if sweetService == nil {
		panic("sweetService cannot be nil")
	}
	return &SweetHandler{
		sweetService: sweetService,
	}
}

// @Summary list all sweets
// @Tags sweets
// @Accept json
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.SweetDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /sweets [get]
func (h *SweetHandler) ListSweets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sweets, err := h.sweetService.ListSweets(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertSweetModelsToDTOs(sweets), nil)
}

// @Summary search sweets by name, category or price range
// @Tags sweets
// @Accept json
// @Produce json
// @Param name query string false "case-insensitive substring match"
// @Param category query string false "case-insensitive substring match"
// @Param minPrice query number false "inclusive lower price bound"
// @Param maxPrice query number false "inclusive upper price bound"
// @Success 200 {object} api.Response{data=[]dto.SweetDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 460 {object} api.ResponseError{data=string} "InvalidArgumentCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /sweets/search [get]
func (h *SweetHandler) SearchSweets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := model.SweetSearchFilter{
		Name:     r.URL.Query().Get("name"),
		Category: r.URL.Query().Get("category"),
	}

	minPrice, err := parsePriceParam(r, "minPrice")
	if err != nil {
		api.ErrorJSON(w, int(er.InvalidArgumentCode), err, er.ErrStrMap[er.InvalidArgumentCode])
		return
	}
	maxPrice, err := parsePriceParam(r, "maxPrice")
	if err != nil {
		api.ErrorJSON(w, int(er.InvalidArgumentCode), err, er.ErrStrMap[er.InvalidArgumentCode])
		return
	}
	filter.MinPrice = minPrice
	filter.MaxPrice = maxPrice

	sweets, err := h.sweetService.SearchSweets(ctx, filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertSweetModelsToDTOs(sweets), nil)
}

// @Summary get a single sweet
// @Tags sweets
// @Accept json
// @Produce json
// @Param id path string true "sweet id"
// @Success 200 {object} api.Response{data=dto.SweetDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /sweets/{id} [get]
func (h *SweetHandler) GetSweet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseSweetID(w, r)
	if !ok {
		return
	}

	sweet, err := h.sweetService.GetSweet(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertSweetModelToDTO(sweet), nil)
}

// @Summary create a sweet
// @Tags sweets
// @Accept json
// @Produce json
// @Param sweet body dto.CreateSweetDTO true "sweet to create"
// @Success 200 {object} api.Response{data=dto.SweetDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 460 {object} api.ResponseError{data=string} "InvalidArgumentCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /sweets [post]
func (h *SweetHandler) CreateSweet(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateSweetDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	ctx := r.Context()

	sweet, err := h.sweetService.CreateSweet(ctx, &model.CreateSweetModel{
		Name:        createDTO.Name,
		Category:    createDTO.Category,
		Price:       createDTO.Price,
		Quantity:    createDTO.Quantity,
		Description: createDTO.Description,
		ImageURL:    createDTO.ImageURL,
		Rating:      createDTO.Rating,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertSweetModelToDTO(sweet), nil)
}

// @Summary update a sweet, only provided fields are changed
// @Tags sweets
// @Accept json
// @Produce json
// @Param id path string true "sweet id"
// @Param sweet body dto.UpdateSweetDTO true "fields to update"
// @Success 200 {object} api.Response{data=dto.SweetDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Failure 460 {object} api.ResponseError{data=string} "InvalidArgumentCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /sweets/{id} [put]
func (h *SweetHandler) UpdateSweet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseSweetID(w, r)
	if !ok {
		return
	}

	var updateDTO dto.UpdateSweetDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	ctx := r.Context()

	sweet, err := h.sweetService.UpdateSweet(ctx, id, &model.UpdateSweetModel{
		Name:        updateDTO.Name,
		Category:    updateDTO.Category,
		Price:       updateDTO.Price,
		Quantity:    updateDTO.Quantity,
		Description: updateDTO.Description,
		ImageURL:    updateDTO.ImageURL,
		Rating:      updateDTO.Rating,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertSweetModelToDTO(sweet), nil)
}

// @Summary delete a sweet
// @Tags sweets
// @Accept json
// @Produce json
// @Param id path string true "sweet id"
// @Success 200 {object} api.Response{data=dto.DeleteSweetResponse} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /sweets/{id} [delete]
func (h *SweetHandler) DeleteSweet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseSweetID(w, r)
	if !ok {
		return
	}

	sweet, err := h.sweetService.DeleteSweet(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.DeleteSweetResponse{
		Message: "sweet deleted",
		Sweet:   convertSweetModelToDTO(sweet),
	}, nil)
}

// @Summary purchase a sweet, decrements stock by one
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "sweet id"
// @Success 200 {object} api.Response{data=dto.SweetDTO} "success"
// @Failure 400 {object} api.ResponseError{data=string} "BadRequestCode out of stock"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /sweets/{id}/purchase [post]
func (h *SweetHandler) PurchaseSweet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseSweetID(w, r)
	if !ok {
		return
	}

	sweet, err := h.sweetService.PurchaseSweet(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertSweetModelToDTO(sweet), nil)
}

// @Summary restock a sweet by a positive quantity
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "sweet id"
// @Param restock body dto.RestockSweetDTO true "restock amount"
// @Success 200 {object} api.Response{data=dto.SweetDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Failure 460 {object} api.ResponseError{data=string} "InvalidArgumentCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /sweets/{id}/restock [post]
func (h *SweetHandler) RestockSweet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseSweetID(w, r)
	if !ok {
		return
	}

	var restockDTO dto.RestockSweetDTO
	if err := json.NewDecoder(r.Body).Decode(&restockDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	ctx := r.Context()

	sweet, err := h.sweetService.RestockSweet(ctx, id, restockDTO.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertSweetModelToDTO(sweet), nil)
}

// parseSweetID 解析路徑上的sweet id
// 格式不合法視同資源不存在, 回404
func parseSweetID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorJSON(w, int(er.NotFoundCode), er.New(er.NotFoundCode, "sweet not found"), er.ErrStrMap[er.NotFoundCode])
		return uuid.Nil, false
	}
	return id, true
}

func parsePriceParam(r *http.Request, key string) (*float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, er.New(er.InvalidArgumentCode, key+" must be a number")
	}
	return &value, nil
}

func writeServiceError(w http.ResponseWriter, err error) {
	if anaErr, ok := err.(*er.AnaError); ok {
		api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
	} else {
		api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
	}
}

// convertSweetModelToDTO 將 SweetModel 轉換為 SweetDTO
func convertSweetModelToDTO(m *model.SweetModel) dto.SweetDTO {
	return dto.SweetDTO{
		ID:          m.ID.String(),
		Name:        m.Name,
		Category:    m.Category,
		Price:       m.Price,
		Quantity:    m.Quantity,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Rating:      m.Rating,
		InStock:     m.InStock,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func convertSweetModelsToDTOs(models []model.SweetModel) []dto.SweetDTO {
	dtos := make([]dto.SweetDTO, 0, len(models))
	for i := range models {
		dtos = append(dtos, convertSweetModelToDTO(&models[i]))
	}
	return dtos
}
