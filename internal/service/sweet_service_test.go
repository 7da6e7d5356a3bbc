package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/RoyceAzure/lab/sweetshop/internal/constants"
	"github.com/RoyceAzure/lab/sweetshop/internal/infra/repository/db"
	dbmodel "github.com/RoyceAzure/lab/sweetshop/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/sweetshop/internal/model"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeSweetStore 記憶體版的甜點store, 行為對齊SweetRepo
// 用mutex保護, 庫存操作在鎖內做條件判斷, 模擬單一SQL語句的原子性
type fakeSweetStore struct {
	mu     sync.Mutex
	sweets map[uuid.UUID]*dbmodel.Sweet
}

func newFakeSweetStore() *fakeSweetStore {
	return &fakeSweetStore{sweets: make(map[uuid.UUID]*dbmodel.Sweet)}
}

var _ db.ISweetStore = (*fakeSweetStore)(nil)

func (f *fakeSweetStore) CreateSweet(ctx context.Context, sweet *dbmodel.Sweet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sweets {
		if s.Name == sweet.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	clone := *sweet
	f.sweets[sweet.ID] = &clone
	return nil
}

func (f *fakeSweetStore) GetSweetByID(ctx context.Context, id uuid.UUID) (*dbmodel.Sweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sweets[id]
	if !ok {
		return nil, db.ErrSweetNotFound
	}
	clone := *s
	return &clone, nil
}

func (f *fakeSweetStore) GetSweetByName(ctx context.Context, name string) (*dbmodel.Sweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sweets {
		if s.Name == name {
			clone := *s
			return &clone, nil
		}
	}
	return nil, db.ErrSweetNotFound
}

func (f *fakeSweetStore) GetAllSweets(ctx context.Context) ([]dbmodel.Sweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []dbmodel.Sweet
	for _, s := range f.sweets {
		result = append(result, *s)
	}
	return result, nil
}

func (f *fakeSweetStore) SearchSweets(ctx context.Context, name, category string, minPrice, maxPrice *float64) ([]dbmodel.Sweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []dbmodel.Sweet
	for _, s := range f.sweets {
		if name != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(name)) {
			continue
		}
		if category != "" && !strings.Contains(strings.ToLower(s.Category), strings.ToLower(category)) {
			continue
		}
		price := s.Price.InexactFloat64()
		if minPrice != nil && price < *minPrice {
			continue
		}
		if maxPrice != nil && price > *maxPrice {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (f *fakeSweetStore) UpdateSweetFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sweets[id]
	if !ok {
		return db.ErrSweetNotFound
	}
	for column, value := range updates {
		switch column {
		case "name":
			name := value.(string)
			for otherID, other := range f.sweets {
				if otherID != id && other.Name == name {
					return gorm.ErrDuplicatedKey
				}
			}
			s.Name = name
		case "category":
			s.Category = value.(string)
		case "price":
			s.Price = value.(decimal.Decimal)
		case "quantity":
			s.Quantity = value.(int)
		case "description":
			s.Description = value.(string)
		case "image_url":
			s.ImageURL = value.(string)
		case "rating":
			s.Rating = value.(float64)
		}
	}
	return nil
}

func (f *fakeSweetStore) AddStock(ctx context.Context, id uuid.UUID, amount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sweets[id]
	if !ok {
		return db.ErrSweetNotFound
	}
	s.Quantity += amount
	return nil
}

func (f *fakeSweetStore) ReduceStock(ctx context.Context, id uuid.UUID, amount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sweets[id]
	if !ok {
		return db.ErrSweetNotFound
	}
	if s.Quantity < amount {
		return db.ErrStockNotEnough
	}
	s.Quantity -= amount
	return nil
}

func (f *fakeSweetStore) DeleteSweet(ctx context.Context, id uuid.UUID) (*dbmodel.Sweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sweets[id]
	if !ok {
		return nil, db.ErrSweetNotFound
	}
	delete(f.sweets, id)
	clone := *s
	return &clone, nil
}

func newTestSweetService() (ISweetService, *fakeSweetStore) {
	store := newFakeSweetStore()
	return NewSweetService(store, nil, nil, nil), store
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func requireAnaCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	anaErr, ok := err.(*er.AnaError)
	require.True(t, ok, "expected *er.AnaError, got %T", err)
	require.Equal(t, code, int(anaErr.Code))
}

func TestCreateSweetDefaults(t *testing.T) {
	svc, _ := newTestSweetService()
	ctx := context.Background()

	sweet, err := svc.CreateSweet(ctx, &model.CreateSweetModel{
		Name:     "Gulab Jamun",
		Category: "Traditional",
		Price:    floatPtr(150),
	})
	require.NoError(t, err)

	require.Equal(t, "Gulab Jamun", sweet.Name)
	require.Equal(t, 0, sweet.Quantity)
	require.False(t, sweet.InStock)
	require.Equal(t, float64(constants.DefaultSweetRating), sweet.Rating)
	require.Equal(t, constants.DefaultSweetImageURL, sweet.ImageURL)
	require.NotEqual(t, uuid.Nil, sweet.ID)
}

func TestCreateSweetValidation(t *testing.T) {
	svc, _ := newTestSweetService()
	ctx := context.Background()

	cases := []struct {
		name string
		arg  *model.CreateSweetModel
	}{
		{"missing name", &model.CreateSweetModel{Category: "Cake", Price: floatPtr(100)}},
		{"blank name", &model.CreateSweetModel{Name: "   ", Category: "Cake", Price: floatPtr(100)}},
		{"missing category", &model.CreateSweetModel{Name: "Cheesecake", Price: floatPtr(100)}},
		{"missing price", &model.CreateSweetModel{Name: "Cheesecake", Category: "Cake"}},
		{"negative quantity", &model.CreateSweetModel{Name: "Cheesecake", Category: "Cake", Price: floatPtr(100), Quantity: intPtr(-1)}},
		{"rating too high", &model.CreateSweetModel{Name: "Cheesecake", Category: "Cake", Price: floatPtr(100), Rating: floatPtr(5.5)}},
		{"rating negative", &model.CreateSweetModel{Name: "Cheesecake", Category: "Cake", Price: floatPtr(100), Rating: floatPtr(-0.1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateSweet(ctx, tc.arg)
			requireAnaCode(t, err, int(er.InvalidArgumentCode))
		})
	}
}

func TestCreateSweetDuplicateName(t *testing.T) {
	svc, _ := newTestSweetService()
	ctx := context.Background()

	_, err := svc.CreateSweet(ctx, &model.CreateSweetModel{Name: "Ladoo", Category: "Traditional", Price: floatPtr(150)})
	require.NoError(t, err)

	_, err = svc.CreateSweet(ctx, &model.CreateSweetModel{Name: "Ladoo", Category: "Traditional", Price: floatPtr(180)})
	requireAnaCode(t, err, int(er.InvalidArgumentCode))
}

func TestGetSweetNotFound(t *testing.T) {
	svc, _ := newTestSweetService()

	_, err := svc.GetSweet(context.Background(), uuid.New())
	requireAnaCode(t, err, int(er.NotFoundCode))
}

func TestUpdateSweetPartial(t *testing.T) {
	svc, _ := newTestSweetService()
	ctx := context.Background()

	created, err := svc.CreateSweet(ctx, &model.CreateSweetModel{
		Name:        "Barfi",
		Category:    "Traditional",
		Price:       floatPtr(180),
		Quantity:    intPtr(90),
		Description: "Classic milk-based sweet",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateSweet(ctx, created.ID, &model.UpdateSweetModel{
		Price: floatPtr(200),
	})
	require.NoError(t, err)
	require.Equal(t, 200.0, updated.Price)
	//未提供的欄位維持原值
	require.Equal(t, "Barfi", updated.Name)
	require.Equal(t, 90, updated.Quantity)
	require.Equal(t, "Classic milk-based sweet", updated.Description)
	require.True(t, updated.InStock)

	//更新quantity到0, inStock要跟著翻轉
	updated, err = svc.UpdateSweet(ctx, created.ID, &model.UpdateSweetModel{Quantity: intPtr(0)})
	require.NoError(t, err)
	require.False(t, updated.InStock)

	_, err = svc.UpdateSweet(ctx, created.ID, &model.UpdateSweetModel{Name: strPtr("  ")})
	requireAnaCode(t, err, int(er.InvalidArgumentCode))

	_, err = svc.UpdateSweet(ctx, created.ID, &model.UpdateSweetModel{Rating: floatPtr(9)})
	requireAnaCode(t, err, int(er.InvalidArgumentCode))

	_, err = svc.UpdateSweet(ctx, uuid.New(), &model.UpdateSweetModel{Price: floatPtr(100)})
	requireAnaCode(t, err, int(er.NotFoundCode))
}

func TestDeleteSweetReturnsSnapshot(t *testing.T) {
	svc, _ := newTestSweetService()
	ctx := context.Background()

	created, err := svc.CreateSweet(ctx, &model.CreateSweetModel{
		Name:     "Kaju Katli",
		Category: "Traditional",
		Price:    floatPtr(250),
		Quantity: intPtr(35),
	})
	require.NoError(t, err)

	deleted, err := svc.DeleteSweet(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Kaju Katli", deleted.Name)
	require.Equal(t, 35, deleted.Quantity)

	_, err = svc.GetSweet(ctx, created.ID)
	requireAnaCode(t, err, int(er.NotFoundCode))

	_, err = svc.DeleteSweet(ctx, created.ID)
	requireAnaCode(t, err, int(er.NotFoundCode))
}

// 購買Ladoo直到賣完, 最後一次購買要被拒絕且庫存停在0
func TestPurchaseSweetUntilSoldOut(t *testing.T) {
	svc, _ := newTestSweetService()
	ctx := context.Background()

	created, err := svc.CreateSweet(ctx, &model.CreateSweetModel{
		Name:     "Ladoo",
		Category: "Traditional",
		Price:    floatPtr(150),
		Quantity: intPtr(2),
	})
	require.NoError(t, err)

	sweet, err := svc.PurchaseSweet(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 1, sweet.Quantity)
	require.True(t, sweet.InStock)

	sweet, err = svc.PurchaseSweet(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 0, sweet.Quantity)
	require.False(t, sweet.InStock)

	_, err = svc.PurchaseSweet(ctx, created.ID)
	requireAnaCode(t, err, int(er.BadRequestCode))

	got, err := svc.GetSweet(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.Quantity)

	_, err = svc.PurchaseSweet(ctx, uuid.New())
	requireAnaCode(t, err, int(er.NotFoundCode))
}

// N個並發購買打在庫存K上, 成功數必須剛好是K, 其餘被拒絕
func TestPurchaseSweetConcurrent(t *testing.T) {
	svc, _ := newTestSweetService()
	ctx := context.Background()

	const stock = 5
	const buyers = 20

	created, err := svc.CreateSweet(ctx, &model.CreateSweetModel{
		Name:     "Macaron Box",
		Category: "French",
		Price:    floatPtr(250),
		Quantity: intPtr(stock),
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, buyers)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, errs[idx] = svc.PurchaseSweet(ctx, created.ID)
		}(i)
	}
	wg.Wait()

	var success, rejected int
	for _, err := range errs {
		if err == nil {
			success++
			continue
		}
		requireAnaCode(t, err, int(er.BadRequestCode))
		rejected++
	}
	require.Equal(t, stock, success)
	require.Equal(t, buyers-stock, rejected)

	got, err := svc.GetSweet(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.Quantity)
	require.False(t, got.InStock)
}

func TestRestockSweet(t *testing.T) {
	svc, _ := newTestSweetService()
	ctx := context.Background()

	created, err := svc.CreateSweet(ctx, &model.CreateSweetModel{
		Name:     "Rasgulla",
		Category: "Traditional",
		Price:    floatPtr(120),
	})
	require.NoError(t, err)
	require.False(t, created.InStock)

	sweet, err := svc.RestockSweet(ctx, created.ID, 60)
	require.NoError(t, err)
	require.Equal(t, 60, sweet.Quantity)
	require.True(t, sweet.InStock)

	//0與負數一律拒絕
	_, err = svc.RestockSweet(ctx, created.ID, 0)
	requireAnaCode(t, err, int(er.InvalidArgumentCode))

	_, err = svc.RestockSweet(ctx, created.ID, -5)
	requireAnaCode(t, err, int(er.InvalidArgumentCode))

	got, err := svc.GetSweet(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 60, got.Quantity)

	_, err = svc.RestockSweet(ctx, uuid.New(), 10)
	requireAnaCode(t, err, int(er.NotFoundCode))
}

func TestSearchSweetsFilters(t *testing.T) {
	svc, _ := newTestSweetService()
	ctx := context.Background()

	seed := []struct {
		name     string
		category string
		price    float64
	}{
		{"Dark Chocolate Bar", "Chocolate", 80},
		{"Milk Chocolate Bar", "Chocolate", 100},
		{"Gulab Jamun", "Traditional", 150},
		{"Cheesecake", "Cake", 200},
		{"Macaron Box", "French", 250},
	}
	for _, s := range seed {
		_, err := svc.CreateSweet(ctx, &model.CreateSweetModel{
			Name:     s.name,
			Category: s.category,
			Price:    floatPtr(s.price),
			Quantity: intPtr(10),
		})
		require.NoError(t, err)
	}

	result, err := svc.SearchSweets(ctx, model.SweetSearchFilter{Name: "chocolate"})
	require.NoError(t, err)
	require.Len(t, result, 2)

	result, err = svc.SearchSweets(ctx, model.SweetSearchFilter{MinPrice: floatPtr(100), MaxPrice: floatPtr(200)})
	require.NoError(t, err)
	require.Len(t, result, 3)

	//無條件搜尋等同列出全部
	result, err = svc.SearchSweets(ctx, model.SweetSearchFilter{})
	require.NoError(t, err)
	require.Len(t, result, 5)

	//沒有任何符合條件回空集合, 不是錯誤
	result, err = svc.SearchSweets(ctx, model.SweetSearchFilter{Name: "nougat"})
	require.NoError(t, err)
	require.Empty(t, result)
}
