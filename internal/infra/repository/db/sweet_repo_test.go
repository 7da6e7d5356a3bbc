package db

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/RoyceAzure/lab/sweetshop/internal/infra/repository/db/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type SweetRepoTestSuite struct {
	suite.Suite
	db        *gorm.DB
	sweetRepo *SweetRepo
}

// SetupSuite 在測試套件開始前執行
func (suite *SweetRepoTestSuite) SetupSuite() {
	db, err := GetDbConn("lab_sweetshop", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)
	dbDao := NewDbDao(db)

	err = dbDao.InitMigrate()
	require.NoError(suite.T(), err)

	suite.db = db
	suite.sweetRepo = NewSweetRepo(dbDao)
}

// SetupTest 在每個測試前執行
func (suite *SweetRepoTestSuite) SetupTest() {
	// 清空資料表
	suite.db.Exec("DELETE FROM sweets")
}

// TearDownSuite 在測試套件結束後執行
func (suite *SweetRepoTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func TestSweetRepoSuite(t *testing.T) {
	suite.Run(t, new(SweetRepoTestSuite))
}

func makeSweet(name, category string, price float64, quantity int) *model.Sweet {
	return &model.Sweet{
		ID:       uuid.New(),
		Name:     name,
		Category: category,
		Price:    decimal.NewFromFloat(price),
		Quantity: quantity,
		Rating:   4.5,
	}
}

func (suite *SweetRepoTestSuite) TestCreateAndGetSweet() {
	ctx := context.Background()
	sweet := makeSweet("Chocolate Truffle", "Chocolate", 299, 50)

	err := suite.sweetRepo.CreateSweet(ctx, sweet)
	require.NoError(suite.T(), err)

	got, err := suite.sweetRepo.GetSweetByID(ctx, sweet.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), sweet.Name, got.Name)
	require.Equal(suite.T(), sweet.Category, got.Category)
	require.True(suite.T(), sweet.Price.Equal(got.Price))
	require.Equal(suite.T(), 50, got.Quantity)

	byName, err := suite.sweetRepo.GetSweetByName(ctx, "Chocolate Truffle")
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), sweet.ID, byName.ID)
}

func (suite *SweetRepoTestSuite) TestGetSweetNotFound() {
	ctx := context.Background()

	_, err := suite.sweetRepo.GetSweetByID(ctx, uuid.New())
	require.ErrorIs(suite.T(), err, ErrSweetNotFound)
}

func (suite *SweetRepoTestSuite) TestCreateSweetDuplicateName() {
	ctx := context.Background()

	err := suite.sweetRepo.CreateSweet(ctx, makeSweet("Ladoo", "Traditional", 150, 10))
	require.NoError(suite.T(), err)

	err = suite.sweetRepo.CreateSweet(ctx, makeSweet("Ladoo", "Traditional", 180, 5))
	require.ErrorIs(suite.T(), err, gorm.ErrDuplicatedKey)
}

func (suite *SweetRepoTestSuite) TestSearchSweets() {
	ctx := context.Background()

	sweets := []model.Sweet{
		*makeSweet("Dark Chocolate Bar", "Chocolate", 80, 5),
		*makeSweet("Milk Chocolate Bar", "Chocolate", 100, 5),
		*makeSweet("Gulab Jamun", "Traditional", 150, 5),
		*makeSweet("Cheesecake", "Cake", 200, 5),
		*makeSweet("Macaron Box", "French", 250, 5),
	}
	err := suite.sweetRepo.CreateSweetsBatch(ctx, sweets)
	require.NoError(suite.T(), err)

	//名稱模糊比對不分大小寫
	result, err := suite.sweetRepo.SearchSweets(ctx, "chocolate", "", nil, nil)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), result, 2)

	//價格區間包含邊界
	minPrice := 100.0
	maxPrice := 200.0
	result, err = suite.sweetRepo.SearchSweets(ctx, "", "", &minPrice, &maxPrice)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), result, 3)
	for _, s := range result {
		price := s.Price.InexactFloat64()
		require.GreaterOrEqual(suite.T(), price, minPrice)
		require.LessOrEqual(suite.T(), price, maxPrice)
	}

	//單邊區間
	result, err = suite.sweetRepo.SearchSweets(ctx, "", "", nil, &minPrice)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), result, 2)

	//分類與價格同時過濾
	result, err = suite.sweetRepo.SearchSweets(ctx, "", "Chocolate", &minPrice, nil)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), result, 1)
	require.Equal(suite.T(), "Milk Chocolate Bar", result[0].Name)

	//沒有任何條件等同全查
	result, err = suite.sweetRepo.SearchSweets(ctx, "", "", nil, nil)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), result, 5)
}

func (suite *SweetRepoTestSuite) TestUpdateSweetFields() {
	ctx := context.Background()
	sweet := makeSweet("Barfi", "Traditional", 180, 90)
	err := suite.sweetRepo.CreateSweet(ctx, sweet)
	require.NoError(suite.T(), err)

	err = suite.sweetRepo.UpdateSweetFields(ctx, sweet.ID, map[string]interface{}{
		"price":    decimal.NewFromFloat(200),
		"category": "Milk",
	})
	require.NoError(suite.T(), err)

	got, err := suite.sweetRepo.GetSweetByID(ctx, sweet.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "Milk", got.Category)
	require.True(suite.T(), decimal.NewFromFloat(200).Equal(got.Price))
	//未更新欄位維持原值
	require.Equal(suite.T(), "Barfi", got.Name)
	require.Equal(suite.T(), 90, got.Quantity)

	err = suite.sweetRepo.UpdateSweetFields(ctx, uuid.New(), map[string]interface{}{"price": decimal.NewFromFloat(10)})
	require.ErrorIs(suite.T(), err, ErrSweetNotFound)
}

func (suite *SweetRepoTestSuite) TestAddAndReduceStock() {
	ctx := context.Background()
	sweet := makeSweet("Rasgulla", "Traditional", 120, 2)
	err := suite.sweetRepo.CreateSweet(ctx, sweet)
	require.NoError(suite.T(), err)

	err = suite.sweetRepo.AddStock(ctx, sweet.ID, 3)
	require.NoError(suite.T(), err)

	err = suite.sweetRepo.ReduceStock(ctx, sweet.ID, 1)
	require.NoError(suite.T(), err)

	got, err := suite.sweetRepo.GetSweetByID(ctx, sweet.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 4, got.Quantity)

	//庫存不足整筆拒絕, 不會部分扣減
	err = suite.sweetRepo.ReduceStock(ctx, sweet.ID, 10)
	require.ErrorIs(suite.T(), err, ErrStockNotEnough)

	got, err = suite.sweetRepo.GetSweetByID(ctx, sweet.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 4, got.Quantity)

	err = suite.sweetRepo.ReduceStock(ctx, uuid.New(), 1)
	require.ErrorIs(suite.T(), err, ErrSweetNotFound)

	err = suite.sweetRepo.AddStock(ctx, uuid.New(), 1)
	require.ErrorIs(suite.T(), err, ErrSweetNotFound)
}

// 最後一件庫存同時被兩個請求購買, 必須只有一個成功
func (suite *SweetRepoTestSuite) TestConcurrentReduceStockLastItem() {
	ctx := context.Background()
	sweet := makeSweet("Last Macaron", "French", 90, 1)
	err := suite.sweetRepo.CreateSweet(ctx, sweet)
	require.NoError(suite.T(), err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			errs[idx] = suite.sweetRepo.ReduceStock(ctx, sweet.ID, 1)
		}(i)
	}
	wg.Wait()

	var success, outOfStock int
	for _, err := range errs {
		switch {
		case err == nil:
			success++
		case errors.Is(err, ErrStockNotEnough):
			outOfStock++
		default:
			suite.T().Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(suite.T(), 1, success)
	require.Equal(suite.T(), 1, outOfStock)

	got, err := suite.sweetRepo.GetSweetByID(ctx, sweet.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 0, got.Quantity)
}

func (suite *SweetRepoTestSuite) TestDeleteSweetReturnsSnapshot() {
	ctx := context.Background()
	sweet := makeSweet("Kaju Katli", "Traditional", 250, 35)
	err := suite.sweetRepo.CreateSweet(ctx, sweet)
	require.NoError(suite.T(), err)

	deleted, err := suite.sweetRepo.DeleteSweet(ctx, sweet.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "Kaju Katli", deleted.Name)
	require.Equal(suite.T(), 35, deleted.Quantity)

	_, err = suite.sweetRepo.GetSweetByID(ctx, sweet.ID)
	require.ErrorIs(suite.T(), err, ErrSweetNotFound)

	_, err = suite.sweetRepo.DeleteSweet(ctx, sweet.ID)
	require.ErrorIs(suite.T(), err, ErrSweetNotFound)
}

func (suite *SweetRepoTestSuite) TestSeedSweetsIdempotent() {
	ctx := context.Background()

	err := suite.sweetRepo.SeedSweets(ctx)
	require.NoError(suite.T(), err)

	count, err := suite.sweetRepo.CountSweets(ctx)
	require.NoError(suite.T(), err)
	require.EqualValues(suite.T(), 10, count)

	//重複seed不會新增資料
	err = suite.sweetRepo.SeedSweets(ctx)
	require.NoError(suite.T(), err)

	count, err = suite.sweetRepo.CountSweets(ctx)
	require.NoError(suite.T(), err)
	require.EqualValues(suite.T(), 10, count)
}
