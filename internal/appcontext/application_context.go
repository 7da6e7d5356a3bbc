package appcontext

import (
	"context"
	"fmt"
	"log"
	"reflect"

	"github.com/RoyceAzure/lab/sweetshop/internal/config"
	"github.com/RoyceAzure/lab/sweetshop/internal/constants"
	"github.com/RoyceAzure/lab/sweetshop/internal/infra/event"
	"github.com/RoyceAzure/lab/sweetshop/internal/infra/repository/cache"
	"github.com/RoyceAzure/lab/sweetshop/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/sweetshop/internal/service"
	redis_cache "github.com/RoyceAzure/lab/rj_redis/pkg/cache/redis"
	"github.com/RoyceAzure/lab/rj_redis/pkg/redis_client"
	"github.com/RoyceAzure/rj/api/token"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const sweetCachePrefix = "sweet"

type ApplicationContext struct {
	DbConn         *gorm.DB
	DbDao          *db.DbDao
	SweetRepo      *db.SweetRepo
	UserRepo       *db.UserRepo
	RedisClient    *redis.Client
	SweetCache     *cache.SweetCache
	StockPublisher event.StockPublisher
	Cf             *config.Config
	Logger         *zerolog.Logger
	TokenMaker     token.Maker[uuid.UUID]
	SweetService   service.ISweetService
	UserService    service.IUserService
	AuthService    service.IAuthService
}

func NewApplicationContext(cf *config.Config, logger *zerolog.Logger) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf:     cf,
		Logger: logger,
	}
	v := reflect.ValueOf(*cf)
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		fieldName := t.Field(i).Name
		fieldValue := v.Field(i).Interface()
		fmt.Printf("  \"%s\": \"%v\",\n", fieldName, fieldValue)
	}
	err := app.Init()

	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpdbConn()
	if err != nil {
		return err
	}
	err = app.setUpdbDao()
	if err != nil {
		return err
	}
	err = app.setUpRepos()
	if err != nil {
		return err
	}
	err = app.setUpSweetCache()
	if err != nil {
		return err
	}
	err = app.setUpStockPublisher()
	if err != nil {
		return err
	}
	err = app.setTokenMaker()
	if err != nil {
		return err
	}
	err = app.setUpServices()
	if err != nil {
		return err
	}
	err = app.dbInit()
	if err != nil {
		return err
	}

	return nil
}

func (app *ApplicationContext) setUpdbConn() error {
	log.Printf("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpdbDao() error {
	log.Printf("Start setup database DAO")
	app.DbDao = db.NewDbDao(app.DbConn)
	log.Printf("Finish setup database DAO")
	return nil
}

func (app *ApplicationContext) setUpRepos() error {
	log.Printf("Start setup repositories")
	app.SweetRepo = db.NewSweetRepo(app.DbDao)
	app.UserRepo = db.NewUserRepo(app.DbDao)
	log.Printf("Finish setup repositories")
	return nil
}

// setUpSweetCache redis為選配, 沒設定REDIS_ADDR時跳過, 服務直接讀db
func (app *ApplicationContext) setUpSweetCache() error {
	if app.Cf.RedisAddr == "" {
		log.Printf("Redis address not configured, skip sweet cache")
		return nil
	}

	log.Printf("Start setup sweet cache")
	redisClient, err := redis_client.GetRedisClient(app.Cf.RedisAddr, redis_client.WithPassword(app.Cf.RedisPas))
	if err != nil {
		return err
	}
	app.RedisClient = redisClient
	app.SweetCache = cache.NewSweetCache(redis_cache.NewRedisCache(redisClient, sweetCachePrefix))
	log.Printf("Finish setup sweet cache")
	return nil
}

// setUpStockPublisher kafka為選配, 沒設定broker時跳過, 庫存異動不發布事件
func (app *ApplicationContext) setUpStockPublisher() error {
	brokers := app.Cf.KafkaBrokerList()
	if len(brokers) == 0 {
		log.Printf("Kafka brokers not configured, skip stock publisher")
		return nil
	}

	log.Printf("Start setup stock publisher")
	app.StockPublisher = event.NewKafkaStockPublisher(brokers, app.Cf.KafkaTopic)
	log.Printf("Finish setup stock publisher")
	return nil
}

func (app *ApplicationContext) setTokenMaker() error {
	log.Printf("Start setup token maker")

	tokenMaker, err := token.NewPasetoMaker[uuid.UUID](app.Cf.AuthTokenKey)
	if err != nil {
		log.Fatalf("無法創建 token maker: %v", err)
	}

	app.TokenMaker = tokenMaker
	log.Printf("Finish setup token maker")
	return nil
}

func (app *ApplicationContext) setUpServices() error {
	log.Printf("Start setup services")
	app.SweetService = service.NewSweetService(app.SweetRepo, app.SweetCache, app.StockPublisher, app.Logger)
	app.UserService = service.NewUserService(app.UserRepo)
	app.AuthService = service.NewAuthService(app.UserService, app.TokenMaker)
	log.Printf("Finish setup services")
	return nil
}

// dbInit schema migration, 開發環境可再帶入種子資料
func (app *ApplicationContext) dbInit() error {
	log.Printf("Start setup db init")

	err := app.DbDao.InitMigrate()
	if err != nil {
		return err
	}

	if app.Cf.DbSeed && constants.ENV(app.Cf.Environment) != constants.Prod {
		log.Printf("seeding sweet catalog...")
		if err := app.SweetRepo.SeedSweets(context.Background()); err != nil {
			return err
		}
		log.Printf("seeding sweet catalog successed")
	}

	log.Printf("Finish setup db init")
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.StockPublisher != nil {
			log.Printf("Closing stock publisher...")
			if err := app.StockPublisher.Close(); err != nil {
				//有錯誤不結束流程
				log.Printf("stock publisher shutdown error: %v", err)
			}
		}

		if app.RedisClient != nil {
			log.Printf("Closing redis client...")
			if err := app.RedisClient.Close(); err != nil {
				log.Printf("redis client shutdown error: %v", err)
			}
		}

		// 關閉 DB
		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			if sqlDB, err := app.DbConn.DB(); err == nil {
				sqlDB.Close()
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
