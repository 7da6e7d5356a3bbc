package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetDbConn 建立postgres連線
// TranslateError開啟後 unique violation會轉成gorm.ErrDuplicatedKey
func GetDbConn(dbName, dbHost, dbPort, dbUser, dbPas string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPas, dbName, dbPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}
