package client

import (
	"fmt"
	"telegram-shop-bot/internal/model"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the store: MySQL when databaseURL is set, a local SQLite
// file otherwise.
func InitDB(databaseURL, databasePath string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	if databaseURL != "" {
		db, err = gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(databasePath), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&model.User{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}
