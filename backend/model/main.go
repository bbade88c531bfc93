package model

import (
	"os"
	"path/filepath"

	"bookgram/backend/common"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func createTestUserIfNeed() error {
	var userCount int64
	if err := DB.Model(&User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		common.SysLog("no user exists, creating the default test user: test@bookgram.com / testuser")
		testUser := User{
			Email:            "test@bookgram.com",
			Username:         "testuser",
			SubscribedTopics: datatypes.JSONSlice[string]{},
		}
		if err := DB.Create(&testUser).Error; err != nil {
			return err
		}
	}
	return nil
}

func InitDB() (err error) {
	var dbInstance *gorm.DB

	if common.DatabaseDSN != "" {
		common.SysLog("using PostgreSQL database")
		dbInstance, err = gorm.Open(postgres.Open(common.DatabaseDSN), &gorm.Config{
			PrepareStmt: true,
		})
	} else {
		common.SysLog("DATABASE_DSN not set, using SQLite as database: " + common.SQLitePath)
		if dir := filepath.Dir(common.SQLitePath); dir != "." {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		dbInstance, err = gorm.Open(sqlite.Open(common.SQLitePath), &gorm.Config{
			PrepareStmt: true,
		})
	}

	if err != nil {
		common.SysError("failed to connect database: " + err.Error())
		return err
	}

	DB = dbInstance

	err = DB.AutoMigrate(
		&Book{},
		&File{},
		&User{},
	)
	if err != nil {
		common.SysError("failed to auto migrate database schema: " + err.Error())
		return err
	}

	if err = createTestUserIfNeed(); err != nil {
		common.SysError("failed to create test user: " + err.Error())
		return err
	}

	return nil
}

func CloseDB() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	common.SysLog("closing database connection")
	return sqlDB.Close()
}
