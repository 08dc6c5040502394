package database

import (
	"internhours/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(dsn string) error {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	// Auto migrate the schema
	if err := DB.AutoMigrate(&models.User{}, &models.Entry{}, &models.Preference{}); err != nil {
		return err
	}

	return nil
}

func GetDB() *gorm.DB {
	return DB
}
