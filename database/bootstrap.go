// database/bootstrap.go
package database

import (
	"fmt"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"agri/entities"
)

// Models lists every table AutoMigrate manages.
var Models = []any{
	&entities.Plant{},
	&entities.Disease{},
	&entities.Location{},
	&entities.Crop{},
	&entities.Calculation{},
	&entities.User{},
}

func OpenSQLite(path string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// sqlite serializes writers anyway; one connection avoids "database is locked"
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Info("database ready", zap.String("path", path), zap.Int("tables", len(Models)))
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
