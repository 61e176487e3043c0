package sqlite

import (
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"repairdesk/internal/domain/entity"
)

// Init opens the database at the given path (":memory:" in tests) and
// migrates the schema.
func Init(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.Company{},
		&entity.Person{},
		&entity.Client{},
		&entity.Brand{},
		&entity.Model{},
		&entity.Role{},
		&entity.User{},
		&entity.ServiceStatus{},
		&entity.ServiceOrder{},
		&entity.StatusChange{},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
