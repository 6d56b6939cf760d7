package gorm

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gig-weather/pkg/resource"
)

// Connect opens the gorm connection using the application properties.
func Connect() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		resource.GetString("app.db.host"),
		resource.GetString("app.db.user"),
		resource.GetString("app.db.password"),
		resource.GetString("app.db.name"),
		resource.GetString("app.db.port"),
		resource.GetString("app.db.ssl-mode"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}
