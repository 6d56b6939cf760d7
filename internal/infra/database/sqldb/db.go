package sqldb

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"gig-weather/pkg/resource"
)

// Connect opens a database/sql connection using the application properties.
func Connect() (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		resource.GetString("app.db.host"),
		resource.GetString("app.db.port"),
		resource.GetString("app.db.user"),
		resource.GetString("app.db.password"),
		resource.GetString("app.db.name"),
		resource.GetString("app.db.ssl-mode"),
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}
