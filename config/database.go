package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDatabase opens the database connection for a service. When
// databaseURL is set it connects to PostgreSQL; otherwise it opens the local
// sqlite file at sqlitePath with foreign-key enforcement enabled, so inserts
// referencing missing rows fail the same way they do on PostgreSQL.
func ConnectDatabase(databaseURL, sqlitePath string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if databaseURL != "" {
		db, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	} else {
		dsn := fmt.Sprintf("%s?_foreign_keys=on", sqlitePath)
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established successfully")
	return db, nil
}
