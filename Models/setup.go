package Models

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the sqlite database backing the snapshot store and runs the
// schema migrations.
func Connect(path string) (*gorm.DB, error) {
	connection, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	if err := connection.AutoMigrate(&User{}, &Snapshot{}); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return connection, nil
}
