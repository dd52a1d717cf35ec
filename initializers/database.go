package initializers

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// OpenDatabase opens a gorm handle for the given driver ("mysql" or "sqlite").
func OpenDatabase(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	// TranslateError maps unique-key violations onto gorm.ErrDuplicatedKey.
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}
	return db, nil
}

func ConnectToDB() {
	db, err := OpenDatabase(AppConfig.DBDriver, AppConfig.DBUrl)
	if err != nil {
		log.Fatal(err)
	}
	DB = db
	log.Println("Connected to database.")
}
