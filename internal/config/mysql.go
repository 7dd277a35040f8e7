package config

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the shared GORM handle.
var DB *gorm.DB
var err error

// InitDB opens the MySQL connection. TranslateError lets repositories see
// gorm.ErrDuplicatedKey instead of driver-specific duplicate errors, which
// the like toggle depends on.
func InitDB() {
	dsn := os.Getenv("DB_DSN")
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Error connecting to the database:", err)
	}
	log.Println("Database connected")
}
