package db

import (
	"log"
	"os"
	"path/filepath"

	"itboxparser/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var DB *gorm.DB

func InitDatabase(dbPath string) {
	var err error

	if dbPath != ":memory:" {
		// Ensure the directory exists (create if it doesn't)
		dir := filepath.Dir(dbPath)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				log.Fatal("Failed to create database directory:", err)
			}
		}

		// Check if the database file exists
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			log.Println("Database file does not exist, creating:", dbPath)
			file, err := os.Create(dbPath)
			if err != nil {
				log.Fatal("Failed to create database file:", err)
			}
			file.Close()
		}
	}

	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connected successfully at", dbPath)

	// Auto migrate the schema
	DB.AutoMigrate(&models.Category{}, &models.Product{})
}

// SaveCategory writes one category row and commits immediately. Re-parsing
// an already ingested slug updates the existing row instead of failing on
// the primary key.
func SaveCategory(category *models.Category) error {
	if err := DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(category).Error; err != nil {
		return err
	}
	log.Printf("INFO: category - %s successfully added!", category.CategoryName)
	return nil
}

// SaveProduct writes one product row, upserting on the external id.
func SaveProduct(product *models.Product) error {
	if err := DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(product).Error; err != nil {
		return err
	}
	log.Printf("INFO: product - %s successfully added!", product.Title)
	return nil
}
