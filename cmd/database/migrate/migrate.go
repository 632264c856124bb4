package migration

import (
	"FreshTrack-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserSettings{}); err != nil {
		log.Fatalf("Error migrating user settings database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Notification{}); err != nil {
		log.Fatalf("Error migrating notification database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.WasteLogEntry{}); err != nil {
		log.Fatalf("Error migrating waste log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.WasteGoal{}); err != nil {
		log.Fatalf("Error migrating waste goal database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CarbonFactor{}); err != nil {
		log.Fatalf("Error migrating carbon factor database: %v", err)
		return err
	}

	if err := seedCarbonFactors(db); err != nil {
		log.Fatalf("Error seeding carbon factors: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

// seedCarbonFactors loads the per-category reference table. Values are
// kg CO2e per unit quantity; existing rows are left untouched so local
// overrides survive restarts.
func seedCarbonFactors(db *gorm.DB) error {
	factors := []entities.CarbonFactor{
		{Category: "meat", KgCO2e: 27.0},
		{Category: "seafood", KgCO2e: 11.9},
		{Category: "dairy", KgCO2e: 1.9},
		{Category: "produce", KgCO2e: 0.4},
		{Category: "bakery", KgCO2e: 1.3},
		{Category: "grains", KgCO2e: 1.1},
		{Category: "beverages", KgCO2e: 0.7},
		{Category: "frozen", KgCO2e: 1.6},
		{Category: "snacks", KgCO2e: 2.1},
		{Category: "other", KgCO2e: 1.0},
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoNothing: true,
	}).Create(&factors).Error
}
