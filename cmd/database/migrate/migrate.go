package migration

import (
	"fmt"
	"log"

	"Couple-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"couple", &entities.Couple{}},
		{"food item", &entities.FoodItem{}},
		{"food event", &entities.FoodEvent{}},
		{"shopping list", &entities.ShoppingList{}},
		{"shopping item", &entities.ShoppingItem{}},
		{"menstruation period", &entities.MenstruationPeriod{}},
		{"menstruation symptom", &entities.MenstruationSymptom{}},
		{"emotion entry", &entities.EmotionEntry{}},
		{"task list", &entities.TaskList{}},
		{"task", &entities.Task{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			log.Fatalf("Error migrating %s database: %v", m.name, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
