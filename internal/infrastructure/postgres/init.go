package postgres

import (
	"log"

	"github.com/Onahi7/Napps-summit/internal/config"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.SummitConfig) *gorm.DB {
	dsn := cfg.SummitDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.RegistrationModel{},
		&models.TransactionModel{},
		&models.RefundModel{},
		&models.ProviderConfigModel{},
		&models.MealValidationModel{},
	)

	return db
}
