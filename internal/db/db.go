package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/winespa/spa-scheduler/internal/config"
	"github.com/winespa/spa-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	database, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Staff{},
		&models.Service{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.Novelty{},
		&models.Sale{},
		&models.SaleItem{},
		&models.Supply{},
		&models.Supplier{},
		&models.Purchase{},
		&models.PurchaseItem{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	return database
}
