package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/pet-shop/internal/models"
)

// DefaultServices is the catalog a fresh shop starts with.
func DefaultServices() []models.Service {
	return []models.Service{
		{Name: "Toelettatura Completa", Description: "Bagno, asciugatura, taglio unghie e pulizia orecchie", Price: 35, Duration: 90, Active: true},
		{Name: "Taglio Pelo", Description: "Taglio e rifinitura del pelo", Price: 25, Duration: 60, Active: true},
		{Name: "Visita Veterinaria", Description: "Controllo generale dello stato di salute", Price: 50, Duration: 30, Active: true},
		{Name: "Vaccinazione", Description: "Somministrazione vaccini di routine", Price: 40, Duration: 20, Active: true},
		{Name: "Pulizia Dentale", Description: "Pulizia e controllo dei denti", Price: 45, Duration: 45, Active: true},
		{Name: "Educazione Base", Description: "Lezione individuale di educazione di base", Price: 60, Duration: 60, Active: true},
	}
}

// SeedServices inserts the default catalog when the table is empty. It
// returns how many rows it wrote.
func SeedServices(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Service{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count services: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	services := DefaultServices()
	if err := db.WithContext(ctx).Create(&services).Error; err != nil {
		return 0, fmt.Errorf("seed services: %w", err)
	}
	return len(services), nil
}
