package database

import (
	"github.com/gymcore/gymcore/gym-management-service/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedGyms creates the demo gyms used in local runs. Existing rows are left alone.
func SeedGyms(db *gorm.DB) error {
	gyms := []models.Gym{
		{ID: "00000000-0000-0000-0000-0000000000a1", Name: "Downtown Iron", UniqueCode: "DEMOGYM2", IsActive: true},
		{ID: "00000000-0000-0000-0000-0000000000a2", Name: "Harbor Fitness", UniqueCode: "DEMOGYM3", IsActive: true},
		{ID: "00000000-0000-0000-0000-0000000000a3", Name: "Closed Club", UniqueCode: "DEMOGYM4", IsActive: false},
	}

	for _, gym := range gyms {
		result := db.Where(models.Gym{ID: gym.ID}).FirstOrCreate(&gym)
		if result.Error != nil {
			return result.Error
		}
	}

	logrus.WithField("count", len(gyms)).Info("Gyms seeded successfully")
	return nil
}
