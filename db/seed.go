package db

import (
	"encoding/json"
	"errors"

	"github.com/linkfolio-dev/linkfolio/internal/logger"
	"github.com/linkfolio-dev/linkfolio/internal/models"
	"github.com/linkfolio-dev/linkfolio/internal/types"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemoProfile makes sure the demo user backing GET /api/profile exists on
// a fresh database. Idempotent: an existing user with that ID wins.
func SeedDemoProfile(demoUserID uint) error {
	var existing models.User

	err := DB.First(&existing, demoUserID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	order, err := json.Marshal(types.DefaultSectionOrder)
	if err != nil {
		return err
	}

	user := models.User{
		Username:     "demo",
		PasswordHash: string(passwordHash),
	}
	user.ID = demoUserID

	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		profile := models.Profile{
			UserID:       user.ID,
			Name:         "Demo User",
			Bio:          "This profile was created automatically on first run.",
			SectionOrder: order,
		}

		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		logger.Log.Info("Seeded demo profile",
			zap.Uint("user_id", user.ID),
			zap.Uint("profile_id", profile.ID))
		return nil
	})
}
