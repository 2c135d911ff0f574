package migrations

import (
	"solaya-landing-server/models"
	"solaya-landing-server/utils"
)

func MigrateProfiles() {
	utils.LandingDB.AutoMigrate(&models.User{})
	utils.LandingDB.AutoMigrate(&models.Profile{})
}
