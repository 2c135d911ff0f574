package migrations

import (
	"solaya-landing-server/models"
	"solaya-landing-server/utils"
)

func MigrateLeads() {
	utils.LandingDB.AutoMigrate(&models.Lead{})
}
