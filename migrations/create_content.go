package migrations

import (
	"solaya-landing-server/models"
	"solaya-landing-server/utils"
)

func MigrateContent() {
	utils.LandingDB.AutoMigrate(&models.GlobalCopy{})
	utils.LandingDB.AutoMigrate(&models.ToolkitImage{})
}
