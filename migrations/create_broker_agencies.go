package migrations

import (
	"solaya-landing-server/models"
	"solaya-landing-server/utils"
)

func MigrateBrokerAgencies() {
	utils.LandingDB.AutoMigrate(&models.BrokerAgency{})
}
