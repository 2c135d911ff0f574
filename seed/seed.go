// seed/seed.go
package seed

import (
	"errors"
	"log"
	"os"

	"solaya-landing-server/models"
	"solaya-landing-server/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedGlobalCopy creates the content singleton if it is missing. Content
// authoring replaces these values out of band; the application never writes
// this row again.
func SeedGlobalCopy() error {
	var existing models.GlobalCopy
	err := utils.LandingDB.Where("id = ?", models.GlobalCopyID).First(&existing).Error
	if err == nil {
		log.Println("Global copy already exists. Skipping seeding.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	globalCopy := models.GlobalCopy{
		ID:                   models.GlobalCopyID,
		HeroHeadline:         "A New Address for Island Living",
		HeroSubheadline:      "Waterfront residences where the city meets the sea",
		HeroCTALabel:         "Register Your Interest",
		IntroTitle:           "Introducing Solaya",
		IntroRichText:        "An exclusive collection of residences designed around light, water and open horizons.",
		IntroButtonLabel:     "Discover More",
		DestinationTitle:     "The Destination",
		DestinationParagraph: "Minutes from the marina, moments from everything.",
		ResidencesTitle:      "The Residences",
		ResidencesParagraph:  "One to four bedroom homes, each with uninterrupted sea views.",
		ExperienceTitle:      "Experience Solaya",
		ExperienceParagraph:  "Amenities curated for a life well lived.",
	}

	if err := utils.LandingDB.Create(&globalCopy).Error; err != nil {
		return err
	}

	log.Println("Global copy seeded successfully.")
	return nil
}

// SeedAdminUser creates the initial back-office account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Admin accounts are seeded, not self-registered.
func SeedAdminUser() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	err := utils.LandingDB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Println("Admin user already exists. Skipping seeding.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		ID:       uuid.New().String(),
		Email:    email,
		Password: string(hashed),
	}
	if err := utils.LandingDB.Create(&user).Error; err != nil {
		return err
	}

	profile := models.Profile{
		ID:      user.ID,
		IsAdmin: true,
	}
	if err := utils.LandingDB.Create(&profile).Error; err != nil {
		return err
	}

	log.Println("Admin user seeded successfully.")
	return nil
}
