package auth

import (
	"log"
	"net/http"

	"solaya-landing-server/models"
	"solaya-landing-server/utils"

	"github.com/gin-gonic/gin"
)

// Session returns the authenticated user and admin flag. The client-side
// session provider calls this on start and after every auth-state change.
func Session(c *gin.Context) {
	userInterface, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	user := userInterface.(models.User)

	isAdmin := false
	var profile models.Profile
	if err := utils.LandingDB.Where("id = ?", user.ID).First(&profile).Error; err != nil {
		log.Printf("Error fetching admin status for %s: %v", user.ID, err)
	} else {
		isAdmin = profile.IsAdmin
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
		"is_admin": isAdmin,
	})
}
