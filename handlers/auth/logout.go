package auth

import (
	"net/http"
	"time"

	"solaya-landing-server/models"
	"solaya-landing-server/utils"

	"github.com/gin-gonic/gin"
)

func Logout(c *gin.Context) {
	userInterface, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	user := userInterface.(models.User)

	// JWT tokens are stateless; record the sign-out time so clients can tell
	// when the session ended.
	now := time.Now()
	user.LastLogoutAt = &now
	if err := utils.LandingDB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful.",
	})
}
