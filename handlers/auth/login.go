package auth

import (
	"log"
	"net/http"

	"solaya-landing-server/models"
	"solaya-landing-server/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. Please provide a valid email and password."})
		return
	}

	var user models.User
	if err := utils.LandingDB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
		return
	}

	// Check password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
		return
	}

	// Generate JWT token
	tokenString, err := utils.GenerateAccessToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	// Admin flag lookup failure fails closed
	isAdmin := false
	var profile models.Profile
	if err := utils.LandingDB.Where("id = ?", user.ID).First(&profile).Error; err != nil {
		log.Printf("Error fetching admin status for %s: %v", user.ID, err)
	} else {
		isAdmin = profile.IsAdmin
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful.",
		"token":   tokenString,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
		"is_admin": isAdmin,
	})
}
