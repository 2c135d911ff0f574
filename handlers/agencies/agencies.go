package agencies

import (
	"net/http"
	"strings"

	"solaya-landing-server/models"
	"solaya-landing-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func GetBrokerAgencies(c *gin.Context) {
	var agencies []models.BrokerAgency
	if err := utils.LandingDB.Order("name ASC").Find(&agencies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch broker agencies"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"broker_agencies": agencies,
	})
}

func CreateBrokerAgency(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Agency name is required"})
		return
	}

	agency := models.BrokerAgency{
		ID:   uuid.New().String(),
		Name: input.Name,
	}

	if err := utils.LandingDB.Create(&agency).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"broker_agency": agency})
}

func UpdateBrokerAgency(c *gin.Context) {
	id := c.Param("id")

	var agency models.BrokerAgency
	if err := utils.LandingDB.Where("id = ?", id).First(&agency).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Broker agency not found"})
		return
	}

	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Agency name is required"})
		return
	}

	agency.Name = input.Name
	if err := utils.LandingDB.Save(&agency).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"broker_agency": agency})
}

// DeleteBrokerAgency removes the row. No confirmation step, no undo.
func DeleteBrokerAgency(c *gin.Context) {
	id := c.Param("id")

	result := utils.LandingDB.Where("id = ?", id).Delete(&models.BrokerAgency{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Broker agency not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Broker agency deleted"})
}
