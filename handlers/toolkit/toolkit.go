package toolkit

import (
	"net/http"

	"solaya-landing-server/models"
	"solaya-landing-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func GetToolkitImages(c *gin.Context) {
	var images []models.ToolkitImage
	if err := utils.LandingDB.Order("sort_order IS NULL, sort_order ASC").Find(&images).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch toolkit images"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"toolkit_images": images,
	})
}

type toolkitImageInput struct {
	Label    string  `json:"label"`
	ImageURL string  `json:"image_url"`
	Group    *string `json:"group"`
	Order    *int    `json:"order"`
}

func CreateToolkitImage(c *gin.Context) {
	var input toolkitImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if input.Label == "" || input.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Label and image URL are required"})
		return
	}

	image := models.ToolkitImage{
		ID:       uuid.New().String(),
		Label:    input.Label,
		ImageURL: input.ImageURL,
		Group:    input.Group,
		Order:    input.Order,
	}

	if err := utils.LandingDB.Create(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"toolkit_image": image})
}

func UpdateToolkitImage(c *gin.Context) {
	id := c.Param("id")

	var image models.ToolkitImage
	if err := utils.LandingDB.Where("id = ?", id).First(&image).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Toolkit image not found"})
		return
	}

	var input toolkitImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if input.Label == "" || input.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Label and image URL are required"})
		return
	}

	image.Label = input.Label
	image.ImageURL = input.ImageURL
	image.Group = input.Group
	image.Order = input.Order

	if err := utils.LandingDB.Save(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"toolkit_image": image})
}

// DeleteToolkitImage removes the row. No confirmation step, no undo.
func DeleteToolkitImage(c *gin.Context) {
	id := c.Param("id")

	result := utils.LandingDB.Where("id = ?", id).Delete(&models.ToolkitImage{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Toolkit image not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Toolkit image deleted"})
}
