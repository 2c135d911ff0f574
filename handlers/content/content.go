package content

import (
	"net/http"

	"solaya-landing-server/models"
	"solaya-landing-server/utils"

	"github.com/gin-gonic/gin"
)

// GetContent serves the public site payload: the global copy singleton plus
// all toolkit images ordered ascending, nulls last.
func GetContent(c *gin.Context) {
	var globalCopy models.GlobalCopy
	if err := utils.LandingDB.Where("id = ?", models.GlobalCopyID).First(&globalCopy).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch global copy: " + err.Error()})
		return
	}

	var toolkitImages []models.ToolkitImage
	if err := utils.LandingDB.Order("sort_order IS NULL, sort_order ASC").Find(&toolkitImages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch toolkit images: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"global_copy":    globalCopy,
		"toolkit_images": toolkitImages,
	})
}
