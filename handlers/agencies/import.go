package agencies

import (
	"encoding/csv"
	"errors"
	"log"
	"net/http"
	"strings"

	"solaya-landing-server/models"
	"solaya-landing-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImportBrokerAgencies bulk-imports agencies from a CSV file with a header
// row. Only the "name" column is recognized; rows with an empty name are
// discarded. For each row the agency is looked up by exact name first: a hit
// counts as success without inserting, a miss inserts. First write wins; later
// duplicates are no-ops. A single row's failure does not abort the batch.
func ImportBrokerAgencies(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CSV file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read CSV file"})
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing CSV: " + err.Error()})
		return
	}

	if len(records) < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CSV file is empty"})
		return
	}

	nameIndex := -1
	for i, col := range records[0] {
		if strings.EqualFold(strings.TrimSpace(col), "name") {
			nameIndex = i
			break
		}
	}
	if nameIndex == -1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CSV header must contain a name column"})
		return
	}

	var names []string
	for _, row := range records[1:] {
		if nameIndex >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[nameIndex])
		if name != "" {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid agency names found in the CSV"})
		return
	}

	successCount := 0
	errorCount := 0

	for _, name := range names {
		var existing models.BrokerAgency
		err := utils.LandingDB.Where("name = ?", name).First(&existing).Error
		if err == nil {
			// Already present; counts as success without inserting.
			successCount++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error processing agency %q: %v", name, err)
			errorCount++
			continue
		}

		agency := models.BrokerAgency{
			ID:   uuid.New().String(),
			Name: name,
		}
		if err := utils.LandingDB.Create(&agency).Error; err != nil {
			log.Printf("Error processing agency %q: %v", name, err)
			errorCount++
			continue
		}
		successCount++
	}

	c.JSON(http.StatusOK, gin.H{
		"processed": len(names),
		"succeeded": successCount,
		"failed":    errorCount,
	})
}
