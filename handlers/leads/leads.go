package leads

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"solaya-landing-server/models"
	"solaya-landing-server/utils"

	"github.com/gin-gonic/gin"
)

// GetLeads lists leads for the admin console, newest first, with optional
// search over name and email and page/per_page pagination.
func GetLeads(c *gin.Context) {
	query := utils.LandingDB.Model(&models.Lead{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count leads"})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "50"))
	if err != nil || perPage < 1 {
		perPage = 50
	}

	var leads []models.Lead
	if err := query.Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leads"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leads":    leads,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}

var exportColumns = []string{
	"id", "created_at", "first_name", "last_name", "country_residence",
	"phone_country_code", "phone_number", "email", "bedrooms_choice",
	"buy_timeline", "buy_purpose", "broker_assisted", "broker_type",
	"broker_agency", "consent", "message", "utm_source", "utm_medium",
	"utm_campaign", "utm_term", "utm_content", "page_referrer", "user_agent",
	"ip",
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// csvField quotes a value only when it contains a comma. Embedded quote
// characters are not escaped; known limitation, kept as documented.
func csvField(v string) string {
	if strings.Contains(v, ",") {
		return "\"" + v + "\""
	}
	return v
}

func exportRow(lead models.Lead) []string {
	return []string{
		lead.ID,
		lead.CreatedAt.Format(time.RFC3339),
		lead.FirstName,
		lead.LastName,
		lead.CountryResidence,
		lead.PhoneCountryCode,
		lead.PhoneNumber,
		lead.Email,
		lead.BedroomsChoice,
		lead.BuyTimeline,
		lead.BuyPurpose,
		strconv.FormatBool(lead.BrokerAssisted),
		stringOrEmpty(lead.BrokerType),
		stringOrEmpty(lead.BrokerAgency),
		strconv.FormatBool(lead.Consent),
		stringOrEmpty(lead.Message),
		stringOrEmpty(lead.UtmSource),
		stringOrEmpty(lead.UtmMedium),
		stringOrEmpty(lead.UtmCampaign),
		stringOrEmpty(lead.UtmTerm),
		stringOrEmpty(lead.UtmContent),
		stringOrEmpty(lead.PageReferrer),
		stringOrEmpty(lead.UserAgent),
		stringOrEmpty(lead.IP),
	}
}

// ExportLeads streams the full leads list as CSV, honoring the same search
// filter as GetLeads.
func ExportLeads(c *gin.Context) {
	query := utils.LandingDB.Model(&models.Lead{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var leads []models.Lead
	if err := query.Order("created_at DESC").Find(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leads"})
		return
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(exportColumns, ","))
	sb.WriteString("\n")
	for _, lead := range leads {
		fields := exportRow(lead)
		for i, v := range fields {
			fields[i] = csvField(v)
		}
		sb.WriteString(strings.Join(fields, ","))
		sb.WriteString("\n")
	}

	c.Header("Content-Disposition", "attachment; filename=leads.csv")
	c.Data(http.StatusOK, "text/csv", []byte(sb.String()))
}
