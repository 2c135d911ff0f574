package leads

import (
	"net/http"
	"os"

	"solaya-landing-server/models"
	"solaya-landing-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type intakeRequest struct {
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	CountryResidence string  `json:"countryResidence"`
	PhoneCountryCode string  `json:"phoneCountryCode"`
	PhoneNumber      string  `json:"phoneNumber"`
	Email            string  `json:"email"`
	BedroomsChoice   string  `json:"bedroomsChoice"`
	BuyTimeline      string  `json:"buyTimeline"`
	BuyPurpose       string  `json:"buyPurpose"`
	BrokerAssisted   *bool   `json:"brokerAssisted"`
	BrokerType       *string `json:"brokerType"`
	BrokerAgency     *string `json:"brokerAgency"`
	Consent          *bool   `json:"consent"`
	Message          *string `json:"message"`
	UtmSource        *string `json:"utmSource"`
	UtmMedium        *string `json:"utmMedium"`
	UtmCampaign      *string `json:"utmCampaign"`
	UtmTerm          *string `json:"utmTerm"`
	UtmContent       *string `json:"utmContent"`
}

// headerValue returns a pointer to the first non-empty header, or nil.
func headerValue(c *gin.Context, names ...string) *string {
	for _, name := range names {
		if v := c.GetHeader(name); v != "" {
			return &v
		}
	}
	return nil
}

// SubmitLead accepts a public lead registration and inserts exactly one row.
// Resubmission creates a new row; there is no deduplication.
func SubmitLead(c *gin.Context) {
	if key := os.Getenv("LANDING_API_KEY"); key != "" && c.GetHeader("apikey") != key {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
		return
	}

	var req intakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	// The two booleans must be present, not necessarily true.
	if req.FirstName == "" || req.LastName == "" || req.CountryResidence == "" ||
		req.PhoneCountryCode == "" || req.PhoneNumber == "" || req.Email == "" ||
		req.BedroomsChoice == "" || req.BuyTimeline == "" || req.BuyPurpose == "" ||
		req.BrokerAssisted == nil || req.Consent == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	lead := models.Lead{
		ID:               uuid.New().String(),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		CountryResidence: req.CountryResidence,
		PhoneCountryCode: req.PhoneCountryCode,
		PhoneNumber:      req.PhoneNumber,
		Email:            req.Email,
		BedroomsChoice:   req.BedroomsChoice,
		BuyTimeline:      req.BuyTimeline,
		BuyPurpose:       req.BuyPurpose,
		BrokerAssisted:   *req.BrokerAssisted,
		BrokerType:       req.BrokerType,
		BrokerAgency:     req.BrokerAgency,
		Consent:          *req.Consent,
		Message:          req.Message,
		UtmSource:        req.UtmSource,
		UtmMedium:        req.UtmMedium,
		UtmCampaign:      req.UtmCampaign,
		UtmTerm:          req.UtmTerm,
		UtmContent:       req.UtmContent,
		PageReferrer:     headerValue(c, "Referer"),
		UserAgent:        headerValue(c, "User-Agent"),
		IP:               headerValue(c, "x-forwarded-for", "X-Real-IP", "CF-Connecting-IP"),
	}

	if err := utils.LandingDB.Create(&lead).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "leadId": lead.ID})
}
