package leads

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"solaya-landing-server/models"
	"solaya-landing-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Lead{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	utils.LandingDB = db
	return db
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/leads-post", SubmitLead)
	return r
}

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"firstName":        "Aisha",
		"lastName":         "Rahman",
		"countryResidence": "United Arab Emirates",
		"phoneCountryCode": "+971",
		"phoneNumber":      "501234567",
		"email":            "aisha@example.com",
		"bedroomsChoice":   "2",
		"buyTimeline":      "3-6 months",
		"buyPurpose":       "investment",
		"brokerAssisted":   false,
		"consent":          true,
	}
}

func postLead(r *gin.Engine, payload map[string]interface{}, headers map[string]string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/leads-post", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitLeadCreatesOneRow(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter()

	w := postLead(r, validPayload(), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		OK     bool   `json:"ok"`
		LeadID string `json:"leadId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.NotEmpty(t, resp.LeadID)

	var leads []models.Lead
	require.NoError(t, db.Find(&leads).Error)
	require.Len(t, leads, 1)

	lead := leads[0]
	assert.Equal(t, resp.LeadID, lead.ID)
	assert.Equal(t, "Aisha", lead.FirstName)
	assert.Equal(t, "Rahman", lead.LastName)
	assert.Equal(t, "United Arab Emirates", lead.CountryResidence)
	assert.Equal(t, "+971", lead.PhoneCountryCode)
	assert.Equal(t, "501234567", lead.PhoneNumber)
	assert.Equal(t, "aisha@example.com", lead.Email)
	assert.Equal(t, "2", lead.BedroomsChoice)
	assert.Equal(t, "3-6 months", lead.BuyTimeline)
	assert.Equal(t, "investment", lead.BuyPurpose)
	assert.False(t, lead.BrokerAssisted)
	assert.True(t, lead.Consent)
}

func TestSubmitLeadMissingRequiredField(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter()

	payload := validPayload()
	delete(payload, "email")

	w := postLead(r, payload, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")

	var count int64
	require.NoError(t, db.Model(&models.Lead{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSubmitLeadBooleansMustBePresent(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter()

	payload := validPayload()
	delete(payload, "consent")
	w := postLead(r, payload, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	payload = validPayload()
	delete(payload, "brokerAssisted")
	w = postLead(r, payload, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// consent false is present, so it passes the endpoint
	payload = validPayload()
	payload["consent"] = false
	w = postLead(r, payload, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Lead{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSubmitLeadIPHeaderPrecedence(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter()

	forwarded := validPayload()
	forwarded["email"] = "forwarded@example.com"
	w := postLead(r, forwarded, map[string]string{"x-forwarded-for": "1.2.3.4"})
	require.Equal(t, http.StatusOK, w.Code)

	realIP := validPayload()
	realIP["email"] = "realip@example.com"
	w = postLead(r, realIP, map[string]string{
		"X-Real-IP":        "5.6.7.8",
		"CF-Connecting-IP": "9.9.9.9",
	})
	require.Equal(t, http.StatusOK, w.Code)

	bare := validPayload()
	bare["email"] = "bare@example.com"
	w = postLead(r, bare, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var lead models.Lead
	require.NoError(t, db.Where("email = ?", "forwarded@example.com").First(&lead).Error)
	require.NotNil(t, lead.IP)
	assert.Equal(t, "1.2.3.4", *lead.IP)

	lead = models.Lead{}
	require.NoError(t, db.Where("email = ?", "realip@example.com").First(&lead).Error)
	require.NotNil(t, lead.IP)
	assert.Equal(t, "5.6.7.8", *lead.IP)

	lead = models.Lead{}
	require.NoError(t, db.Where("email = ?", "bare@example.com").First(&lead).Error)
	assert.Nil(t, lead.IP)
}

func TestSubmitLeadCapturesRequestMetadata(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter()

	w := postLead(r, validPayload(), map[string]string{
		"Referer":    "https://solaya.example/?utm_source=google",
		"User-Agent": "Mozilla/5.0",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var lead models.Lead
	require.NoError(t, db.First(&lead).Error)
	require.NotNil(t, lead.PageReferrer)
	assert.Equal(t, "https://solaya.example/?utm_source=google", *lead.PageReferrer)
	require.NotNil(t, lead.UserAgent)
	assert.Equal(t, "Mozilla/5.0", *lead.UserAgent)
}

func TestSubmitLeadNoDeduplication(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter()

	postLead(r, validPayload(), nil)
	postLead(r, validPayload(), nil)

	var count int64
	require.NoError(t, db.Model(&models.Lead{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestSubmitLeadAPIKey(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter()
	t.Setenv("LANDING_API_KEY", "secret-key")

	w := postLead(r, validPayload(), map[string]string{"apikey": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Lead{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	w = postLead(r, validPayload(), map[string]string{"apikey": "secret-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}
