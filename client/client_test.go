package client

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"solaya-landing-server/handlers/auth"
	"solaya-landing-server/handlers/content"
	"solaya-landing-server/handlers/leads"
	"solaya-landing-server/models"
	"solaya-landing-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupServer stands up the real router over an in-memory database so the
// client-side providers and form talk to the actual handlers.
func setupServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.GlobalCopy{},
		&models.ToolkitImage{},
		&models.BrokerAgency{},
		&models.Lead{},
		&models.User{},
		&models.Profile{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	utils.LandingDB = db
	utils.JwtSecret = []byte("test-secret")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/content", content.GetContent)
	r.POST("/leads-post", leads.SubmitLead)
	r.POST("/admin/login", auth.Login)

	authenticated := r.Group("/admin")
	authenticated.Use(auth.AuthMiddleware())
	{
		authenticated.POST("/logout", auth.Logout)
		authenticated.GET("/session", auth.Session)
	}

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, db
}

func seedAdmin(t *testing.T, db *gorm.DB, email, password string, isAdmin bool) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		ID:       uuid.New().String(),
		Email:    email,
		Password: string(hashed),
	}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Profile{ID: user.ID, IsAdmin: isAdmin}).Error)
	return user
}
