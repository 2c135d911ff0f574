package main

import (
	"log"
	"os"
	"time"

	"solaya-landing-server/handlers/agencies"
	"solaya-landing-server/handlers/auth"
	"solaya-landing-server/handlers/content"
	"solaya-landing-server/handlers/leads"
	"solaya-landing-server/handlers/toolkit"
	"solaya-landing-server/migrations"
	"solaya-landing-server/seed"
	"solaya-landing-server/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", "apikey", "x-client-info"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	utils.LoadJWTSecret()
	utils.ConnectDatabase()

	migrations.MigrateContent()
	migrations.MigrateLeads()
	migrations.MigrateBrokerAgencies()
	migrations.MigrateProfiles()

	// Seed Initial Data
	if err := seed.SeedGlobalCopy(); err != nil {
		log.Fatalf("Failed to seed global copy: %v", err)
	}
	if err := seed.SeedAdminUser(); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	// Public routes
	r.GET("/content", content.GetContent)
	r.POST("/leads-post", leads.SubmitLead)
	r.POST("/admin/login", auth.Login)

	authenticated := r.Group("/admin")
	authenticated.Use(auth.AuthMiddleware())
	{
		authenticated.POST("/logout", auth.Logout)
		authenticated.GET("/session", auth.Session)
	}

	admin := r.Group("/admin")
	admin.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
	{
		admin.GET("/leads", leads.GetLeads)
		admin.GET("/leads/export", leads.ExportLeads)
		toolkit.RegisterToolkitRoutes(admin)
		agencies.RegisterAgenciesRoutes(admin)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
