package utils

import (
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

var JwtSecret []byte

// LoadJWTSecret reads the signing secret from the environment. Called once at
// startup, before any route is served.
func LoadJWTSecret() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set in the environment")
	}

	JwtSecret = []byte(secret)
}

// GenerateAccessToken creates a new JWT access token
func GenerateAccessToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(72 * time.Hour).Unix(), // Token expires in 72 hours
	})

	return token.SignedString(JwtSecret)
}
