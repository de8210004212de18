package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/MTahaFarrukh/PortBuilder/pkg/auth"
)

// Issues a development JWT for a user id so the API can be exercised without
// a real identity provider. USER_ID is optional; a fresh one is generated
// when absent.
func main() {
	fmt.Println("issuing development token...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	userID := os.Getenv("USER_ID")
	if userID == "" {
		userID = uuid.NewString()
	}

	jwtSvc := auth.NewJWTService(secret, 24*time.Hour)
	token, err := jwtSvc.GenerateToken(userID)
	if err != nil {
		log.Fatalf("cannot issue token: %v", err)
	}

	fmt.Printf("user_id: %s\ntoken:   %s\n", userID, token)
}
