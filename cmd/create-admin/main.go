package main

import (
	"conference-management-api/config"
	"conference-management-api/models"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Creates (or resets the password of) an admin account. Intended for
// bootstrapping a fresh deployment:
//
//	go run ./cmd/create-admin -email admin@example.com -name "Site Admin" -password s3cret
func main() {
	email := flag.String("email", "", "admin email address (required)")
	name := flag.String("name", "Administrator", "full name")
	password := flag.String("password", "", "plaintext password (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	config.InitDB()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	var existing models.User
	err = config.DB.Where("email = ?", *email).First(&existing).Error
	if err == nil {
		existing.Password = string(hash)
		existing.RoleID = models.RoleIDAdmin
		if err := config.DB.Save(&existing).Error; err != nil {
			log.Fatalf("Failed to update user: %v", err)
		}
		fmt.Printf("Updated existing user %s (id %d) to admin and reset password\n", *email, existing.UserID)
		return
	}

	user := models.User{
		FullName: *name,
		Email:    *email,
		Password: string(hash),
		RoleID:   models.RoleIDAdmin,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}
	fmt.Printf("Created admin %s (id %d)\n", *email, user.UserID)
}
