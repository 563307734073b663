// Command setadmin resets the admin user's password out of band.
//
// Usage: setadmin <newPassword>
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/aidconnect/backend/auth"
	"github.com/aidconnect/backend/database"
	"github.com/aidconnect/backend/store"
	"github.com/joho/godotenv"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: setadmin <newPassword>")
		os.Exit(2)
	}
	newPassword := os.Args[1]

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	st := store.New(db)
	if err := st.UpdatePassword(username, hashed); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Fatalf("❌ Admin user %q not found in database", username)
		}
		log.Fatalf("❌ Failed to update admin password: %v", err)
	}

	fmt.Printf("✅ Admin password updated successfully for user: %s\n", username)
}
