package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/aidconnect/backend/database"
	"github.com/aidconnect/backend/models"
	"github.com/aidconnect/backend/store"
	"github.com/joho/godotenv"
)

var sampleRequests = []struct {
	Title       string
	Description string
	Location    string
	Amount      int64
	Priority    models.Priority
	SubmittedBy string
}{
	{"Flood relief supplies", "Tarpaulins, dry rations and drinking water for 40 displaced families.", "Guwahati", 85000, models.PriorityHigh, "Ravi Sharma"},
	{"School books for shelter kids", "Textbooks and stationery for 25 children at the riverside shelter.", "Patna", 12000, models.PriorityMedium, "Meena Devi"},
	{"Wheelchair for accident survivor", "Foldable wheelchair and transport to physiotherapy sessions.", "Nagpur", 18000, models.PriorityMedium, "Arjun Kale"},
	{"Winter blankets drive", "Heavy blankets for pavement dwellers before the cold wave.", "Delhi", 30000, models.PriorityHigh, "Sana Qureshi"},
	{"Community kitchen repairs", "Replace the broken stove and leaking roof sheet at the langar.", "Amritsar", 22000, models.PriorityLow, "Gurpreet Singh"},
}

var sampleDonors = []string{
	"Alice", "Rohan", "Priya", "Tom", "Lakshmi", "Dev",
}

var requestStatuses = []models.RequestStatus{
	models.StatusPending,
	models.StatusPending,
	models.StatusApproved,
	models.StatusApproved,
	models.StatusRejected,
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Connect to database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	st := store.New(db)

	fmt.Println("🌱 Starting marketplace seed...")

	rand.Seed(time.Now().UnixNano())
	totalRequests := 0
	totalDonations := 0

	for i, sample := range sampleRequests {
		request, err := st.CreateRequest(store.CreateRequestInput{
			Title:        sample.Title,
			Description:  sample.Description,
			Location:     sample.Location,
			AmountNeeded: sample.Amount,
			Priority:     sample.Priority,
			SubmittedBy:  sample.SubmittedBy,
		})
		if err != nil {
			log.Fatalf("Failed to create request: %v", err)
		}
		totalRequests++

		// Spread statuses so the admin dashboard has something to show
		status := requestStatuses[i%len(requestStatuses)]
		if status != models.StatusPending {
			if _, err := st.SetRequestStatus(request.ID, status); err != nil {
				log.Fatalf("Failed to set request status: %v", err)
			}
		}
	}

	// A handful of standalone donations, each opening its own pending request
	numDonations := rand.Intn(3) + 3 // 3-5 donations
	for i := 0; i < numDonations; i++ {
		donor := sampleDonors[rand.Intn(len(sampleDonors))]
		amount := int64(rand.Intn(19)+1) * 500 // 500-9500

		if _, _, err := st.RecordDonation(store.RecordDonationInput{
			DonorName: donor,
			Amount:    amount,
		}); err != nil {
			log.Fatalf("Failed to record donation: %v", err)
		}
		totalRequests++
		totalDonations++
	}

	fmt.Printf("✅ Seeded %d requests and %d donations\n", totalRequests, totalDonations)
}
