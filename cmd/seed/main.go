package main

import (
	"fmt"
	"log"
	"time"

	"ticketly/internal/events"
	"ticketly/internal/organizers"
	"ticketly/internal/shared/config"
	"ticketly/internal/shared/database"
	"ticketly/internal/venues"

	"github.com/joho/godotenv"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Ticketly Database Seeder...")

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	db, err := database.Get(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"tickets",
		"events",
		"organizers",
		"venues",
	}

	for _, table := range tables {
		if err := s.db.GetPostgreSQL().Exec("TRUNCATE TABLE " + table + " RESTART IDENTITY CASCADE").Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

func (s *Seeder) SeedAll() error {
	seededVenues, err := s.seedVenues()
	if err != nil {
		return fmt.Errorf("failed to seed venues: %w", err)
	}
	fmt.Printf("  • %d venues\n", len(seededVenues))

	seededOrganizers, err := s.seedOrganizers()
	if err != nil {
		return fmt.Errorf("failed to seed organizers: %w", err)
	}
	fmt.Printf("  • %d organizers\n", len(seededOrganizers))

	seededEvents, err := s.seedEvents(seededVenues, seededOrganizers)
	if err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}
	fmt.Printf("  • %d events\n", len(seededEvents))

	created, err := s.seedTickets(seededEvents)
	if err != nil {
		return fmt.Errorf("failed to seed tickets: %w", err)
	}
	fmt.Printf("  • %d tickets (via create_ticket)\n", created)

	return nil
}

func (s *Seeder) seedVenues() ([]venues.Venue, error) {
	seeded := []venues.Venue{
		{Name: "Grand Arena", Address: ptr("12 Harbor Street"), Capacity: ptrInt(5000)},
		{Name: "City Concert Hall", Address: ptr("3 Liberty Square"), Capacity: ptrInt(1200)},
		{Name: "Riverside Pavilion", Address: ptr("88 River Road"), Capacity: ptrInt(800)},
	}

	for i := range seeded {
		if err := s.db.GetPostgreSQL().Create(&seeded[i]).Error; err != nil {
			return nil, err
		}
	}
	return seeded, nil
}

func (s *Seeder) seedOrganizers() ([]organizers.Organizer, error) {
	seeded := []organizers.Organizer{
		{Name: "Northlight Productions", Email: ptr("hello@northlight.example"), Phone: ptr("+1-555-0101")},
		{Name: "Bright Stage Group", Email: ptr("contact@brightstage.example"), Phone: ptr("+1-555-0102")},
	}

	for i := range seeded {
		if err := s.db.GetPostgreSQL().Create(&seeded[i]).Error; err != nil {
			return nil, err
		}
	}
	return seeded, nil
}

func (s *Seeder) seedEvents(seededVenues []venues.Venue, seededOrganizers []organizers.Organizer) ([]events.Event, error) {
	now := time.Now().UTC()

	seeded := []events.Event{
		{
			Title:       "Autumn Jazz Night",
			EventDate:   now.AddDate(0, 0, 14),
			Category:    ptr("Music"),
			BasePrice:   45,
			SeatsTotal:  300,
			Description: ptr("An evening of contemporary jazz."),
			VenueID:     seededVenues[1].VenueID,
			OrganizerID: seededOrganizers[0].OrganizerID,
		},
		{
			Title:       "Modern Art Expo",
			EventDate:   now.AddDate(0, 1, 0),
			Category:    ptr("Art"),
			BasePrice:   25,
			SeatsTotal:  500,
			Description: ptr("Regional artists, one weekend."),
			VenueID:     seededVenues[2].VenueID,
			OrganizerID: seededOrganizers[1].OrganizerID,
		},
		{
			Title:       "Winter Rock Festival",
			EventDate:   now.AddDate(0, 2, 0),
			Category:    ptr("Music"),
			BasePrice:   80,
			SeatsTotal:  4500,
			VenueID:     seededVenues[0].VenueID,
			OrganizerID: seededOrganizers[0].OrganizerID,
		},
	}

	for i := range seeded {
		if err := s.db.GetPostgreSQL().Create(&seeded[i]).Error; err != nil {
			return nil, err
		}
	}
	return seeded, nil
}

// seedTickets goes through the create_ticket routine so seeded data takes the
// same write path as the API.
func (s *Seeder) seedTickets(seededEvents []events.Event) (int, error) {
	purchases := []struct {
		eventIndex int
		buyerName  string
		buyerEmail string
		quantity   int
	}{
		{0, "Alice Turner", "alice@example.com", 2},
		{0, "Ben Carver", "ben@example.com", 1},
		{1, "Clara Mendes", "clara@example.com", 4},
	}

	created := 0
	for _, p := range purchases {
		var ticketID int
		err := s.db.GetPostgreSQL().
			Raw("SELECT create_ticket(?, ?, ?, ?)",
				seededEvents[p.eventIndex].EventID, p.buyerName, p.buyerEmail, p.quantity).
			Scan(&ticketID).Error
		if err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func ptr(s string) *string {
	return &s
}

func ptrInt(i int) *int {
	return &i
}
