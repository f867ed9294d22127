package migration

import (
	"fmt"

	"royalstay/internal/guest"
	"royalstay/internal/hotel"
	"royalstay/internal/logger"
	"royalstay/internal/loyalty"
	"royalstay/internal/storage/memory"
)

type seedRoom struct {
	number    int
	roomType  hotel.RoomType
	amenities []string
	price     float64
}

type seedGuest struct {
	id      int
	name    string
	contact string
	email   string
}

// Up seeds the demo room inventory and guest directory.
func Up(l *logger.Logger, inv *hotel.Inventory, db *memory.DB) error {
	rooms := []seedRoom{
		{101, hotel.Single, []string{"Wi-Fi", "TV", "Air Conditioning"}, 100.0},
		{102, hotel.Single, []string{"Wi-Fi", "TV", "Air Conditioning"}, 100.0},
		{201, hotel.Double, []string{"Wi-Fi", "TV", "Mini-bar", "Air Conditioning"}, 150.0},
		{202, hotel.Double, []string{"Wi-Fi", "TV", "Mini-bar", "Air Conditioning"}, 150.0},
		{301, hotel.Suite, []string{"Wi-Fi", "TV", "Mini-bar", "Air Conditioning", "Jacuzzi"}, 250.0},
		{302, hotel.Suite, []string{"Wi-Fi", "TV", "Mini-bar", "Air Conditioning", "Jacuzzi"}, 250.0},
		{401, hotel.Deluxe, []string{"Wi-Fi", "TV", "Mini-bar", "Air Conditioning", "Jacuzzi", "Balcony", "Kitchen"}, 350.0},
	}

	for _, seed := range rooms {
		room, err := hotel.NewRoom(seed.number, seed.roomType, seed.amenities, seed.price)
		if err != nil {
			return fmt.Errorf("build room %d: %w", seed.number, err)
		}

		if err := inv.Add(room); err != nil {
			return fmt.Errorf("add room %d to inventory: %w", seed.number, err)
		}
	}

	l.LogInfo("Seeded %d rooms", len(rooms))

	guests := []seedGuest{
		{1, "John Smith", "+1-555-123-4567", "john.smith@email.com"},
		{2, "Jane Doe", "+1-555-987-6543", "jane.doe@email.com"},
		{3, "Bob Johnson", "+1-555-456-7890", "bob.johnson@email.com"},
	}

	for idx, seed := range guests {
		g, err := guest.New(seed.id, seed.name, seed.contact, seed.email)
		if err != nil {
			return fmt.Errorf("build guest %d: %w", seed.id, err)
		}

		g.SetLoyaltyProgram(loyalty.NewProgram(100 + idx))

		if err := db.SaveGuest(g); err != nil {
			return fmt.Errorf("save guest %d: %w", seed.id, err)
		}
	}

	l.LogInfo("Seeded %d guests", len(guests))

	return nil
}
