package hotel

import (
	"fmt"
	"time"
)

// Inventory is the hotel's room list. Lookups are linear scans over a small
// in-memory slice.
type Inventory struct {
	rooms []*Room
}

func NewInventory() *Inventory {
	//nolint:exhaustruct
	return &Inventory{}
}

func (i *Inventory) Add(room *Room) error {
	for _, existing := range i.rooms {
		if existing.number == room.number {
			return fmt.Errorf("room %d: %w", room.number, ErrDuplicateRoom)
		}
	}

	i.rooms = append(i.rooms, room)

	return nil
}

func (i *Inventory) Room(number int) (*Room, error) {
	for _, room := range i.rooms {
		if room.number == number {
			return room, nil
		}
	}

	return nil, fmt.Errorf("room %d: %w", number, ErrRoomNotFound)
}

func (i *Inventory) Rooms() []*Room {
	return append([]*Room(nil), i.rooms...)
}

// FindAvailable returns rooms free for the stay, optionally capped by nightly
// price. maxPricePerNight <= 0 disables the price filter.
func (i *Inventory) FindAvailable(checkIn, checkOut time.Time, maxPricePerNight float64) ([]*Room, error) {
	if err := ValidateStayRange(checkIn, checkOut); err != nil {
		return nil, err
	}

	var result []*Room

	for _, room := range i.rooms {
		available, err := room.IsAvailable(checkIn, checkOut)
		if err != nil {
			return nil, err
		}

		if !available {
			continue
		}

		if maxPricePerNight > 0 && room.pricePerNight > maxPricePerNight {
			continue
		}

		result = append(result, room)
	}

	return result, nil
}
