package db_models

import "github.com/google/uuid"

// Activity is one planned slot in an itinerary. Day stays textual, matching
// the free-form plan the generator returns.
type Activity struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"index"`
	LocationID  string    `gorm:"index"`
	Name        string
	Description string
	Duration    string
	Day         string
	TimeOfDay   string

	Location Location `gorm:"foreignKey:LocationID"`
}
