package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Itinerary struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"index"`
	Name        string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	TotalDays   int
	ImageURL    string

	Activities []Activity `gorm:"foreignKey:ItineraryID"`
}
