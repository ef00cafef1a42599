package db_models

import (
	"time"

	"gorm.io/gorm"
)

// Location is a place record shared across itineraries. Its primary key is
// the place directory's stable identifier, not a surrogate. Latitude and
// longitude are stored as text to keep the source precision untouched.
type Location struct {
	ID            string `gorm:"primaryKey"`
	Name          string
	Street1       string
	Street2       string
	City          string
	State         string
	Country       string
	PostalCode    string
	AddressString string
	Latitude      string
	Longitude     string
	Ranking       string
	Rating        string
	CreatedAt     int64 `gorm:"autoCreateTime"`

	Images []Image `gorm:"foreignKey:LocationID"`
}

func (l *Location) BeforeCreate(tx *gorm.DB) error {
	l.CreatedAt = time.Now().Unix()
	return nil
}
