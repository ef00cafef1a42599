package db_models

type Account struct {
	BaseModel
	FirstName    string
	LastName     string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	IsActive     bool `gorm:"default:false"`

	Itineraries []Itinerary `gorm:"foreignKey:AccountID"`
}
