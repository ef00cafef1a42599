package db_models

// Image holds the size variants of one photo of a location. Variants the
// directory did not provide stay empty.
type Image struct {
	BaseModel
	LocationID string `gorm:"index"`
	Thumbnail  string
	Small      string
	Medium     string
	Large      string
	Original   string
}
