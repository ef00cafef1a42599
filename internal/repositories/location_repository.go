package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "planmyitinerary/internal/models/db_models"
)

type LocationRepository interface {
	FindByID(ctx context.Context, locationID string) (*dbm.Location, error)
	InsertIfAbsent(ctx context.Context, location *dbm.Location) (*dbm.Location, error)
	HasImages(ctx context.Context, locationID string) (bool, error)
	InsertImages(ctx context.Context, images []dbm.Image) error
	ListImages(ctx context.Context, locationID string) ([]dbm.Image, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) FindByID(ctx context.Context, locationID string) (*dbm.Location, error) {
	var location dbm.Location
	err := r.db.WithContext(ctx).
		Where("id = ?", locationID).
		First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

// InsertIfAbsent creates the location unless a row with the same id already
// exists, then returns whichever row won. The conflict clause makes the
// check-and-create atomic under concurrent requests.
func (r *locationRepository) InsertIfAbsent(ctx context.Context, location *dbm.Location) (*dbm.Location, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(location).Error
	if err != nil {
		return nil, err
	}

	var stored dbm.Location
	if err := r.db.WithContext(ctx).Where("id = ?", location.ID).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *locationRepository) HasImages(ctx context.Context, locationID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Image{}).
		Where("location_id = ?", locationID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *locationRepository) InsertImages(ctx context.Context, images []dbm.Image) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&images).Error
}

func (r *locationRepository) ListImages(ctx context.Context, locationID string) ([]dbm.Image, error) {
	var images []dbm.Image
	err := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("created_at ASC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}
