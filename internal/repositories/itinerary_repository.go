package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "planmyitinerary/internal/models/db_models"
)

type ItineraryRepository interface {
	// RunInTransaction executes fn against a repository bound to one
	// transaction. A returned error rolls everything back.
	RunInTransaction(ctx context.Context, fn func(txRepo ItineraryRepository) error) error

	CreateItinerary(ctx context.Context, itinerary *dbm.Itinerary) error
	CreateActivity(ctx context.Context, activity *dbm.Activity) error
	SetCoverImage(ctx context.Context, itineraryID uuid.UUID, url string) error
	ListRecentByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]dbm.Itinerary, error)
	GetDetailByID(ctx context.Context, itineraryID string) (*dbm.Itinerary, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) RunInTransaction(ctx context.Context, fn func(txRepo ItineraryRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&itineraryRepository{db: tx})
	})
}

func (r *itineraryRepository) CreateItinerary(ctx context.Context, itinerary *dbm.Itinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *itineraryRepository) CreateActivity(ctx context.Context, activity *dbm.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *itineraryRepository) SetCoverImage(ctx context.Context, itineraryID uuid.UUID, url string) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Itinerary{}).
		Where("id = ?", itineraryID).
		Update("image_url", url).Error
}

func (r *itineraryRepository) ListRecentByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]dbm.Itinerary, error) {
	var itineraries []dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

// GetDetailByID loads an itinerary with its activities and each activity's
// location and images. Activities keep insertion order.
func (r *itineraryRepository) GetDetailByID(ctx context.Context, itineraryID string) (*dbm.Itinerary, error) {
	var itinerary dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("id = ?", itineraryID).
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("activities.created_at ASC")
		}).
		Preload("Activities.Location").
		Preload("Activities.Location.Images").
		First(&itinerary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}
