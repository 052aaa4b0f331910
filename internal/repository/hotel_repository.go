package repository

import (
	"context"

	"gorm.io/gorm"

	"nayrana/internal/model"
)

// HotelRepository defines partner hotel persistence operations.
type HotelRepository interface {
	Create(ctx context.Context, hotel *model.Hotel) error
	FindByCode(ctx context.Context, code string) (*model.Hotel, error)
	List(ctx context.Context) ([]model.Hotel, error)
}

type hotelRepository struct {
	db *gorm.DB
}

// NewHotelRepository builds a GORM-backed repository.
func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) Create(ctx context.Context, hotel *model.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *hotelRepository) FindByCode(ctx context.Context, code string) (*model.Hotel, error) {
	var hotel model.Hotel
	if err := r.db.WithContext(ctx).Where("hotel_code = ?", code).First(&hotel).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) List(ctx context.Context) ([]model.Hotel, error) {
	var hotels []model.Hotel
	if err := r.db.WithContext(ctx).Order("hotel_name ASC").Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}
