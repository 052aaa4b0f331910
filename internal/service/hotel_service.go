package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "nayrana/internal/errors"
	"nayrana/internal/model"
	"nayrana/internal/repository"
)

// HotelService handles partner hotel lookups and registration.
type HotelService interface {
	List(ctx context.Context) ([]model.Hotel, error)
	GetByCode(ctx context.Context, code string) (*model.Hotel, error)
	Create(ctx context.Context, code, name string, commissionRate decimal.Decimal) (*model.Hotel, error)
}

type hotelService struct {
	hotels repository.HotelRepository
}

// NewHotelService creates a new hotel service.
func NewHotelService(hotels repository.HotelRepository) HotelService {
	return &hotelService{hotels: hotels}
}

func (s *hotelService) List(ctx context.Context) ([]model.Hotel, error) {
	hotels, err := s.hotels.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	return hotels, nil
}

func (s *hotelService) GetByCode(ctx context.Context, code string) (*model.Hotel, error) {
	hotel, err := s.hotels.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHotelNotFound
		}
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	return hotel, nil
}

func (s *hotelService) Create(ctx context.Context, code, name string, commissionRate decimal.Decimal) (*model.Hotel, error) {
	existing, err := s.hotels.FindByCode(ctx, code)
	if err == nil && existing != nil {
		return nil, apperrors.ErrHotelExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check hotel existence: %w", err)
	}

	hotel := &model.Hotel{
		HotelCode:      code,
		HotelName:      name,
		CommissionRate: commissionRate,
	}
	if err := s.hotels.Create(ctx, hotel); err != nil {
		return nil, fmt.Errorf("create hotel: %w", err)
	}
	return hotel, nil
}
