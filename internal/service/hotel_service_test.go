package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "nayrana/internal/errors"
	"nayrana/internal/model"
)

func TestHotelService_GetByCode(t *testing.T) {
	hotels := new(MockHotelRepository)
	hotels.On("FindByCode", mock.Anything, "taj").Return(&model.Hotel{
		HotelCode: "taj",
		HotelName: "Hotel Taj Resorts",
	}, nil)
	hotels.On("FindByCode", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	service := NewHotelService(hotels)

	hotel, err := service.GetByCode(context.Background(), "taj")
	assert.NoError(t, err)
	assert.Equal(t, "Hotel Taj Resorts", hotel.HotelName)

	_, err = service.GetByCode(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrHotelNotFound)
}

func TestHotelService_Create(t *testing.T) {
	rate := decimal.New(1250, -2)

	tests := []struct {
		name          string
		code          string
		setupMock     func(*MockHotelRepository)
		expectedError error
	}{
		{
			name: "successful create",
			code: "trident",
			setupMock: func(m *MockHotelRepository) {
				m.On("FindByCode", mock.Anything, "trident").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Hotel")).Return(nil)
			},
		},
		{
			name: "code already registered",
			code: "taj",
			setupMock: func(m *MockHotelRepository) {
				m.On("FindByCode", mock.Anything, "taj").Return(&model.Hotel{HotelCode: "taj"}, nil)
			},
			expectedError: apperrors.ErrHotelExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hotels := new(MockHotelRepository)
			tt.setupMock(hotels)

			service := NewHotelService(hotels)
			hotel, err := service.Create(context.Background(), tt.code, "Some Hotel", rate)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, hotel)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.code, hotel.HotelCode)
				assert.True(t, hotel.CommissionRate.Equal(rate))
			}

			hotels.AssertExpectations(t)
		})
	}
}
