package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "nayrana/internal/errors"
	"nayrana/internal/model"
	"nayrana/internal/repository"
)

// OrderInput carries the insertable order fields.
type OrderInput struct {
	ProductID      uint
	HotelCode      string
	WhatsappNumber *string
	MessageText    *string
}

// OrderService handles order recording and the admin status workflow.
type OrderService interface {
	Create(ctx context.Context, in OrderInput) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) (*model.Order, error)
}

type orderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	hotels   repository.HotelRepository
}

// NewOrderService creates a new order service.
func NewOrderService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	hotels repository.HotelRepository,
) OrderService {
	return &orderService{orders: orders, products: products, hotels: hotels}
}

// Create records a pending order. The product must exist and the hotel code
// must belong to a registered partner, so every order shows up in the
// commission report under a real hotel.
func (s *orderService) Create(ctx context.Context, in OrderInput) (*model.Order, error) {
	product, err := s.products.FindByID(ctx, in.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	if _, err := s.hotels.FindByCode(ctx, in.HotelCode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnknownHotel
		}
		return nil, fmt.Errorf("find hotel: %w", err)
	}

	order := &model.Order{
		ProductID:      in.ProductID,
		HotelCode:      in.HotelCode,
		WhatsappNumber: in.WhatsappNumber,
		Status:         model.OrderStatusPending,
		MessageText:    in.MessageText,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	order.Product = *product
	return order, nil
}

func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus applies a status transition. Only pending orders move, and only
// to fulfilled or cancelled; anything else leaves the order untouched.
func (s *orderService) UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	if !order.Status.CanTransition(status) {
		return nil, apperrors.ErrInvalidTransition
	}

	order.Status = status
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return order, nil
}
