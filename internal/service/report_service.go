package service

import (
	"context"
	"fmt"
	"sort"

	"nayrana/internal/model"
	"nayrana/internal/repository"
)

// CommissionRow is one hotel's slice of the commission report.
type CommissionRow struct {
	HotelCode       string `json:"hotelCode"`
	TotalOrders     int    `json:"totalOrders"`
	FulfilledOrders int    `json:"fulfilledOrders"`
}

// ConversionRate is the fulfilled share of a hotel's orders, 0 when the hotel
// has no orders.
func (r CommissionRow) ConversionRate() float64 {
	if r.TotalOrders == 0 {
		return 0
	}
	return float64(r.FulfilledOrders) / float64(r.TotalOrders)
}

// ReportService computes order aggregations for commissioning.
type ReportService interface {
	Commissions(ctx context.Context) ([]CommissionRow, error)
}

type reportService struct {
	orders repository.OrderRepository
}

// NewReportService creates a new report service.
func NewReportService(orders repository.OrderRepository) ReportService {
	return &reportService{orders: orders}
}

// Commissions groups the full order history by hotel code in a single pass.
// Hotels without orders do not appear. Rows come back sorted by code.
func (s *reportService) Commissions(ctx context.Context) ([]CommissionRow, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	byHotel := make(map[string]*CommissionRow)
	for _, order := range orders {
		row, ok := byHotel[order.HotelCode]
		if !ok {
			row = &CommissionRow{HotelCode: order.HotelCode}
			byHotel[order.HotelCode] = row
		}
		row.TotalOrders++
		if order.Status == model.OrderStatusFulfilled {
			row.FulfilledOrders++
		}
	}

	report := make([]CommissionRow, 0, len(byHotel))
	for _, row := range byHotel {
		report = append(report, *row)
	}
	sort.Slice(report, func(i, j int) bool {
		return report[i].HotelCode < report[j].HotelCode
	})
	return report, nil
}
