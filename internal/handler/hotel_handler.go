package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"nayrana/internal/service"
)

// defaultCommissionRate applies when a hotel is registered without one.
var defaultCommissionRate = decimal.New(1000, -2) // 10.00

// HotelHandler handles partner hotel endpoints.
type HotelHandler struct {
	hotelService service.HotelService
}

// NewHotelHandler creates a new hotel handler.
func NewHotelHandler(hotelService service.HotelService) *HotelHandler {
	return &HotelHandler{hotelService: hotelService}
}

// HotelRequest represents a hotel registration body.
type HotelRequest struct {
	HotelCode      string           `json:"hotel_code" validate:"required"`
	HotelName      string           `json:"hotel_name" validate:"required"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
}

// List godoc
// @Summary List partner hotels
// @Tags hotels
// @Produce json
// @Success 200 {array} model.Hotel
// @Security BearerAuth
// @Router /hotels [get]
func (h *HotelHandler) List(c echo.Context) error {
	hotels, err := h.hotelService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, hotels)
}

// GetByCode godoc
// @Summary Look up a hotel by code
// @Tags hotels
// @Produce json
// @Param code path string true "Hotel code"
// @Success 200 {object} model.Hotel
// @Failure 404 {object} errors.ErrorResponse
// @Router /hotels/{code} [get]
func (h *HotelHandler) GetByCode(c echo.Context) error {
	hotel, err := h.hotelService.GetByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, hotel)
}

// Create godoc
// @Summary Register a partner hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body HotelRequest true "Hotel data"
// @Success 201 {object} model.Hotel
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /hotels [post]
func (h *HotelHandler) Create(c echo.Context) error {
	var req HotelRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body", "INVALID_BODY")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error(), "VALIDATION_FAILED")
	}

	rate := defaultCommissionRate
	if req.CommissionRate != nil {
		if req.CommissionRate.IsNegative() {
			return badRequest(c, "commission_rate must not be negative", "VALIDATION_FAILED")
		}
		rate = *req.CommissionRate
	}

	hotel, err := h.hotelService.Create(c.Request().Context(), req.HotelCode, req.HotelName, rate)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, hotel)
}
