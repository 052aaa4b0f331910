package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nayrana/internal/model"
	"nayrana/internal/service"
	"nayrana/internal/whatsapp"
)

// OrderHandler handles order recording and the admin status workflow.
type OrderHandler struct {
	orderService   service.OrderService
	whatsappNumber string
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService, whatsappNumber string) *OrderHandler {
	return &OrderHandler{orderService: orderService, whatsappNumber: whatsappNumber}
}

// CreateOrderRequest represents an order creation body.
type CreateOrderRequest struct {
	ProductID      uint    `json:"product_id" validate:"required"`
	HotelCode      string  `json:"hotel_code" validate:"required"`
	WhatsappNumber *string `json:"whatsapp_number"`
	MessageText    *string `json:"message_text"`
}

// CreateOrderResponse is the recorded order plus the prefilled WhatsApp link
// the buyer uses to finish the conversation.
type CreateOrderResponse struct {
	Order       *model.Order `json:"order"`
	WhatsAppURL string       `json:"whatsapp_url"`
}

// UpdateStatusRequest represents an order status transition body.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Create godoc
// @Summary Record a purchase intent
// @Tags orders
// @Accept json
// @Produce json
// @Param request body CreateOrderRequest true "Order data"
// @Success 201 {object} CreateOrderResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body", "INVALID_BODY")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error(), "VALIDATION_FAILED")
	}

	order, err := h.orderService.Create(c.Request().Context(), service.OrderInput{
		ProductID:      req.ProductID,
		HotelCode:      req.HotelCode,
		WhatsappNumber: req.WhatsappNumber,
		MessageText:    req.MessageText,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, CreateOrderResponse{
		Order:       order,
		WhatsAppURL: whatsapp.OrderLink(h.whatsappNumber, order.Product.Name),
	})
}

// List godoc
// @Summary List all orders
// @Tags orders
// @Produce json
// @Success 200 {array} model.Order
// @Security BearerAuth
// @Router /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orderService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateStatus godoc
// @Summary Transition an order's status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /orders/{id} [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid order id", "INVALID_ID")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body", "INVALID_BODY")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error(), "VALIDATION_FAILED")
	}

	order, err := h.orderService.UpdateStatus(c.Request().Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}
