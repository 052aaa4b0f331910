package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists is returned when trying to register an existing username.
	ErrUserExists = errors.New("username already exists")
	// ErrHotelExists is returned when creating a hotel with a taken code.
	ErrHotelExists = errors.New("hotel code already exists")
	// ErrProductNotFound is returned when a product id is unknown.
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderNotFound is returned when an order id is unknown.
	ErrOrderNotFound = errors.New("order not found")
	// ErrHotelNotFound is returned when a hotel code is unknown.
	ErrHotelNotFound = errors.New("hotel not found")
	// ErrUnknownHotel is returned when an order references a hotel code that
	// is not a registered partner.
	ErrUnknownHotel = errors.New("unknown hotel code")
	// ErrInvalidStatus is returned when an order status value is outside the enum.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidTransition is returned when an order may not move to the
	// requested status.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInvalidImageURLs is returned when image_urls is not a JSON array of strings.
	ErrInvalidImageURLs = errors.New("image_urls must be a JSON array of strings")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized is
// surfaced as a generic 500 without internal detail.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_EXISTS")
	case errors.Is(err, ErrHotelExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "HOTEL_EXISTS")
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case errors.Is(err, ErrOrderNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ORDER_NOT_FOUND")
	case errors.Is(err, ErrHotelNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "HOTEL_NOT_FOUND")
	case errors.Is(err, ErrUnknownHotel):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNKNOWN_HOTEL")
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	case errors.Is(err, ErrInvalidTransition):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_TRANSITION")
	case errors.Is(err, ErrInvalidImageURLs):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_IMAGE_URLS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
