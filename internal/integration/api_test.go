// Package integration exercises the HTTP API end to end against the same
// in-memory SQLite backend the development server uses.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"nayrana/internal/auth"
	"nayrana/internal/config"
	"nayrana/internal/handler"
	"nayrana/internal/model"
	"nayrana/internal/repository"
	"nayrana/internal/router"
	"nayrana/internal/service"
)

const testSecret = "integration-test-secret"

// newTestServer builds the full echo application on a private in-memory
// database. Each caller gets its own dbName so tests stay isolated.
func newTestServer(t *testing.T, dbName string) (*echo.Echo, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", dbName)
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(
		&model.User{},
		&model.Hotel{},
		&model.Product{},
		&model.Order{},
	))

	cfg := &config.Config{
		Env:            "test",
		JWTSecret:      testSecret,
		WhatsAppNumber: "917417994386",
		AssetsDir:      t.TempDir(),
		UploadDir:      t.TempDir(),
	}

	userRepo := repository.NewUserRepository(gormDB)
	hotelRepo := repository.NewHotelRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	catalogService := service.NewCatalogService(productRepo, nil)
	hotelService := service.NewHotelService(hotelRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, hotelRepo)
	reportService := service.NewReportService(orderRepo)

	storefrontHandler, err := handler.NewStorefrontHandler(catalogService, cfg.WhatsAppNumber)
	require.NoError(t, err)

	e := echo.New()
	router.Register(e, cfg,
		handler.NewAuthHandler(authService),
		handler.NewProductHandler(catalogService),
		handler.NewOrderHandler(orderService, cfg.WhatsAppNumber),
		handler.NewHotelHandler(hotelService),
		handler.NewReportHandler(reportService),
		handler.NewUploadHandler(cfg.UploadDir),
		handler.NewChatHandler(),
		storefrontHandler,
	)
	return e, gormDB
}

func doJSON(e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func registerAdmin(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "admin",
		"password": "secret-password",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp handler.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestAuthFlow(t *testing.T) {
	e, _ := newTestServer(t, "auth_flow")
	registerAdmin(t, e)

	// Duplicate username is a conflict.
	rec := doJSON(e, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "admin",
		"password": "another-password",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Passwords beyond bcrypt's 72-byte limit fail validation, not hashing.
	rec = doJSON(e, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "admin2",
		"password": strings.Repeat("x", 80),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")

	// Correct credentials log in.
	rec = doJSON(e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "secret-password",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Wrong password is a 401 with the generic code.
	rec = doJSON(e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestProductLifecycle(t *testing.T) {
	e, _ := newTestServer(t, "product_lifecycle")
	token := registerAdmin(t, e)

	product := map[string]interface{}{
		"name":        "Marble Coaster Set",
		"description": "Handmade marble inlay coasters",
		"price":       1500,
		"image_url":   "/assets/products/coasters.jpg",
		"category":    "marble",
		"stock":       10,
	}

	// Writes require a token.
	rec := doJSON(e, http.MethodPost, "/api/products", "", product)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/products", token, product)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)

	// Reads are public.
	rec = doJSON(e, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Marble Coaster Set", listed[0].Name)

	rec = doJSON(e, http.MethodGet, fmt.Sprintf("/api/products/%d", created.ID), "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Update and delete round-trip.
	product["price"] = 1700
	rec = doJSON(e, http.MethodPut, fmt.Sprintf("/api/products/%d", created.ID), token, product)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 1700, updated.Price)

	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/products/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, fmt.Sprintf("/api/products/%d", created.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PRODUCT_NOT_FOUND")
}

func TestProductValidation(t *testing.T) {
	e, _ := newTestServer(t, "product_validation")
	token := registerAdmin(t, e)

	rec := doJSON(e, http.MethodPost, "/api/products", token, map[string]interface{}{
		"name":        "Broken Gallery",
		"description": "extra images must be a JSON array",
		"price":       1000,
		"image_url":   "/assets/products/x.jpg",
		"image_urls":  "not-a-json-array",
		"category":    "marble",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_IMAGE_URLS")
}

func TestOrderFlowAndCommissions(t *testing.T) {
	e, gormDB := newTestServer(t, "order_flow")
	token := registerAdmin(t, e)

	require.NoError(t, gormDB.Create(&model.Hotel{HotelCode: "taj", HotelName: "Hotel Taj Resorts"}).Error)
	require.NoError(t, gormDB.Create(&model.Product{
		Name:        "Marble Taj Mahal Replica",
		Description: "Museum-quality inlay work",
		Price:       2500,
		ImageURL:    "/assets/products/taj.jpg",
		Category:    "marble",
	}).Error)

	// An order against an unregistered hotel code is rejected.
	rec := doJSON(e, http.MethodPost, "/api/orders", "", map[string]interface{}{
		"product_id": 1,
		"hotel_code": "ghost",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNKNOWN_HOTEL")

	// A valid order is recorded pending, with a prefilled WhatsApp link.
	rec = doJSON(e, http.MethodPost, "/api/orders", "", map[string]interface{}{
		"product_id": 1,
		"hotel_code": "taj",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created handler.CreateOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, model.OrderStatusPending, created.Order.Status)
	assert.Contains(t, created.WhatsAppURL, "https://wa.me/917417994386?text=")

	// Listing orders is admin-only.
	rec = doJSON(e, http.MethodGet, "/api/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = doJSON(e, http.MethodGet, "/api/orders", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Pending is a valid enum value but never a valid target.
	path := fmt.Sprintf("/api/orders/%d", created.Order.ID)
	rec = doJSON(e, http.MethodPatch, path, token, map[string]string{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TRANSITION")

	// Fulfill the order; a second transition is rejected.
	rec = doJSON(e, http.MethodPatch, path, token, map[string]string{"status": "fulfilled"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPatch, path, token, map[string]string{"status": "cancelled"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TRANSITION")

	rec = doJSON(e, http.MethodPatch, path, token, map[string]string{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_STATUS")

	// The commission report reflects the fulfilled order.
	rec = doJSON(e, http.MethodGet, "/api/reports/commissions", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var report []service.CommissionRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report, 1)
	assert.Equal(t, "taj", report[0].HotelCode)
	assert.Equal(t, 1, report[0].TotalOrders)
	assert.Equal(t, 1, report[0].FulfilledOrders)
}

func TestHotelEndpoints(t *testing.T) {
	e, _ := newTestServer(t, "hotel_endpoints")
	token := registerAdmin(t, e)

	rec := doJSON(e, http.MethodPost, "/api/hotels", token, map[string]interface{}{
		"hotel_code": "oberoi",
		"hotel_name": "The Oberoi Amarvilas",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Hotel lookup by code is public, for the refer-a-guest landing page.
	rec = doJSON(e, http.MethodGet, "/api/hotels/oberoi", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "The Oberoi Amarvilas")

	rec = doJSON(e, http.MethodGet, "/api/hotels/ghost", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Duplicate codes conflict.
	rec = doJSON(e, http.MethodPost, "/api/hotels", token, map[string]interface{}{
		"hotel_code": "oberoi",
		"hotel_name": "Duplicate",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpload(t *testing.T) {
	e, _ := newTestServer(t, "upload")
	token := registerAdmin(t, e)

	buildBody := func(contentType string) (*bytes.Buffer, string) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{`form-data; name="file"; filename="photo.jpg"`}
		header["Content-Type"] = []string{contentType}
		part, _ := writer.CreatePart(header)
		_, _ = part.Write([]byte("fake image bytes"))
		_ = writer.Close()
		return &buf, writer.FormDataContentType()
	}

	// No token, no upload.
	body, contentType := buildBody("image/jpeg")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Image upload lands under the assets URL space.
	body, contentType = buildBody("image/jpeg")
	req = httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.URL, "/assets/products/")
	assert.Contains(t, resp.URL, ".jpg")

	// Non-image uploads are rejected.
	body, contentType = buildBody("application/pdf")
	req = httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_FILE_TYPE")
}

func TestChatEndpoint(t *testing.T) {
	e, _ := newTestServer(t, "chat_endpoint")

	rec := doJSON(e, http.MethodPost, "/api/chat", "", map[string]interface{}{
		"message": "hello",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Reply)
	assert.Equal(t, 1, resp.State.Turns)

	// The echoed state drives the next turn.
	rec = doJSON(e, http.MethodPost, "/api/chat", "", map[string]interface{}{
		"message": "marble taj",
		"state":   resp.State,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.State.Turns)
	assert.Contains(t, resp.State.MentionedProducts, "marble")
}

func TestStorefrontFallback(t *testing.T) {
	e, _ := newTestServer(t, "storefront_fallback")

	// Empty catalog renders the built-in fallback gallery.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "Marble Taj Mahal Replica")
}

func TestWhatsAppLinkEndpoint(t *testing.T) {
	e, _ := newTestServer(t, "whatsapp_link")

	rec := doJSON(e, http.MethodGet, "/api/whatsapp-link?product=Pashmina+Shawl", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "wa.me/917417994386")
}

func TestPlaceholderEndpoint(t *testing.T) {
	e, _ := newTestServer(t, "placeholder")

	rec := doJSON(e, http.MethodGet, "/api/placeholder/300/200", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "image/svg+xml")

	rec = doJSON(e, http.MethodGet, "/api/placeholder/0/200", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	e, _ := newTestServer(t, "healthz")

	rec := doJSON(e, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
