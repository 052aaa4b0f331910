package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"nayrana/internal/config"
	"nayrana/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	hotelHandler *handler.HotelHandler,
	reportHandler *handler.ReportHandler,
	uploadHandler *handler.UploadHandler,
	chatHandler *handler.ChatHandler,
	storefrontHandler *handler.StorefrontHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public storefront and static assets
	e.GET("/", storefrontHandler.Page)
	e.Static("/assets", cfg.AssetsDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register)
	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)
	api.POST("/orders", orderHandler.Create)
	api.GET("/hotels/:code", hotelHandler.GetByCode)
	api.POST("/chat", chatHandler.Message)
	api.GET("/whatsapp-link", storefrontHandler.WhatsAppLink)
	api.GET("/placeholder/:width/:height", storefrontHandler.Placeholder)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
	}))

	secured.POST("/products", productHandler.Create)
	secured.PUT("/products/:id", productHandler.Update)
	secured.DELETE("/products/:id", productHandler.Delete)

	secured.GET("/orders", orderHandler.List)
	secured.PATCH("/orders/:id", orderHandler.UpdateStatus)

	secured.GET("/hotels", hotelHandler.List)
	secured.POST("/hotels", hotelHandler.Create)

	secured.GET("/reports/commissions", reportHandler.Commissions)

	secured.POST("/upload", uploadHandler.Upload)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
