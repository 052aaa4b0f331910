package main

import (
	"log"
	"net/http"

	_ "nayrana/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"nayrana/internal/auth"
	"nayrana/internal/cache"
	"nayrana/internal/catalog"
	"nayrana/internal/config"
	"nayrana/internal/db"
	"nayrana/internal/handler"
	"nayrana/internal/model"
	"nayrana/internal/repository"
	"nayrana/internal/router"
	"nayrana/internal/service"
)

// @title Nayrana Handicrafts API
// @version 1.0
// @description Storefront and admin API for the Nayrana Handicrafts catalog, orders, and hotel commission reporting.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	var (
		gormDB *gorm.DB
		err    error
	)
	if cfg.UseMemoryStore() {
		log.Println("MYSQL_DSN not set, using the in-memory development database")
		gormDB, err = db.NewMemory()
	} else {
		gormDB, err = db.NewMySQL(cfg.MySQLDSN)
	}
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Hotel{},
		&model.Product{},
		&model.Order{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// The development database starts empty every boot; give it the starter
	// catalog and partner hotels so the storefront has something to show.
	if cfg.UseMemoryStore() {
		if err := seedDevData(gormDB); err != nil {
			log.Fatalf("seed development data: %v", err)
		}
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	hotelRepo := repository.NewHotelRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	catalogService := service.NewCatalogService(productRepo, cacheClient)
	hotelService := service.NewHotelService(hotelRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, hotelRepo)
	reportService := service.NewReportService(orderRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService, cfg.WhatsAppNumber)
	hotelHandler := handler.NewHotelHandler(hotelService)
	reportHandler := handler.NewReportHandler(reportService)
	uploadHandler := handler.NewUploadHandler(cfg.UploadDir)
	chatHandler := handler.NewChatHandler()
	storefrontHandler, err := handler.NewStorefrontHandler(catalogService, cfg.WhatsAppNumber)
	if err != nil {
		log.Fatalf("storefront init: %v", err)
	}

	e := echo.New()
	router.Register(
		e,
		cfg,
		authHandler,
		productHandler,
		orderHandler,
		hotelHandler,
		reportHandler,
		uploadHandler,
		chatHandler,
		storefrontHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

func seedDevData(gormDB *gorm.DB) error {
	for _, hotel := range catalog.PartnerHotels() {
		if err := gormDB.Create(&hotel).Error; err != nil {
			return err
		}
	}
	for _, product := range catalog.FallbackProducts() {
		product.ID = 0
		if err := gormDB.Create(&product).Error; err != nil {
			return err
		}
	}
	return nil
}
