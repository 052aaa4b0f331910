package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nayrana/internal/catalog"
	"nayrana/internal/config"
	"nayrana/internal/db"
	"nayrana/internal/model"
	"nayrana/internal/repository"
)

const bcryptCost = 10

// Seeds the partner hotels, the starter catalog, and one admin user. Admin
// credentials must be supplied; there are no defaults to leak.
func main() {
	var (
		adminUser = flag.String("admin-user", os.Getenv("ADMIN_USERNAME"), "admin username to create")
		adminPass = flag.String("admin-pass", os.Getenv("ADMIN_PASSWORD"), "admin password to hash and store")
		skipAdmin = flag.Bool("skip-admin", false, "seed only hotels and products")
	)
	flag.Parse()

	if !*skipAdmin && (*adminUser == "" || *adminPass == "") {
		log.Fatal("admin credentials required: pass -admin-user and -admin-pass (or ADMIN_USERNAME / ADMIN_PASSWORD)")
	}

	cfg := config.Load()
	if cfg.UseMemoryStore() {
		log.Fatal("MYSQL_DSN is not set; seeding an in-memory database is pointless")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
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

	ctx := context.Background()
	hotelRepo := repository.NewHotelRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	created := 0
	for _, hotel := range catalog.PartnerHotels() {
		if _, err := hotelRepo.FindByCode(ctx, hotel.HotelCode); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("check hotel %s: %v", hotel.HotelCode, err)
		}
		if err := hotelRepo.Create(ctx, &hotel); err != nil {
			log.Fatalf("create hotel %s: %v", hotel.HotelCode, err)
		}
		created++
	}
	log.Printf("hotels: %d created", created)

	existing, err := productRepo.List(ctx)
	if err != nil {
		log.Fatalf("list products: %v", err)
	}
	byName := make(map[string]bool, len(existing))
	for _, p := range existing {
		byName[p.Name] = true
	}
	created = 0
	for _, product := range catalog.FallbackProducts() {
		if byName[product.Name] {
			continue
		}
		product.ID = 0
		if err := productRepo.Create(ctx, &product); err != nil {
			log.Fatalf("create product %q: %v", product.Name, err)
		}
		created++
	}
	log.Printf("products: %d created", created)

	if *skipAdmin {
		return
	}

	if _, err := userRepo.FindByUsername(ctx, *adminUser); err == nil {
		log.Printf("admin user %q already exists, leaving it alone", *adminUser)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("check admin user: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*adminPass), bcryptCost)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}
	if err := userRepo.Create(ctx, &model.User{
		Username:     *adminUser,
		PasswordHash: string(hashed),
	}); err != nil {
		log.Fatalf("create admin user: %v", err)
	}
	log.Printf("admin user %q created", *adminUser)
}
