// Package catalog bundles the fixed fallback catalog and the starter seed
// data. The fallback keeps the storefront from ever rendering empty when the
// live catalog is unreachable; it is static and never merged with server data.
package catalog

import (
	"github.com/shopspring/decimal"

	"nayrana/internal/model"
)

// FallbackProducts returns the bundled catalog shown when the live catalog
// read fails or comes back empty. IDs are fixed so templates stay stable.
func FallbackProducts() []model.Product {
	return []model.Product{
		{
			ID:          1,
			Name:        "Marble Taj Mahal Replica",
			Description: "Exquisite handcrafted marble replica of the iconic Taj Mahal with intricate inlay work, made by 3rd generation marble craftsman Rajesh Kumar.",
			Price:       2499,
			ImageURL:    "https://images.unsplash.com/photo-1564507592333-c60657eea523?w=400&h=400&fit=crop",
			Category:    "Marble",
			Stock:       2,
			IsFeatured:  true,
		},
		{
			ID:          2,
			Name:        "Wooden Elephant Pair",
			Description: "Hand-carved rosewood elephant pair symbolizing good luck and prosperity, with intricate detailing.",
			Price:       1799,
			ImageURL:    "/assets/products/marble-elephant-pair-inlay.png",
			Category:    "Wood",
			Stock:       4,
			IsFeatured:  true,
		},
		{
			ID:          3,
			Name:        "Pure Pashmina Shawl",
			Description: "Authentic Kashmiri pashmina shawl with traditional embroidery. Soft, warm, and luxurious.",
			Price:       3199,
			ImageURL:    "https://images.unsplash.com/photo-1584464491033-06628f3a6b7b?w=400&h=400&fit=crop",
			Category:    "Textile",
			Stock:       1,
			IsFeatured:  true,
		},
		{
			ID:          4,
			Name:        "Marble Decorative Plate with Blue Floral Inlay",
			Description: "Authentic Pietra Dura marble plate with genuine blue lapis lazuli floral inlay. Each petal is individually hand-cut from real marble stones.",
			Price:       1199,
			ImageURL:    "/assets/products/marble-floral-tray.png",
			ImageURLs: jsonArray(
				`["/assets/products/marble-floral-tray2.png","/assets/products/marble-floral-tray3.png","/assets/products/marble-floral-tray5.png"]`),
			Category: "Marble",
			Stock:    7,
		},
		{
			ID:          5,
			Name:        "Brass Decorative Plate",
			Description: "Ornate brass plate with traditional Mughal patterns, handcrafted using 400-year-old techniques.",
			Price:       1499,
			ImageURL:    "https://images.unsplash.com/photo-1610701596007-11502861dcfa?w=400&h=400&fit=crop",
			Category:    "Brass",
			Stock:       5,
		},
		{
			ID:          6,
			Name:        "Leather Camel Bag",
			Description: "Handcrafted leather bag with traditional camel motifs. Spacious, durable, and not found in tourist markets.",
			Price:       2199,
			ImageURL:    "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400&h=400&fit=crop",
			Category:    "Leather",
			Stock:       3,
		},
	}
}

// PartnerHotels returns the starter partner hotels used by seeding.
func PartnerHotels() []model.Hotel {
	return []model.Hotel{
		{HotelCode: "taj", HotelName: "Taj Hotel & Convention Centre", CommissionRate: decimal.New(1250, -2)},
		{HotelCode: "oberoi", HotelName: "The Oberoi Amarvilas", CommissionRate: decimal.New(1000, -2)},
		{HotelCode: "itc", HotelName: "ITC Mughal", CommissionRate: decimal.New(1000, -2)},
		{HotelCode: "trident", HotelName: "Trident Agra", CommissionRate: decimal.New(1000, -2)},
	}
}

func jsonArray(raw string) *string {
	return &raw
}
