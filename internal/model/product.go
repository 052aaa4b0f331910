package model

import (
	"encoding/json"
	"time"
)

// Product is a catalog entry. Price is in the smallest currency unit.
// ImageURLs optionally holds a JSON-encoded array of additional image URLs.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Price       int       `json:"price" gorm:"not null"`
	ImageURL    string    `json:"image_url" gorm:"size:512;not null"`
	ImageURLs   *string   `json:"image_urls" gorm:"type:text"`
	Category    string    `json:"category" gorm:"size:100;not null;index"`
	Stock       int       `json:"stock" gorm:"not null;default:0"`
	IsFeatured  bool      `json:"is_featured" gorm:"not null;default:false;index"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExtraImages decodes the additional image URLs. A missing or malformed value
// means no extra images, never an error.
func (p *Product) ExtraImages() []string {
	if p.ImageURLs == nil || *p.ImageURLs == "" {
		return nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(*p.ImageURLs), &urls); err != nil {
		return nil
	}
	return urls
}

// SetExtraImages encodes urls into the ImageURLs column. An empty slice clears it.
func (p *Product) SetExtraImages(urls []string) {
	if len(urls) == 0 {
		p.ImageURLs = nil
		return
	}
	raw, err := json.Marshal(urls)
	if err != nil {
		return
	}
	encoded := string(raw)
	p.ImageURLs = &encoded
}
