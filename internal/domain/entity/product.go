package entity

import (
	"time"
)

// Product is a catalog item shown on the storefront. Arabic text is the
// primary language, the *_en fields are the optional English secondaries.
type Product struct {
	ID            string    `json:"id" firestore:"id"`
	Name          string    `json:"name" firestore:"name"`
	NameEn        string    `json:"name_en,omitempty" firestore:"name_en"`
	Description   string    `json:"description,omitempty" firestore:"description"`
	DescriptionEn string    `json:"description_en,omitempty" firestore:"description_en"`
	Price         float64   `json:"price" firestore:"price"`
	OriginalPrice float64   `json:"original_price,omitempty" firestore:"original_price"`
	ImageURL      string    `json:"image_url,omitempty" firestore:"image_url"`
	Category      string    `json:"category,omitempty" firestore:"category"`
	WhatsappText  string    `json:"whatsapp_text,omitempty" firestore:"whatsapp_text"`
	IsFeatured    bool      `json:"is_featured" firestore:"is_featured"`
	IsNew         bool      `json:"is_new" firestore:"is_new"`
	IsBestseller  bool      `json:"is_bestseller" firestore:"is_bestseller"`
	IsOrganic     bool      `json:"is_organic" firestore:"is_organic"`
	CreatedAt     time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updated_at"`
}
