package entity

import (
	"time"
)

// Offer is a time-limited promotion. Only active offers reach the storefront.
type Offer struct {
	ID                 string     `json:"id" firestore:"id"`
	Title              string     `json:"title" firestore:"title"`
	TitleEn            string     `json:"title_en,omitempty" firestore:"title_en"`
	Description        string     `json:"description,omitempty" firestore:"description"`
	DescriptionEn      string     `json:"description_en,omitempty" firestore:"description_en"`
	DiscountPercentage float64    `json:"discount_percentage,omitempty" firestore:"discount_percentage"`
	ImageURL           string     `json:"image_url,omitempty" firestore:"image_url"`
	IsActive           bool       `json:"is_active" firestore:"is_active"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty" firestore:"expires_at"`
	CreatedAt          time.Time  `json:"created_at" firestore:"created_at"`
}
