package entity

import (
	"time"
)

type GalleryItem struct {
	ID            string    `json:"id" firestore:"id"`
	Title         string    `json:"title" firestore:"title"`
	TitleEn       string    `json:"title_en,omitempty" firestore:"title_en"`
	Description   string    `json:"description,omitempty" firestore:"description"`
	DescriptionEn string    `json:"description_en,omitempty" firestore:"description_en"`
	ImageURL      string    `json:"image_url" firestore:"image_url"`
	Category      string    `json:"category,omitempty" firestore:"category"`
	CreatedAt     time.Time `json:"created_at" firestore:"created_at"`
}
