package entity

import (
	"time"
)

// Review is a customer rating left on a product. Rating is 1-5.
type Review struct {
	ID           string    `json:"id" firestore:"id"`
	ProductID    string    `json:"product_id" firestore:"product_id"`
	CustomerName string    `json:"customer_name" firestore:"customer_name"`
	Rating       int       `json:"rating" firestore:"rating"`
	ReviewText   string    `json:"review_text,omitempty" firestore:"review_text"`
	CreatedAt    time.Time `json:"created_at" firestore:"created_at"`
}
