package entity

import (
	"time"
)

// Message is a contact-form submission, optionally tied to a product.
type Message struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email,omitempty" firestore:"email"`
	Phone     string    `json:"phone,omitempty" firestore:"phone"`
	Message   string    `json:"message" firestore:"message"`
	ProductID string    `json:"product_id,omitempty" firestore:"product_id"`
	IsRead    bool      `json:"is_read" firestore:"is_read"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
}
