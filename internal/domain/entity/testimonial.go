package entity

import (
	"time"
)

// Testimonial is customer feedback that needs admin approval before it is
// shown publicly.
type Testimonial struct {
	ID            string    `json:"id" firestore:"id"`
	CustomerName  string    `json:"customer_name" firestore:"customer_name"`
	CustomerImage string    `json:"customer_image,omitempty" firestore:"customer_image"`
	Comment       string    `json:"comment" firestore:"comment"`
	Rating        int       `json:"rating,omitempty" firestore:"rating"`
	IsApproved    bool      `json:"is_approved" firestore:"is_approved"`
	CreatedAt     time.Time `json:"created_at" firestore:"created_at"`
}
