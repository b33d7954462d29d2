package entity

import (
	"time"
)

type Comment struct {
	ID           string    `json:"id" firestore:"id"`
	CustomerName string    `json:"customer_name" firestore:"customer_name"`
	CommentText  string    `json:"comment_text" firestore:"comment_text"`
	ProductID    string    `json:"product_id" firestore:"product_id"`
	CreatedAt    time.Time `json:"created_at" firestore:"created_at"`
}
