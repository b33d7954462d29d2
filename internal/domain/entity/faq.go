package entity

import (
	"time"
)

// FAQ entries are displayed ascending by OrderIndex, inactive ones hidden.
type FAQ struct {
	ID         string    `json:"id" firestore:"id"`
	Question   string    `json:"question" firestore:"question"`
	QuestionEn string    `json:"question_en,omitempty" firestore:"question_en"`
	Answer     string    `json:"answer" firestore:"answer"`
	AnswerEn   string    `json:"answer_en,omitempty" firestore:"answer_en"`
	OrderIndex int       `json:"order_index" firestore:"order_index"`
	IsActive   bool      `json:"is_active" firestore:"is_active"`
	CreatedAt  time.Time `json:"created_at" firestore:"created_at"`
}
