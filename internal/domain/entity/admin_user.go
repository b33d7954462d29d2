package entity

import (
	"time"
)

// AdminUser is a back-office credential row. The password check is a direct
// comparison against the stored value; hashing is owned by the backend
// provisioning process, not this service.
type AdminUser struct {
	ID           string    `json:"id" firestore:"id"`
	Username     string    `json:"username" firestore:"username"`
	PasswordHash string    `json:"-" firestore:"password_hash"`
	CreatedAt    time.Time `json:"created_at" firestore:"created_at"`
}
