package models

import "time"

// Feedback -> penilaian customer untuk satu order yang sudah COMPLETED,
// maksimal satu entry per order. Disimpan di key "feedback_entries".
type Feedback struct {
	OrderID   string    `json:"orderId"`
	TableID   string    `json:"tableId"`
	Rating    int       `json:"rating"` // 1-5
	Tags      []string  `json:"tags,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
