package models

import "time"

// RequestType -> jenis bantuan yang bisa diminta dari meja
type RequestType string

const (
	RequestWaiter RequestType = "WAITER"
	RequestBill   RequestType = "BILL"
)

func (t RequestType) Valid() bool {
	return t == RequestWaiter || t == RequestBill
}

// TableRequest adalah entry pada antrian permintaan meja. Dibuat oleh
// terminal customer, di-resolve (Resolved=true) hanya oleh staff, dan
// tidak pernah dihapus.
type TableRequest struct {
	ID        string      `json:"id"`
	TableID   string      `json:"tableId"`
	Type      RequestType `json:"type"`
	CreatedAt time.Time   `json:"createdAt"`
	Resolved  bool        `json:"resolved"`
}
