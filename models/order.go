package models

import "time"

// CartItem adalah snapshot MenuItem plus jumlah dan harga yang dikunci
// saat item dimasukkan ke keranjang. Price pada snapshot TIDAK dihitung
// ulang setelahnya. Quantity selalu >= 1; baris dengan quantity 0
// dihapus, tidak pernah disimpan.
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// LineTotal -> subtotal baris (harga terkunci x jumlah)
func (ci CartItem) LineTotal() float64 {
	return ci.Price * float64(ci.Quantity)
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderReady     OrderStatus = "READY"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderReady, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Order dibuat sekali oleh Cart Manager saat submit dan setelah itu
// hanya status-nya yang boleh berubah lewat lifecycle controller.
// Items dan TotalAmount adalah snapshot saat submit. AiNote adalah
// catatan dapur advisory dari kolaborator eksternal, diabaikan logika.
type Order struct {
	ID          string      `json:"id"`
	TableID     string      `json:"tableId"`
	Items       []CartItem  `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	AiNote      string      `json:"aiNote,omitempty"`
}
