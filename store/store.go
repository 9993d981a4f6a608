package store

import "errors"

// ErrNotFound dikembalikan Get untuk key yang tidak ada (atau sudah dihapus)
var ErrNotFound = errors.New("record not found")

// Key record yang dipakai seluruh sistem. Satu key = satu record
// terserialisasi penuh; Put selalu mengganti seluruh isi record.
const (
	KeyMenu           = "menu"
	KeyPriceOverrides = "price_overrides"
	KeyDiscounts      = "discounts"
	KeyDisabledItems  = "disabled_items"
	KeyOrders         = "orders"
	KeyTableRequests  = "table_requests"
	KeyFeedback       = "feedback_entries"
	KeyActivityLog    = "activity_log"
)

// CartKey -> key keranjang per meja. Selalu lewat helper ini, jangan
// rakit string "cart_..." di tempat lain.
func CartKey(tableID string) string {
	return "cart_" + tableID
}

// Store adalah kontrak Record Store: mapping key -> record JSON kanonik.
// Tidak ada locking di level store; dua penulis pada key yang sama
// menghasilkan last-write-wins. Caller wajib read-modify-write seluruh
// record dan memvalidasi prakondisi pada salinan yang baru dibaca.
type Store interface {
	// Get membaca record ke out (pointer). ErrNotFound jika tidak ada.
	Get(key string, out any) error
	// Put mengganti seluruh record pada key secara atomik.
	Put(key string, value any) error
	// Delete menghapus record. Menghapus key yang tidak ada bukan error.
	Delete(key string) error
	// Revision naik monoton pada setiap Put/Delete; dipakai poller
	// rekonsiliasi untuk mendeteksi perubahan dari konteks lain.
	Revision() (int64, error)
}
