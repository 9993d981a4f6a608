package notify

import "sync"

// Bus -> daftar observer in-process. Publish dipanggil sinkron tepat
// setelah sebuah write ke store; hanya subscriber dalam runtime context
// yang sama yang menerima sinyal ini. Terminal di context lain
// mengandalkan poller rekonsiliasi (services.ChangeMonitor).
type Bus struct {
	mu   sync.Mutex
	subs []func()
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe mendaftarkan callback reload. Callback harus idempoten dan
// aman dipanggil bersamaan dengan write lokal yang sedang berjalan.
func (b *Bus) Subscribe(fn func()) {
	b.mu.Lock()
	b.subs = append(b.subs, fn)
	b.mu.Unlock()
}

// Publish memanggil semua subscriber secara sinkron, termasuk penulisnya
// sendiri. Subscriber wajib idempoten.
func (b *Bus) Publish() {
	b.mu.Lock()
	subs := make([]func(), len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
