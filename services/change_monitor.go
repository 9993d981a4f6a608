package services

import (
	"time"

	"github.com/yeremiapane/lezzetkare/notify"
	"github.com/yeremiapane/lezzetkare/store"
	"github.com/yeremiapane/lezzetkare/utils"
)

// ChangeMonitor adalah separuh periodik dari notification bus: poll
// revision store pada interval tetap dan publish ulang kalau ada write
// dari konteks lain. Batas staleness view terminal = interval polling
// ini (SLA, bukan real-time).
type ChangeMonitor struct {
	Store    store.Store
	Bus      *notify.Bus
	StopChan chan struct{}
	Interval time.Duration

	lastRev int64
}

func NewChangeMonitor(st store.Store, bus *notify.Bus) *ChangeMonitor {
	return &ChangeMonitor{
		Store:    st,
		Bus:      bus,
		StopChan: make(chan struct{}),
		Interval: 3 * time.Second,
	}
}

func (cm *ChangeMonitor) Start() {
	go func() {
		ticker := time.NewTicker(cm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				cm.checkChanges()
			case <-cm.StopChan:
				return
			}
		}
	}()
}

func (cm *ChangeMonitor) Stop() {
	close(cm.StopChan)
}

// checkChanges -> bandingkan revision; publish hanya saat berubah.
// Aman dipanggil bersamaan dengan write lokal: subscriber wajib
// idempoten, jadi publish ganda tidak berbahaya.
func (cm *ChangeMonitor) checkChanges() {
	rev, err := cm.Store.Revision()
	if err != nil {
		utils.ErrorLogger.Printf("change monitor: error reading revision: %v", err)
		return
	}
	if rev == cm.lastRev {
		return
	}
	cm.lastRev = rev
	cm.Bus.Publish()
}
