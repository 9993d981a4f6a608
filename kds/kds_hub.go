package kds

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/yeremiapane/lezzetkare/models"
	"github.com/yeremiapane/lezzetkare/utils"
)

// Event types
const (
	EventStoreChanged  = "store_changed"
	EventOrderUpdate   = "order_update"
	EventMenuUpdate    = "menu_update"
	EventRequestUpdate = "request_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// Hub menampung semua terminal yang tersambung (customer, staff,
// kitchen) dan menyiarkan sinyal perubahan ke mereka. Terminal yang
// tidak punya socket tetap konsisten lewat polling HTTP.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient -> menambahkan connection ke set dengan role terminal
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient -> melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastStoreChanged -> sinyal generik "store berubah, reload";
// payload revision supaya terminal bisa skip reload yang sudah lewat
func BroadcastStoreChanged(rev int64) {
	broadcast(Message{
		Event: EventStoreChanged,
		Data:  map[string]int64{"revision": rev},
	})
}

// BroadcastOrderUpdate -> order baru atau transisi status
func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{
		Event: EventOrderUpdate,
		Data:  order,
	})
}

// BroadcastMenuUpdate -> perubahan catalog (menu/harga/diskon/stok)
func BroadcastMenuUpdate() {
	broadcast(Message{Event: EventMenuUpdate})
}

// BroadcastRequestUpdate -> permintaan meja baru atau resolved
func BroadcastRequestUpdate(req models.TableRequest) {
	broadcast(Message{
		Event: EventRequestUpdate,
		Data:  req,
	})
}

// broadcast -> fungsi internal untuk mengirim pesan ke semua terminal
func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("error marshaling hub message: %v", err)
		return
	}

	for conn, role := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("error sending to %s terminal: %v", role, err)
			continue
		}
	}
}
