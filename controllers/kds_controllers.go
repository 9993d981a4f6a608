package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/yeremiapane/lezzetkare/kds"
	"github.com/yeremiapane/lezzetkare/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// origin dicek di CORS middleware
		return true
	},
}

// HandleWebSocket -> upgrade koneksi terminal lalu daftarkan ke hub.
// Koneksi hanya menerima broadcast; pesan masuk diabaikan, read loop
// dipertahankan supaya close terdeteksi.
func HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("websocket upgrade failed: %v", err)
		return
	}

	role := c.GetString("role")
	if role == "" {
		role = "customer"
	}
	kds.RegisterClient(conn, role)
	utils.InfoLogger.Printf("%s terminal connected via websocket", role)

	defer kds.UnregisterClient(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
