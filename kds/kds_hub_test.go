package kds

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/lezzetkare/models"
	"github.com/yeremiapane/lezzetkare/utils"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func dialTestClient(t *testing.T, role string) *websocket.Conn {
	utils.InitLogger()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		RegisterClient(conn, role)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func readMessage(t *testing.T, client *websocket.Conn) Message {
	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := client.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(raw, &msg))
	return msg
}

func TestBroadcastStoreChanged(t *testing.T) {
	client := dialTestClient(t, "customer")

	BroadcastStoreChanged(42)

	msg := readMessage(t, client)
	assert.Equal(t, EventStoreChanged, msg.Event)

	data, ok := msg.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), data["revision"])
}

func TestBroadcastOrderUpdate(t *testing.T) {
	client := dialTestClient(t, "kitchen")

	BroadcastOrderUpdate(models.Order{ID: "ord-1", TableID: "5", Status: models.OrderReady})

	msg := readMessage(t, client)
	assert.Equal(t, EventOrderUpdate, msg.Event)

	data, ok := msg.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ord-1", data["id"])
	assert.Equal(t, "READY", data["status"])
}
