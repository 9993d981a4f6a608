package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/lezzetkare/models"
)

func geminiStub(t *testing.T, status int, text string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")

		w.WriteHeader(status)
		if status != http.StatusOK {
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
			},
		})
	}))
}

func testService(baseURL string, timeout time.Duration) *GeminiService {
	return NewGeminiService(&GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-3-flash-preview",
		BaseURL: baseURL,
		Timeout: timeout,
	})
}

var testMenu = []models.MenuItem{{ID: "1", Name: "Adana Kebap", Price: 320, Category: models.CategoryKebab}}

func TestChatReturnsModelAnswer(t *testing.T) {
	srv := geminiStub(t, http.StatusOK, "Adana Kebap'ı şiddetle tavsiye ederim!")
	defer srv.Close()

	gs := testService(srv.URL, time.Second)
	answer := gs.Chat(context.Background(), "Ne önerirsin?", nil, nil, testMenu)
	assert.Equal(t, "Adana Kebap'ı şiddetle tavsiye ederim!", answer)
}

func TestChatFallsBackOnServerError(t *testing.T) {
	srv := geminiStub(t, http.StatusInternalServerError, "")
	defer srv.Close()

	gs := testService(srv.URL, time.Second)
	answer := gs.Chat(context.Background(), "Ne önerirsin?", nil, nil, testMenu)
	assert.Equal(t, fallbackChat, answer)
}

func TestChatFallsBackWithoutAPIKey(t *testing.T) {
	gs := NewGeminiService(&GeminiConfig{Timeout: time.Second})
	answer := gs.Chat(context.Background(), "Merhaba", nil, nil, testMenu)
	assert.Equal(t, fallbackChat, answer)
}

func TestAdviseOnCartFallsBackOnTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	gs := testService(srv.URL, 20*time.Millisecond)
	tip := gs.AdviseOnCart(context.Background(), nil, nil, testMenu)
	assert.Equal(t, fallbackTip, tip)
}

func TestAdviseOnCartReturnsTip(t *testing.T) {
	srv := geminiStub(t, http.StatusOK, "Yanına Yayık Ayran çok yakışır! 🥤")
	defer srv.Close()

	gs := testService(srv.URL, time.Second)
	cart := []models.CartItem{{MenuItem: testMenu[0], Quantity: 2}}
	tip := gs.AdviseOnCart(context.Background(), cart, nil, testMenu)
	assert.Equal(t, "Yanına Yayık Ayran çok yakışır! 🥤", tip)
}

// catatan dapur: gagal -> string kosong, bukan fallback cerewet
func TestSummarizeForKitchen(t *testing.T) {
	srv := geminiStub(t, http.StatusOK, "İki Adana, acele şef!")
	defer srv.Close()

	gs := testService(srv.URL, time.Second)
	cart := []models.CartItem{{MenuItem: testMenu[0], Quantity: 2}}
	assert.Equal(t, "İki Adana, acele şef!", gs.SummarizeForKitchen(context.Background(), cart))

	broken := testService("http://127.0.0.1:1", 50*time.Millisecond)
	assert.Empty(t, broken.SummarizeForKitchen(context.Background(), cart))
}
