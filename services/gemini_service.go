package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/yeremiapane/lezzetkare/models"
	"github.com/yeremiapane/lezzetkare/utils"
)

// Fallback ketika Gemini tidak bisa dihubungi. Hasil panggilan ini
// murni advisory: selalu ada nilai default, tidak pernah error keluar.
const (
	fallbackChat = "Küçük bir bağlantı sorunu yaşıyorum. Lütfen menüdeki harika lezzetlerimize göz atmaya devam edin!"
	fallbackTip  = "Günün özel lezzetini denemek ister misiniz? 🌟"
)

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// GeminiService memanggil Gemini generateContent API untuk catatan
// dapur, tips keranjang, dan chat garson digital
type GeminiService struct {
	config     *GeminiConfig
	httpClient *http.Client
}

var (
	geminiService *GeminiService
	geminiOnce    sync.Once
)

// GetGeminiService returns singleton instance of GeminiService
func GetGeminiService() *GeminiService {
	geminiOnce.Do(func() {
		cfg := &GeminiConfig{
			APIKey:  os.Getenv("GEMINI_API_KEY"),
			Model:   os.Getenv("GEMINI_MODEL"),
			BaseURL: os.Getenv("GEMINI_BASE_URL"),
			Timeout: 5 * time.Second,
		}
		if cfg.Model == "" {
			cfg.Model = "gemini-3-flash-preview"
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = "https://generativelanguage.googleapis.com"
		}
		if cfg.APIKey == "" {
			utils.InfoLogger.Println("GEMINI_API_KEY is empty, advisory features run on fallbacks only")
		}
		geminiService = NewGeminiService(cfg)
	})
	return geminiService
}

// NewGeminiService -> instance dengan config eksplisit (dipakai test)
func NewGeminiService(cfg *GeminiConfig) *GeminiService {
	return &GeminiService{
		config: cfg,
		httpClient: &http.Client{
			// hard timeout: panggilan advisory tidak boleh menggantung
			Timeout: cfg.Timeout,
		},
	}
}

type generateRequest struct {
	SystemInstruction *contentPart `json:"system_instruction,omitempty"`
	Contents          []content    `json:"contents"`
	GenerationConfig  genConfig    `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type contentPart struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type genConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate -> satu panggilan generateContent; error hanya untuk internal,
// caller publik selalu menggantinya dengan fallback
func (gs *GeminiService) generate(ctx context.Context, system, prompt string, maxTokens int, temperature float64) (string, error) {
	if gs.config.APIKey == "" {
		return "", fmt.Errorf("gemini api key not configured")
	}

	reqBody := generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: genConfig{MaxOutputTokens: maxTokens, Temperature: temperature},
	}
	if system != "" {
		reqBody.SystemInstruction = &contentPart{Parts: []part{{Text: system}}}
	}
	raw, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		gs.config.BaseURL, gs.config.Model, gs.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := gs.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text), nil
}

// systemInstruction -> persona garson digital LezzetKare, dengan menu
// terkini di dalam prompt
func systemInstruction(menu []models.MenuItem) string {
	type menuLine struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Category models.Category `json:"category"`
		Price    float64         `json:"price"`
		Desc     string          `json:"desc"`
	}
	lines := make([]menuLine, 0, len(menu))
	for _, m := range menu {
		lines = append(lines, menuLine{ID: m.ID, Name: m.Name, Category: m.Category, Price: m.Price, Desc: m.Description})
	}
	encoded, _ := json.Marshal(lines)
	return fmt.Sprintf(`Sen "LezzetKare" restoranında çalışan çok kibar, bilgili ve yardımsever bir dijital garsonsun.
Türkçe konuşuyorsun.
Aşağıdaki menüdeki yemekler hakkında tam yetkiye ve bilgiye sahipsin.
Müşterilere yemek seçimi konusunda iştah açıcı tavsiyeler ver.
Cevapların kısa, net ve samimi olsun. Asla menüde olmayan bir şeyi önerme.

Mevcut Güncel Menü:
%s`, encoded)
}

func cartSummary(items []models.CartItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", it.Quantity, it.Name))
	}
	return strings.Join(parts, ", ")
}

func historySummary(history []models.Order) string {
	var orderLines []string
	for _, o := range history {
		var names []string
		for _, it := range o.Items {
			names = append(names, it.Name)
		}
		orderLines = append(orderLines, strings.Join(names, ", "))
	}
	return strings.Join(orderLines, " | ")
}

// SummarizeForKitchen -> catatan sef 5 kata untuk mutfak; string kosong
// kalau gagal, tidak pernah error
func (gs *GeminiService) SummarizeForKitchen(ctx context.Context, items []models.CartItem) string {
	prompt := fmt.Sprintf("Aşağıdaki sipariş için mutfağa 5 kelimelik şef notu yaz: %s", cartSummary(items))
	note, err := gs.generate(ctx, "", prompt, 20, 0.7)
	if err != nil {
		utils.InfoLogger.Printf("kitchen note unavailable: %v", err)
		return ""
	}
	return note
}

// AdviseOnCart -> tip proaktif pendek berdasarkan keranjang dan riwayat
func (gs *GeminiService) AdviseOnCart(ctx context.Context, cartItems []models.CartItem, history []models.Order, menu []models.MenuItem) string {
	cart := cartSummary(cartItems)
	if cart == "" {
		cart = "Boş"
	}
	past := historySummary(history)
	if past == "" {
		past = "Yok"
	}
	prompt := fmt.Sprintf(`Müşterinin sepeti: %s.
Masanın geçmişi: %s.

Kısa (max 10 kelime), samimi ve proaktif bir öneride bulun.
Emoji kullan. Tamamlayıcı ürünleri (içecek, tatlı) önceliklendir.`, cart, past)

	tip, err := gs.generate(ctx, systemInstruction(menu), prompt, 60, 0.9)
	if err != nil || tip == "" {
		return fallbackTip
	}
	return tip
}

// Chat -> jawaban garson digital atas pertanyaan customer
func (gs *GeminiService) Chat(ctx context.Context, message string, cartItems []models.CartItem, history []models.Order, menu []models.MenuItem) string {
	cart := cartSummary(cartItems)
	if cart == "" {
		cart = "Sepet boş"
	}
	past := historySummary(history)
	if past == "" {
		past = "Henüz sipariş verilmedi"
	}
	prompt := fmt.Sprintf(`Müşteri Durumu:
Sepettekiler: %s
Geçmiş Siparişler: %s

Müşteri Sorusu: %s`, cart, past, message)

	answer, err := gs.generate(ctx, systemInstruction(menu), prompt, 300, 0.8)
	if err != nil || answer == "" {
		return fallbackChat
	}
	return answer
}
