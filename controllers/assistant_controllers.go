package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/lezzetkare/cart"
	"github.com/yeremiapane/lezzetkare/catalog"
	"github.com/yeremiapane/lezzetkare/orders"
	"github.com/yeremiapane/lezzetkare/services"
	"github.com/yeremiapane/lezzetkare/utils"
)

// AssistantController -> garson digital. Semua jawaban advisory: kalau
// Gemini gagal, customer tetap dapat fallback, tidak pernah error 5xx.
type AssistantController struct {
	Gemini  *services.GeminiService
	Carts   *cart.Manager
	Orders  *orders.Controller
	Catalog *catalog.Catalog
}

func NewAssistantController(gs *services.GeminiService, carts *cart.Manager, orderCtl *orders.Controller, cat *catalog.Catalog) *AssistantController {
	return &AssistantController{Gemini: gs, Carts: carts, Orders: orderCtl, Catalog: cat}
}

// Chat -> pertanyaan bebas customer ke garson digital
func (ac *AssistantController) Chat(c *gin.Context) {
	var body struct {
		TableID string `json:"tableId" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cartItems, err := ac.Carts.Get(body.TableID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	history, err := ac.Orders.ByTable(body.TableID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	menu, err := ac.Catalog.Items()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	answer := ac.Gemini.Chat(c.Request.Context(), body.Message, cartItems, history, menu)
	utils.RespondJSON(c, http.StatusOK, "Assistant reply", gin.H{"reply": answer})
}

// Advise -> tip proaktif berdasarkan isi keranjang dan riwayat meja
func (ac *AssistantController) Advise(c *gin.Context) {
	tableID := c.Param("table_id")

	cartItems, err := ac.Carts.Get(tableID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	history, err := ac.Orders.ByTable(tableID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	menu, err := ac.Catalog.Items()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	tip := ac.Gemini.AdviseOnCart(c.Request.Context(), cartItems, history, menu)
	utils.RespondJSON(c, http.StatusOK, "Assistant tip", gin.H{"tip": tip})
}
