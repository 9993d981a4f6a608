package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/lezzetkare/cart"
	"github.com/yeremiapane/lezzetkare/orders"
	"github.com/yeremiapane/lezzetkare/utils"
)

type CartController struct {
	Carts  *cart.Manager
	Orders *orders.Controller
}

func NewCartController(carts *cart.Manager, orderCtl *orders.Controller) *CartController {
	return &CartController{Carts: carts, Orders: orderCtl}
}

// GetCart -> isi keranjang sebuah meja; kosong -> list kosong, bukan 404
func (cc *CartController) GetCart(c *gin.Context) {
	tableID := c.Param("table_id")

	items, err := cc.Carts.Get(tableID)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart contents", items)
}

// AddItem -> tambah satu unit item ke keranjang meja; harga di-capture
// dari pricing engine saat itu juga
func (cc *CartController) AddItem(c *gin.Context) {
	tableID := c.Param("table_id")

	var body struct {
		ItemID string `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	line, err := cc.Carts.AddItem(tableID, body.ItemID, time.Now())
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item added to cart", line)
}

// SetQuantity -> ganti jumlah satu baris; quantity <= 0 menghapus baris
func (cc *CartController) SetQuantity(c *gin.Context) {
	tableID := c.Param("table_id")
	itemID := c.Param("item_id")

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.Carts.SetQuantity(tableID, itemID, body.Quantity); err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart updated", gin.H{
		"table_id": tableID,
		"item_id":  itemID,
		"quantity": body.Quantity,
	})
}

// Reorder -> gabungkan baris order lama ke keranjang; item yang sedang
// habis di-skip dan dilaporkan di response
func (cc *CartController) Reorder(c *gin.Context) {
	tableID := c.Param("table_id")

	var body struct {
		OrderID string `json:"orderId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := cc.Orders.Get(body.OrderID)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	merged, skipped, err := cc.Carts.Reorder(tableID, order)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order items merged into cart", gin.H{
		"merged":  merged,
		"skipped": skipped,
	})
}
