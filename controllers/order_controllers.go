package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/lezzetkare/models"
	"github.com/yeremiapane/lezzetkare/orders"
	"github.com/yeremiapane/lezzetkare/utils"
)

type OrderController struct {
	Orders *orders.Controller
}

func NewOrderController(orderCtl *orders.Controller) *OrderController {
	return &OrderController{Orders: orderCtl}
}

// CreateOrder -> submit keranjang meja menjadi order PENDING
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body struct {
		TableID string `json:"tableId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.Submit(body.TableID)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.InfoLogger.Printf("order %s created for table %s, total %s",
		order.ID, order.TableID, utils.FormatCurrencyTRY(order.TotalAmount))
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetAllOrders -> seluruh order untuk dashboard staff/KDS
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	list, err := oc.Orders.All()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", list)
}

// GetOrdersByTable -> riwayat order sebuah meja, terbaru dulu
func (oc *OrderController) GetOrdersByTable(c *gin.Context) {
	tableID := c.Param("table_id")

	list, err := oc.Orders.ByTable(tableID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Orders for table", list)
}

// GetOrderByID -> detail satu order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id := c.Param("order_id")

	order, err := oc.Orders.Get(id)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus -> staff menggerakkan order di state machine
// (PENDING -> READY -> COMPLETED); transisi lain ditolak 409
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("order_id")

	var body struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.Advance(id, body.Status)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.InfoLogger.Printf("order %s advanced to %s", order.ID, order.Status)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// CancelOrder -> customer membatalkan; hanya sah selama order masih
// PENDING di store, bukan di view lokal terminal
func (oc *OrderController) CancelOrder(c *gin.Context) {
	id := c.Param("order_id")

	order, err := oc.Orders.Cancel(id)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.InfoLogger.Printf("order %s cancelled by table %s", order.ID, order.TableID)
	utils.RespondJSON(c, http.StatusOK, "Order cancelled", order)
}

// CreateFeedback -> penilaian customer atas order COMPLETED
func (oc *OrderController) CreateFeedback(c *gin.Context) {
	var fb models.Feedback
	if err := c.ShouldBindJSON(&fb); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.Orders.AddFeedback(fb); err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Feedback recorded", fb)
}

// GetFeedback -> semua feedback untuk dashboard staff
func (oc *OrderController) GetFeedback(c *gin.Context) {
	entries, err := oc.Orders.Feedback()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Feedback entries", entries)
}
