package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/lezzetkare/catalog"
	"github.com/yeremiapane/lezzetkare/models"
	"github.com/yeremiapane/lezzetkare/orders"
	"github.com/yeremiapane/lezzetkare/utils"
)

type ReportController struct {
	Orders  *orders.Controller
	Catalog *catalog.Catalog
}

func NewReportController(orderCtl *orders.Controller, cat *catalog.Catalog) *ReportController {
	return &ReportController{Orders: orderCtl, Catalog: cat}
}

type dailyReport struct {
	Date            string  `json:"date"`
	CompletedOrders int     `json:"completedOrders"`
	Revenue         float64 `json:"revenue"`
	Cost            float64 `json:"cost"`
	Profit          float64 `json:"profit"`
	RevenueDisplay  string  `json:"revenueDisplay"`
	ProfitDisplay   string  `json:"profitDisplay"`
}

// GetDailyReport -> ringkasan hari ini dari order COMPLETED: omzet,
// modal, profit. Modal diambil dari cost catalog terkini; kalau item
// sudah dihapus dari catalog, pakai cost snapshot di baris order.
func (rc *ReportController) GetDailyReport(c *gin.Context) {
	all, err := rc.Orders.All()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	costs := make(map[string]float64)
	if items, err := rc.Catalog.Items(); err == nil {
		for _, it := range items {
			costs[it.ID] = it.Cost
		}
	}

	now := time.Now()
	report := dailyReport{Date: now.Format("2006-01-02")}
	for _, o := range all {
		if o.Status != models.OrderCompleted {
			continue
		}
		y, m, d := o.CreatedAt.Date()
		ny, nm, nd := now.Date()
		if y != ny || m != nm || d != nd {
			continue
		}

		report.CompletedOrders++
		report.Revenue += o.TotalAmount
		for _, line := range o.Items {
			cost, ok := costs[line.ID]
			if !ok {
				cost = line.Cost
			}
			report.Cost += cost * float64(line.Quantity)
		}
	}
	report.Profit = report.Revenue - report.Cost
	report.RevenueDisplay = utils.FormatCurrencyTRY(report.Revenue)
	report.ProfitDisplay = utils.FormatCurrencyTRY(report.Profit)

	utils.RespondJSON(c, http.StatusOK, "Daily report", report)
}
