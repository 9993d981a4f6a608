package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/lezzetkare/catalog"
	"github.com/yeremiapane/lezzetkare/models"
	"github.com/yeremiapane/lezzetkare/pricing"
	"github.com/yeremiapane/lezzetkare/utils"
)

type MenuController struct {
	Catalog *catalog.Catalog
}

func NewMenuController(cat *catalog.Catalog) *MenuController {
	return &MenuController{Catalog: cat}
}

// menuView -> satu item plus harga efektif saat ini untuk tampilan
type menuView struct {
	models.MenuItem
	FinalPrice        float64 `json:"finalPrice"`
	HasActiveDiscount bool    `json:"hasActiveDiscount"`
	Disabled          bool    `json:"disabled"`
}

// GetMenu -> daftar menu untuk terminal customer, harga sudah melewati
// pricing engine pada saat request
func (mc *MenuController) GetMenu(c *gin.Context) {
	items, err := mc.Catalog.Items()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	overrides, err := mc.Catalog.PriceOverrides()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	rules, err := mc.Catalog.Discounts()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	disabled, err := mc.Catalog.DisabledItems()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	now := time.Now()
	views := make([]menuView, 0, len(items))
	for _, item := range items {
		var override *float64
		if v, ok := overrides[item.ID]; ok {
			override = &v
		}
		var rule *models.DiscountRule
		if r, ok := rules[item.ID]; ok {
			rule = &r
		}
		views = append(views, menuView{
			MenuItem:          item,
			FinalPrice:        pricing.EffectivePrice(item, override, rule, now),
			HasActiveDiscount: pricing.HasActiveDiscount(item, override, rule, now),
			Disabled:          disabled[item.ID],
		})
	}

	utils.RespondJSON(c, http.StatusOK, "List of menus", views)
}

// SaveMenuItem -> staff membuat atau mengubah item (replace by id)
func (mc *MenuController) SaveMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := mc.Catalog.SaveItem(item); err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item saved", item)
}

// DeleteMenuItem -> hapus item; override dan diskonnya ikut tercabut
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id := c.Param("item_id")
	if err := mc.Catalog.DeleteItem(id); err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"item_id": id})
}

// SetPrice -> staff memasang price override (last write wins)
func (mc *MenuController) SetPrice(c *gin.Context) {
	itemID := c.Param("item_id")

	var body struct {
		Price float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := mc.Catalog.SetPriceOverride(itemID, body.Price); err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Price updated", gin.H{
		"item_id": itemID,
		"price":   body.Price,
	})
}

// SetDiscount -> staff memasang/mengubah rule diskon item
func (mc *MenuController) SetDiscount(c *gin.Context) {
	itemID := c.Param("item_id")

	var rule models.DiscountRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	rule.ItemID = itemID

	if err := mc.Catalog.SetDiscount(rule); err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Discount rule saved", rule)
}

// GetDiscounts -> semua rule (bentuk legacy sudah ternormalisasi)
func (mc *MenuController) GetDiscounts(c *gin.Context) {
	rules, err := mc.Catalog.Discounts()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Discount rules", rules)
}

// ToggleAvailability -> staff menandai item habis / tersedia lagi
func (mc *MenuController) ToggleAvailability(c *gin.Context) {
	itemID := c.Param("item_id")

	disabled, err := mc.Catalog.ToggleAvailability(itemID)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Availability updated", gin.H{
		"item_id":  itemID,
		"disabled": disabled,
	})
}
