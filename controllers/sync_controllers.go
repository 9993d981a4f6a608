package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/lezzetkare/store"
	"github.com/yeremiapane/lezzetkare/utils"
)

type SyncController struct {
	Store store.Store
}

func NewSyncController(st store.Store) *SyncController {
	return &SyncController{Store: st}
}

// GetRevision -> revision store saat ini. Terminal polling cukup
// membandingkan angka ini dengan yang terakhir dilihat; naik berarti
// ada perubahan dan terminal reload data yang dia pakai.
func (sc *SyncController) GetRevision(c *gin.Context) {
	rev, err := sc.Store.Revision()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Current revision", gin.H{"revision": rev})
}
