package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/lezzetkare/models"
	"github.com/yeremiapane/lezzetkare/requests"
	"github.com/yeremiapane/lezzetkare/utils"
)

type RequestController struct {
	Queue *requests.Queue
}

func NewRequestController(q *requests.Queue) *RequestController {
	return &RequestController{Queue: q}
}

// CreateRequest -> meja memanggil garson atau minta bill
func (rc *RequestController) CreateRequest(c *gin.Context) {
	var body struct {
		TableID string             `json:"tableId" binding:"required"`
		Type    models.RequestType `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	req, err := rc.Queue.Raise(body.TableID, body.Type)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.InfoLogger.Printf("table %s raised %s request", req.TableID, req.Type)
	utils.RespondJSON(c, http.StatusCreated, "Request raised", req)
}

// ResolveRequest -> staff menandai permintaan selesai; idempoten
func (rc *RequestController) ResolveRequest(c *gin.Context) {
	id := c.Param("request_id")

	if err := rc.Queue.Resolve(id); err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Request resolved", gin.H{"request_id": id})
}

// GetUnresolvedRequests -> antrian terbuka untuk dashboard staff
func (rc *RequestController) GetUnresolvedRequests(c *gin.Context) {
	list, err := rc.Queue.ListUnresolved()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Unresolved requests", list)
}
