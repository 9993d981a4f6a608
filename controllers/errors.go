package controllers

import (
	"errors"
	"net/http"

	"github.com/yeremiapane/lezzetkare/cart"
	"github.com/yeremiapane/lezzetkare/catalog"
	"github.com/yeremiapane/lezzetkare/orders"
	"github.com/yeremiapane/lezzetkare/requests"
	"github.com/yeremiapane/lezzetkare/store"
)

var ErrNoPermission = errors.New("you do not have permission for this action")

// statusForError memetakan taxonomy error core ke kode HTTP:
// validation -> 400, not found -> 404, illegal transition -> 409.
func statusForError(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, orders.ErrIllegalTransition):
		return http.StatusConflict
	case errors.Is(err, orders.ErrFeedbackExists):
		return http.StatusConflict
	case errors.Is(err, orders.ErrEmptyCart),
		errors.Is(err, orders.ErrInvalidFeedback),
		errors.Is(err, catalog.ErrValidation),
		errors.Is(err, requests.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, cart.ErrItemUnavailable),
		errors.Is(err, cart.ErrNothingToReorder):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
