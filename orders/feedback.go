package orders

import (
	"errors"
	"fmt"
	"time"

	"github.com/yeremiapane/lezzetkare/models"
	"github.com/yeremiapane/lezzetkare/store"
)

var (
	// ErrFeedbackExists -> order ini sudah pernah dinilai
	ErrFeedbackExists = errors.New("feedback already submitted for this order")
	// ErrInvalidFeedback -> rating di luar 1-5 atau order belum selesai
	ErrInvalidFeedback = errors.New("invalid feedback")
)

// AddFeedback menyimpan penilaian customer untuk order COMPLETED,
// maksimal satu entry per order.
func (c *Controller) AddFeedback(fb models.Feedback) error {
	if fb.Rating < 1 || fb.Rating > 5 {
		return fmt.Errorf("%w: rating must be within 1-5", ErrInvalidFeedback)
	}
	order, err := c.Get(fb.OrderID)
	if err != nil {
		return err
	}
	if order.Status != models.OrderCompleted {
		return fmt.Errorf("%w: order is %s, not COMPLETED", ErrInvalidFeedback, order.Status)
	}

	entries, err := c.Feedback()
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.OrderID == fb.OrderID {
			return ErrFeedbackExists
		}
	}

	fb.TableID = order.TableID
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now()
	}
	entries = append(entries, fb)
	if err := c.store.Put(store.KeyFeedback, entries); err != nil {
		return err
	}
	c.publish()
	return nil
}

// Feedback -> semua entry di key "feedback_entries"
func (c *Controller) Feedback() ([]models.Feedback, error) {
	var entries []models.Feedback
	err := c.store.Get(store.KeyFeedback, &entries)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entries, nil
}
