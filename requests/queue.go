// Package requests adalah antrian permintaan bantuan meja (panggil
// garson / minta bill), terpisah dari order.
package requests

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/yeremiapane/lezzetkare/models"
	"github.com/yeremiapane/lezzetkare/notify"
	"github.com/yeremiapane/lezzetkare/store"
)

var ErrInvalidRequest = errors.New("invalid table request")

type Queue struct {
	store store.Store
	bus   *notify.Bus
}

func NewQueue(st store.Store, bus *notify.Bus) *Queue {
	return &Queue{store: st, bus: bus}
}

func (q *Queue) publish() {
	if q.bus != nil {
		q.bus.Publish()
	}
}

func (q *Queue) all() ([]models.TableRequest, error) {
	var list []models.TableRequest
	err := q.store.Get(store.KeyTableRequests, &list)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Raise menambahkan satu permintaan belum-resolved dari sebuah meja
func (q *Queue) Raise(tableID string, typ models.RequestType) (models.TableRequest, error) {
	if tableID == "" {
		return models.TableRequest{}, fmt.Errorf("%w: missing table id", ErrInvalidRequest)
	}
	if !typ.Valid() {
		return models.TableRequest{}, fmt.Errorf("%w: unknown type %q", ErrInvalidRequest, typ)
	}

	req := models.TableRequest{
		ID:        uuid.NewString(),
		TableID:   tableID,
		Type:      typ,
		CreatedAt: time.Now(),
	}
	list, err := q.all()
	if err != nil {
		return models.TableRequest{}, err
	}
	list = append(list, req)
	if err := q.store.Put(store.KeyTableRequests, list); err != nil {
		return models.TableRequest{}, err
	}
	q.publish()
	return req, nil
}

// Resolve menandai permintaan selesai. Idempoten: resolve id yang sudah
// resolved atau tidak ada sama sekali adalah no-op, bukan error.
// Record dibaca ulang tepat sebelum ditulis (resolve-if-still-unresolved).
func (q *Queue) Resolve(id string) error {
	list, err := q.all()
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if list[i].Resolved {
			return nil
		}
		list[i].Resolved = true
		if err := q.store.Put(store.KeyTableRequests, list); err != nil {
			return err
		}
		q.publish()
		return nil
	}
	return nil
}

// ListUnresolved -> permintaan yang masih terbuka, urut berdasarkan
// waktu dibuat (satu-satunya query yang dibutuhkan dashboard staff)
func (q *Queue) ListUnresolved() ([]models.TableRequest, error) {
	list, err := q.all()
	if err != nil {
		return nil, err
	}
	var open []models.TableRequest
	for _, r := range list {
		if !r.Resolved {
			open = append(open, r)
		}
	}
	sort.Slice(open, func(i, j int) bool { return open[i].CreatedAt.Before(open[j].CreatedAt) })
	return open, nil
}
