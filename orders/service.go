// Package orders owns the order ledger and its delivery lifecycle. Orders
// move placed -> dispatched -> delivered, one step at a time, never backward.
package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"urbanharvest/models"
	"urbanharvest/snapshot"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrBadTransition = errors.New("invalid status transition")
	ErrEmptyDraft    = errors.New("order draft has no items")
)

// nextStatus holds the only legal single-step moves; delivered is terminal.
var nextStatus = map[models.OrderStatus]models.OrderStatus{
	models.StatusPlaced:     models.StatusDispatched,
	models.StatusDispatched: models.StatusDelivered,
}

// Service is the authoritative in-process ledger. Every mutation bumps the
// logical clock and overwrites the shared snapshot; Reconcile pulls the
// snapshot back in when another session has written a newer one.
type Service struct {
	mu          sync.RWMutex
	orders      []models.Order
	lastUpdated int64
	store       snapshot.Store
}

// NewService starts with an empty ledger and logical clock zero, so the
// first Reconcile adopts whatever snapshot already exists.
func NewService(store snapshot.Store) *Service {
	return &Service{store: store}
}

// Create appends a single order. The draft's status is ignored; a fresh
// order is always "placed".
func (s *Service) Create(ctx context.Context, draft models.OrderDraft) (models.Order, error) {
	created, err := s.CreateBatch(ctx, []models.OrderDraft{draft})
	if err != nil {
		return models.Order{}, err
	}
	return created[0], nil
}

// CreateBatch commits a set of drafts all-or-nothing: every draft is
// validated before any order is appended, so a bad draft leaves the ledger
// untouched. Checkout relies on this for its per-farm split.
func (s *Service) CreateBatch(ctx context.Context, drafts []models.OrderDraft) ([]models.Order, error) {
	for _, d := range drafts {
		if len(d.Items) == 0 {
			return nil, ErrEmptyDraft
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	created := make([]models.Order, 0, len(drafts))
	for _, d := range drafts {
		items := make([]models.CartLine, len(d.Items))
		copy(items, d.Items)

		created = append(created, models.Order{
			ID:               "order-" + uuid.NewString(),
			Items:            items,
			Total:            d.Total,
			Status:           models.StatusPlaced,
			CustomerName:     d.CustomerName,
			CustomerAddress:  d.CustomerAddress,
			CreatedAt:        now,
			UpdatedAt:        now,
			FarmID:           d.FarmID,
			FarmName:         d.FarmName,
			CustomerLocation: d.CustomerLocation,
		})
	}

	s.orders = append(s.orders, created...)
	s.persistLocked(ctx)
	return created, nil
}

// UpdateStatus advances one order through the lifecycle. Unknown ids fail
// with ErrNotFound; anything but the next adjacent status fails with
// ErrBadTransition. A supplied courier location rides along.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus, loc *models.GeoPoint) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if nextStatus[s.orders[i].Status] != status {
			return models.Order{}, ErrBadTransition
		}
		s.orders[i].Status = status
		s.orders[i].UpdatedAt = time.Now()
		if loc != nil {
			l := *loc
			s.orders[i].CurrentLocation = &l
		}
		s.persistLocked(ctx)
		return s.orders[i], nil
	}
	return models.Order{}, ErrNotFound
}

func (s *Service) Get(orderID string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (s *Service) All() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// ByFarm filters on the farm slug stamped at checkout.
func (s *Service) ByFarm(farmID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Order{}
	for _, o := range s.orders {
		if o.FarmID == farmID {
			out = append(out, o)
		}
	}
	return out
}

// Reconcile pulls the shared snapshot and adopts it wholesale iff its clock
// is strictly newer than ours. Calling it again with no intervening external
// write changes nothing.
func (s *Service) Reconcile(ctx context.Context) error {
	data, ok, err := s.store.Load(ctx, snapshot.OrdersKey)
	if err != nil || !ok {
		return err
	}

	var env models.OrderSnapshot
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if env.State.LastUpdated > s.lastUpdated {
		s.orders = env.State.Items
		s.lastUpdated = env.State.LastUpdated
	}
	return nil
}

// persistLocked bumps the logical clock and overwrites the shared snapshot.
// Callers hold s.mu. A failed write only costs cross-session visibility, so
// it is logged, not surfaced.
func (s *Service) persistLocked(ctx context.Context) {
	now := time.Now().UnixMilli()
	if now <= s.lastUpdated {
		now = s.lastUpdated + 1
	}
	s.lastUpdated = now

	env := models.OrderSnapshot{State: models.OrderSnapshotState{Items: s.orders, LastUpdated: s.lastUpdated}}
	data, err := json.Marshal(env)
	if err != nil {
		log.Println("orders snapshot marshal error:", err)
		return
	}
	if err := s.store.Save(ctx, snapshot.OrdersKey, data); err != nil {
		log.Println("orders snapshot save error:", err)
	}
}
