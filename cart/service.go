// Package cart holds each buyer's pending line items and turns them into
// per-farm orders at checkout.
package cart

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"

	"urbanharvest/models"
	"urbanharvest/utils"
)

// ShippingFlatFee is charged once per cart when it is non-empty. It stays a
// cart-level charge: per-farm order totals are pure item sums.
const ShippingFlatFee = 5.99

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrAddressRequired  = errors.New("address required")
	ErrEmptyCart        = errors.New("cart is empty")
)

// The demo has no geocoding; every customer checks out from here.
var placeholderLocation = models.GeoPoint{Lat: 40.7128, Lng: -74.006}

// orderLedger is the slice of the order service that checkout commits through.
type orderLedger interface {
	CreateBatch(ctx context.Context, drafts []models.OrderDraft) ([]models.Order, error)
}

// Service keeps one cart per user. The cart exclusively owns its lines until
// checkout hands a snapshot copy to the order ledger.
type Service struct {
	mu     sync.Mutex
	carts  map[string][]models.CartLine
	orders orderLedger
}

func NewService(ledger orderLedger) *Service {
	return &Service{carts: make(map[string][]models.CartLine), orders: ledger}
}

// Add merges into an existing line for the same product or appends a new one.
// Quantity must already be validated positive by the caller.
func (s *Service) Add(userID string, line models.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID == line.ProductID {
			lines[i].Quantity += line.Quantity
			return
		}
	}
	s.carts[userID] = append(lines, line)
}

// UpdateQuantity overwrites a line's quantity. Requests below 1 are no-ops,
// so a line can never drop under one unit; removal is explicit.
func (s *Service) UpdateQuantity(userID, productID string, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			return
		}
	}
}

func (s *Service) Remove(userID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID == productID {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

func (s *Service) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

func (s *Service) Lines(userID string) []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

// Totals is pure: item sum, flat shipping once when non-empty, grand total.
func (s *Service) Totals(userID string) models.CartTotals {
	s.mu.Lock()
	defer s.mu.Unlock()

	var subtotal float64
	for _, line := range s.carts[userID] {
		subtotal += line.Price * float64(line.Quantity)
	}

	var shipping float64
	if len(s.carts[userID]) > 0 {
		shipping = ShippingFlatFee
	}

	return models.CartTotals{
		Subtotal: roundCents(subtotal),
		Shipping: shipping,
		Total:    roundCents(subtotal + shipping),
	}
}

// Checkout partitions the cart by farm and commits one order per farm
// through the ledger's all-or-nothing batch. The cart clears only after the
// batch commits, so a failure leaves both ledger and cart untouched.
func (s *Service) Checkout(ctx context.Context, userID, customerName, address string) ([]models.Order, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	if strings.TrimSpace(address) == "" {
		return nil, ErrAddressRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	// Group lines by farm, preserving the order farms first appear in.
	var farmNames []string
	byFarm := make(map[string][]models.CartLine)
	for _, line := range lines {
		if _, ok := byFarm[line.Farm]; !ok {
			farmNames = append(farmNames, line.Farm)
		}
		byFarm[line.Farm] = append(byFarm[line.Farm], line)
	}

	drafts := make([]models.OrderDraft, 0, len(farmNames))
	for _, farm := range farmNames {
		group := byFarm[farm]
		var total float64
		for _, line := range group {
			total += line.Price * float64(line.Quantity)
		}
		drafts = append(drafts, models.OrderDraft{
			Items:            group,
			Total:            roundCents(total),
			Status:           models.StatusPlaced,
			CustomerName:     customerName,
			CustomerAddress:  address,
			FarmID:           utils.Slugify(farm),
			FarmName:         farm,
			CustomerLocation: placeholderLocation,
		})
	}

	created, err := s.orders.CreateBatch(ctx, drafts)
	if err != nil {
		return nil, err
	}

	delete(s.carts, userID)
	return created, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
