// Package reviews records post-delivery feedback and rolls it up per farm.
// The delivery gate lives here in the ledger, not in any caller: an order
// must exist and be delivered, and gets at most one review.
package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"sync"
	"time"

	"urbanharvest/models"
	"urbanharvest/orders"
	"urbanharvest/sentiment"
	"urbanharvest/snapshot"
	"urbanharvest/utils"
)

var (
	ErrOrderNotFound   = errors.New("reviewed order not found")
	ErrNotDelivered    = errors.New("order has not been delivered")
	ErrAlreadyReviewed = errors.New("order already has a review")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

type Service struct {
	mu          sync.RWMutex
	reviews     []models.Review
	lastUpdated int64
	store       snapshot.Store
	scorer      sentiment.Scorer
	orders      *orders.Service
}

func NewService(store snapshot.Store, scorer sentiment.Scorer, orderSvc *orders.Service) *Service {
	return &Service{store: store, scorer: scorer, orders: orderSvc}
}

// Add validates the draft against the order ledger, attaches the sentiment
// label and appends. Farm identity is copied from the order, never trusted
// from the caller.
func (s *Service) Add(ctx context.Context, draft models.Review) (models.Review, error) {
	if draft.Rating < 1 || draft.Rating > 5 {
		return models.Review{}, ErrInvalidRating
	}

	order, err := s.orders.Get(draft.OrderID)
	if err != nil {
		return models.Review{}, ErrOrderNotFound
	}
	if order.Status != models.StatusDelivered {
		return models.Review{}, ErrNotDelivered
	}

	// score outside the lock; the remote scorer may take a while
	label := s.scorer.Score(ctx, draft.Rating, draft.Comment)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rv := range s.reviews {
		if rv.OrderID == draft.OrderID {
			return models.Review{}, ErrAlreadyReviewed
		}
	}

	review := models.Review{
		ID:           "review-" + utils.GenerateRandomString(12),
		OrderID:      order.ID,
		FarmID:       order.FarmID,
		FarmName:     order.FarmName,
		CustomerName: draft.CustomerName,
		Rating:       draft.Rating,
		Comment:      draft.Comment,
		CreatedAt:    time.Now(),
		Sentiment:    label,
	}

	s.reviews = append(s.reviews, review)
	s.persistLocked(ctx)
	return review, nil
}

func (s *Service) ByFarm(farmID string) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Review{}
	for _, rv := range s.reviews {
		if rv.FarmID == farmID {
			out = append(out, rv)
		}
	}
	return out
}

func (s *Service) ByOrder(orderID string) (models.Review, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rv := range s.reviews {
		if rv.OrderID == orderID {
			return rv, true
		}
	}
	return models.Review{}, false
}

// AggregateByFarm buckets a farm's reviews into sentiment percentages plus
// the average rating. An empty set aggregates to all zeroes.
func (s *Service) AggregateByFarm(farmID string) models.FarmSentiment {
	farmReviews := s.ByFarm(farmID)
	if len(farmReviews) == 0 {
		return models.FarmSentiment{}
	}

	var positive, neutral, negative, ratingSum int
	for _, rv := range farmReviews {
		label := rv.Sentiment
		if label == "" {
			label = sentiment.Bucket(rv.Rating)
		}
		switch label {
		case models.SentimentPositive:
			positive++
		case models.SentimentNeutral:
			neutral++
		default:
			negative++
		}
		ratingSum += rv.Rating
	}

	total := float64(len(farmReviews))
	return models.FarmSentiment{
		AverageRating: math.Round(float64(ratingSum)/total*100) / 100,
		PositivePct:   int(math.Round(float64(positive) / total * 100)),
		NeutralPct:    int(math.Round(float64(neutral) / total * 100)),
		NegativePct:   int(math.Round(float64(negative) / total * 100)),
		ReviewCount:   len(farmReviews),
	}
}

// Reconcile adopts the shared snapshot iff strictly newer, same contract as
// the order ledger.
func (s *Service) Reconcile(ctx context.Context) error {
	data, ok, err := s.store.Load(ctx, snapshot.ReviewsKey)
	if err != nil || !ok {
		return err
	}

	var env models.ReviewSnapshot
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if env.State.LastUpdated > s.lastUpdated {
		s.reviews = env.State.Items
		s.lastUpdated = env.State.LastUpdated
	}
	return nil
}

func (s *Service) persistLocked(ctx context.Context) {
	now := time.Now().UnixMilli()
	if now <= s.lastUpdated {
		now = s.lastUpdated + 1
	}
	s.lastUpdated = now

	env := models.ReviewSnapshot{State: models.ReviewSnapshotState{Items: s.reviews, LastUpdated: s.lastUpdated}}
	data, err := json.Marshal(env)
	if err != nil {
		log.Println("reviews snapshot marshal error:", err)
		return
	}
	if err := s.store.Save(ctx, snapshot.ReviewsKey, data); err != nil {
		log.Println("reviews snapshot save error:", err)
	}
}
