package models

import "time"

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Review is post-delivery feedback tied to exactly one order.
type Review struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"orderId"`
	FarmID       string    `json:"farmId"`
	FarmName     string    `json:"farmName"`
	CustomerName string    `json:"customerName"`
	Rating       int       `json:"rating"` // 1..5
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
	Sentiment    Sentiment `json:"sentiment,omitempty"`
}

// FarmSentiment is the dashboard rollup for one farm's reviews.
type FarmSentiment struct {
	AverageRating float64 `json:"averageRating"`
	PositivePct   int     `json:"positive"`
	NeutralPct    int     `json:"neutral"`
	NegativePct   int     `json:"negative"`
	ReviewCount   int     `json:"reviewCount"`
}
