// Package sentiment labels reviews. A remote scoring service may be
// configured; whenever it is absent or fails, the rating-bucket heuristic
// answers instead, so scoring never fails upward.
package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"urbanharvest/models"
)

// Scorer labels a review. Implementations must always return a label.
type Scorer interface {
	Score(ctx context.Context, rating int, comment string) models.Sentiment
}

// Bucket is the local heuristic: rating>=4 positive, >=3 neutral, else negative.
func Bucket(rating int) models.Sentiment {
	switch {
	case rating >= 4:
		return models.SentimentPositive
	case rating >= 3:
		return models.SentimentNeutral
	default:
		return models.SentimentNegative
	}
}

// Client calls the remote analyze endpoint and falls back to Bucket. An empty
// BaseURL disables the remote entirely.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Client) Score(ctx context.Context, rating int, comment string) models.Sentiment {
	if c.BaseURL == "" {
		return Bucket(rating)
	}

	payload, err := json.Marshal(map[string]any{"rating": rating, "comment": comment})
	if err != nil {
		return Bucket(rating)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/analyze-sentiment", bytes.NewReader(payload))
	if err != nil {
		return Bucket(rating)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Println("sentiment service unreachable, using rating fallback:", err)
		return Bucket(rating)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Println("sentiment service returned", resp.StatusCode, "- using rating fallback")
		return Bucket(rating)
	}

	var out struct {
		Sentiment models.Sentiment `json:"sentiment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Bucket(rating)
	}

	switch out.Sentiment {
	case models.SentimentPositive, models.SentimentNeutral, models.SentimentNegative:
		return out.Sentiment
	}
	return Bucket(rating)
}
