package sentiment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"urbanharvest/models"

	"github.com/stretchr/testify/require"
)

func TestBucket(t *testing.T) {
	require.Equal(t, models.SentimentPositive, Bucket(5))
	require.Equal(t, models.SentimentPositive, Bucket(4))
	require.Equal(t, models.SentimentNeutral, Bucket(3))
	require.Equal(t, models.SentimentNegative, Bucket(2))
	require.Equal(t, models.SentimentNegative, Bucket(1))
}

func TestClientUsesRemoteLabel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/analyze-sentiment", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sentiment":"negative"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	// remote says negative even though the rating buckets positive
	require.Equal(t, models.SentimentNegative, c.Score(context.Background(), 5, "arrived rotten"))
}

func TestClientFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model offline", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	require.Equal(t, models.SentimentPositive, c.Score(context.Background(), 5, "great"))
	require.Equal(t, models.SentimentNegative, c.Score(context.Background(), 1, "bad"))
}

func TestClientFallsBackOnBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sentiment":"enthusiastic"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	require.Equal(t, models.SentimentNeutral, c.Score(context.Background(), 3, "fine"))
}

func TestClientFallsBackWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	c := NewClient(srv.URL)
	require.Equal(t, models.SentimentNeutral, c.Score(context.Background(), 3, "fine"))
}

func TestClientSkipsRemoteWithoutBaseURL(t *testing.T) {
	c := NewClient("")
	require.Equal(t, models.SentimentPositive, c.Score(context.Background(), 4, "good"))
}
