package reviews

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"urbanharvest/models"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
)

func TestGetOrderReview(t *testing.T) {
	svc, orderSvc := newTestService(t)
	h := NewHandler(svc)
	order := deliveredOrder(t, orderSvc)

	// before any review the order is still open for one
	rr := httptest.NewRecorder()
	h.GetOrderReview(rr, httptest.NewRequest(http.MethodGet, "/api/orders/"+order.ID+"/review", nil),
		httprouter.Params{{Key: "id", Value: order.ID}})

	require.Equal(t, http.StatusOK, rr.Code)
	var open struct {
		Success  bool `json:"success"`
		Reviewed bool `json:"reviewed"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &open))
	require.True(t, open.Success)
	require.False(t, open.Reviewed)

	review, err := svc.Add(context.Background(), models.Review{OrderID: order.ID, Rating: 5, Comment: "lovely"})
	require.NoError(t, err)

	rr = httptest.NewRecorder()
	h.GetOrderReview(rr, httptest.NewRequest(http.MethodGet, "/api/orders/"+order.ID+"/review", nil),
		httprouter.Params{{Key: "id", Value: order.ID}})

	require.Equal(t, http.StatusOK, rr.Code)
	var closed struct {
		Success  bool          `json:"success"`
		Reviewed bool          `json:"reviewed"`
		Review   models.Review `json:"review"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &closed))
	require.True(t, closed.Reviewed)
	require.Equal(t, review.ID, closed.Review.ID)
}
