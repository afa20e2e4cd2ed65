package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"urbanharvest/globals"
	"urbanharvest/models"
	"urbanharvest/orders"
	"urbanharvest/snapshot"

	"github.com/stretchr/testify/require"
)

func authedRequest(method, target, body, userID, userName string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), globals.UserIDKey, userID)
	ctx = context.WithValue(ctx, globals.UserNameKey, userName)
	return req.WithContext(ctx)
}

func TestCheckoutHandler(t *testing.T) {
	orderSvc := orders.NewService(snapshot.NewMemStore())
	svc := NewService(orderSvc)
	h := NewHandler(svc)

	svc.Add("u1", models.CartLine{ProductID: "1", Name: "Heirloom Tomatoes", Price: 4.99, Farm: "Green Roof Gardens", Quantity: 2})
	svc.Add("u1", models.CartLine{ProductID: "2", Name: "Fresh Basil", Price: 2.99, Farm: "Vertical Harvest", Quantity: 1})

	rr := httptest.NewRecorder()
	h.Checkout(rr, authedRequest(http.MethodPost, "/api/cart/checkout", `{"address":"123 Main St"}`, "u1", "John Customer"), nil)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp struct {
		Success bool           `json:"success"`
		Orders  []models.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Len(t, resp.Orders, 2)
	require.Equal(t, "John Customer", resp.Orders[0].CustomerName)
	require.Empty(t, svc.Lines("u1"))
}

func TestCheckoutHandlerMissingAddress(t *testing.T) {
	orderSvc := orders.NewService(snapshot.NewMemStore())
	svc := NewService(orderSvc)
	h := NewHandler(svc)

	svc.Add("u1", models.CartLine{ProductID: "1", Price: 4.99, Farm: "Green Roof Gardens", Quantity: 1})

	rr := httptest.NewRecorder()
	h.Checkout(rr, authedRequest(http.MethodPost, "/api/cart/checkout", `{"address":""}`, "u1", "John Customer"), nil)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Len(t, svc.Lines("u1"), 1)
	require.Empty(t, orderSvc.All())
}

func TestCheckoutHandlerUnauthenticated(t *testing.T) {
	svc := NewService(orders.NewService(snapshot.NewMemStore()))
	h := NewHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/checkout", strings.NewReader(`{"address":"123 Main St"}`))
	rr := httptest.NewRecorder()
	h.Checkout(rr, req, nil)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAddToCartHandlerRejectsBadLine(t *testing.T) {
	svc := NewService(orders.NewService(snapshot.NewMemStore()))
	h := NewHandler(svc)

	rr := httptest.NewRecorder()
	h.AddToCart(rr, authedRequest(http.MethodPost, "/api/cart", `{"productId":"1","farm":"Green Roof Gardens","price":4.99,"quantity":0}`, "u1", "John Customer"), nil)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Empty(t, svc.Lines("u1"))
}
