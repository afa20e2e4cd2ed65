package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"urbanharvest/globals"
	"urbanharvest/models"
	"urbanharvest/snapshot"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
)

func roleRequest(method, target, body, role string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), globals.UserIDKey, "2")
	ctx = context.WithValue(ctx, globals.RoleKey, role)
	return req.WithContext(ctx)
}

func TestUpdateStatusHandler(t *testing.T) {
	svc := NewService(snapshot.NewMemStore())
	h := NewHandler(svc)

	order, err := svc.Create(context.Background(), draft("Green Roof Gardens", 4.99))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	ps := httprouter.Params{{Key: "id", Value: order.ID}}
	h.UpdateStatus(rr, roleRequest(http.MethodPost, "/api/orders/"+order.ID+"/status", `{"status":"dispatched"}`, "farmer"), ps)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, models.StatusDispatched, resp.Order.Status)
	// courier position gets simulated near the customer when none is sent
	require.NotNil(t, resp.Order.CurrentLocation)
	require.InDelta(t, order.CustomerLocation.Lat, resp.Order.CurrentLocation.Lat, 0.02)
}

func TestUpdateStatusHandlerForbiddenForCustomers(t *testing.T) {
	svc := NewService(snapshot.NewMemStore())
	h := NewHandler(svc)

	order, err := svc.Create(context.Background(), draft("Green Roof Gardens", 4.99))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	ps := httprouter.Params{{Key: "id", Value: order.ID}}
	h.UpdateStatus(rr, roleRequest(http.MethodPost, "/api/orders/"+order.ID+"/status", `{"status":"dispatched"}`, "customer"), ps)

	require.Equal(t, http.StatusForbidden, rr.Code)
}

func TestUpdateStatusHandlerNotFound(t *testing.T) {
	h := NewHandler(NewService(snapshot.NewMemStore()))

	rr := httptest.NewRecorder()
	ps := httprouter.Params{{Key: "id", Value: "order-missing"}}
	h.UpdateStatus(rr, roleRequest(http.MethodPost, "/api/orders/order-missing/status", `{"status":"dispatched"}`, "farmer"), ps)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateStatusHandlerBadTransition(t *testing.T) {
	svc := NewService(snapshot.NewMemStore())
	h := NewHandler(svc)

	order, err := svc.Create(context.Background(), draft("Green Roof Gardens", 4.99))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	ps := httprouter.Params{{Key: "id", Value: order.ID}}
	h.UpdateStatus(rr, roleRequest(http.MethodPost, "/api/orders/"+order.ID+"/status", `{"status":"delivered"}`, "farmer"), ps)

	require.Equal(t, http.StatusConflict, rr.Code)
}
