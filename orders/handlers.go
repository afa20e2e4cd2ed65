package orders

import (
	"encoding/json"
	"errors"
	"log"
	rndm "math/rand"
	"net/http"

	"urbanharvest/globals"
	"urbanharvest/models"
	"urbanharvest/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GET /api/orders
func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "orders": h.svc.All()})
}

// GET /api/orders/:id
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	order, err := h.svc.Get(ps.ByName("id"))
	if err != nil {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "message": "Order not found"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "order": order})
}

// POST /api/orders/:id/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	role, _ := r.Context().Value(globals.RoleKey).(string)
	if role != "farmer" {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var payload struct {
		Status          models.OrderStatus `json:"status"`
		CurrentLocation *models.GeoPoint   `json:"currentLocation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("UpdateStatus decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	orderID := ps.ByName("id")
	loc := payload.CurrentLocation
	if loc == nil {
		if current, err := h.svc.Get(orderID); err == nil {
			loc = courierNear(current.CustomerLocation)
		}
	}

	order, err := h.svc.UpdateStatus(r.Context(), orderID, payload.Status, loc)
	switch {
	case errors.Is(err, ErrNotFound):
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "message": "Order not found"})
		return
	case errors.Is(err, ErrBadTransition):
		utils.RespondWithJSON(w, http.StatusConflict, utils.M{"success": false, "message": "Invalid status transition"})
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "order": order})
}

// courierNear fakes a courier position within roughly a mile of the customer.
func courierNear(customer models.GeoPoint) *models.GeoPoint {
	return &models.GeoPoint{
		Lat: customer.Lat + (rndm.Float64()-0.5)*0.03,
		Lng: customer.Lng + (rndm.Float64()-0.5)*0.03,
	}
}
