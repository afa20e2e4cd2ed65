package cart

import (
	"encoding/json"
	"errors"
	"log"
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

func userID(r *http.Request) string {
	id, _ := r.Context().Value(globals.UserIDKey).(string)
	return id
}

// GET /api/cart
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "items": h.svc.Lines(userID(r))})
}

// POST /api/cart
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var line models.CartLine
	if err := json.NewDecoder(r.Body).Decode(&line); err != nil {
		log.Println("AddToCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if line.ProductID == "" || line.Farm == "" || line.Quantity <= 0 || line.Price <= 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	h.svc.Add(userID(r), line)
	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

// PUT /api/cart/:productId
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.Quantity < 1 {
		http.Error(w, "Quantity must be at least 1", http.StatusBadRequest)
		return
	}

	h.svc.UpdateQuantity(userID(r), ps.ByName("productId"), payload.Quantity)
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DELETE /api/cart/:productId
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.svc.Remove(userID(r), ps.ByName("productId"))
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// GET /api/cart/totals
func (h *Handler) GetTotals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.svc.Totals(userID(r)))
}

// POST /api/cart/checkout
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		Address string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	name, _ := r.Context().Value(globals.UserNameKey).(string)
	if name == "" {
		name = "Guest"
	}

	created, err := h.svc.Checkout(r.Context(), userID(r), name, payload.Address)
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	case errors.Is(err, ErrAddressRequired):
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Please enter your delivery address"})
		return
	case errors.Is(err, ErrEmptyCart):
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Cart is empty"})
		return
	case err != nil:
		log.Println("Checkout error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Checkout failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "orders": created})
}
