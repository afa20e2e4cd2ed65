package reviews

import (
	"encoding/json"
	"errors"
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

// POST /api/reviews
func (h *Handler) AddReview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userName, _ := r.Context().Value(globals.UserNameKey).(string)

	var draft models.Review
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil || draft.OrderID == "" || draft.Comment == "" {
		http.Error(w, "Invalid review data", http.StatusBadRequest)
		return
	}
	if userName != "" {
		draft.CustomerName = userName
	}

	review, err := h.svc.Add(r.Context(), draft)
	switch {
	case errors.Is(err, ErrInvalidRating):
		http.Error(w, "Rating must be between 1 and 5", http.StatusBadRequest)
		return
	case errors.Is(err, ErrOrderNotFound):
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "message": "Order not found"})
		return
	case errors.Is(err, ErrNotDelivered):
		utils.RespondWithJSON(w, http.StatusConflict, utils.M{"success": false, "message": "Order has not been delivered yet"})
		return
	case errors.Is(err, ErrAlreadyReviewed):
		utils.RespondWithJSON(w, http.StatusConflict, utils.M{"success": false, "message": "You have already reviewed this order"})
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add review")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "review": review})
}

// GET /api/orders/:id/review
// Lets the orders page tell whether an order can still be reviewed.
func (h *Handler) GetOrderReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	review, ok := h.svc.ByOrder(ps.ByName("id"))
	if !ok {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "reviewed": false})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "reviewed": true, "review": review})
}

// GET /api/farms/:slug/reviews
func (h *Handler) GetFarmReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "reviews": h.svc.ByFarm(ps.ByName("slug"))})
}

// GET /api/farms/:slug/sentiment
func (h *Handler) GetFarmSentiment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.svc.AggregateByFarm(ps.ByName("slug")))
}
