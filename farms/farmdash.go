package farms

import (
	"net/http"

	"urbanharvest/catalog"
	"urbanharvest/globals"
	"urbanharvest/orders"
	"urbanharvest/reviews"
	"urbanharvest/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	orders  *orders.Service
	reviews *reviews.Service
}

func NewHandler(orderSvc *orders.Service, reviewSvc *reviews.Service) *Handler {
	return &Handler{orders: orderSvc, reviews: reviewSvc}
}

// GET /api/farmdash
//
// The operator's farm is resolved by slugifying their display name, the same
// derivation checkout stamps on orders, so the two always agree.
func (h *Handler) GetFarmDash(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	role, _ := r.Context().Value(globals.RoleKey).(string)
	if role != "farmer" {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	name, _ := r.Context().Value(globals.UserNameKey).(string)
	farmID := utils.Slugify(name)

	resp := utils.M{
		"success":   true,
		"orders":    h.orders.ByFarm(farmID),
		"sentiment": h.reviews.AggregateByFarm(farmID),
		"reviews":   h.reviews.ByFarm(farmID),
	}
	if farm, ok := catalog.FarmBySlug(farmID); ok {
		resp["farm"] = farm
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}
