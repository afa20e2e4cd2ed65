package catalog

import (
	"net/http"

	"urbanharvest/utils"

	"github.com/julienschmidt/httprouter"
)

// GET /api/farms
func GetFarms(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "farms": Farms()})
}

// GET /api/farms/:slug
func GetFarm(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	farm, ok := FarmBySlug(ps.ByName("slug"))
	if !ok {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "message": "Farm not found"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "farm": farm})
}

// GET /api/products
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "products": Products()})
}

// GET /api/farms/:slug/products
func GetFarmProducts(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")
	if _, ok := FarmBySlug(slug); !ok {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "message": "Farm not found"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "products": ProductsByFarm(slug)})
}
