package routes

import (
	"urbanharvest/auth"
	"urbanharvest/cart"
	"urbanharvest/catalog"
	"urbanharvest/farms"
	"urbanharvest/middleware"
	"urbanharvest/orders"
	"urbanharvest/ratelim"
	"urbanharvest/reviews"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
}

func AddCatalogRoutes(router *httprouter.Router) {
	router.GET("/api/farms", middleware.OptionalAuth(catalog.GetFarms))
	router.GET("/api/farms/:slug", middleware.OptionalAuth(catalog.GetFarm))
	router.GET("/api/farms/:slug/products", middleware.OptionalAuth(catalog.GetFarmProducts))
	router.GET("/api/products", middleware.OptionalAuth(catalog.GetProducts))
}

func AddCartRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *cart.Handler) {
	router.GET("/api/cart", middleware.Authenticate(h.GetCart))
	router.GET("/api/cart/totals", middleware.Authenticate(h.GetTotals))
	router.POST("/api/cart", middleware.Authenticate(h.AddToCart))
	router.PUT("/api/cart/:productId", middleware.Authenticate(h.UpdateQuantity))
	router.DELETE("/api/cart/:productId", middleware.Authenticate(h.RemoveFromCart))
	router.POST("/api/cart/checkout", rl.Limit(middleware.Authenticate(h.Checkout)))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *orders.Handler) {
	router.GET("/api/orders", middleware.Authenticate(h.GetOrders))
	router.GET("/api/orders/:id", middleware.Authenticate(h.GetOrder))
	router.POST("/api/orders/:id/status", rl.Limit(middleware.Authenticate(h.UpdateStatus)))
}

func AddReviewRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *reviews.Handler) {
	router.POST("/api/reviews", rl.Limit(middleware.Authenticate(h.AddReview)))
	router.GET("/api/orders/:id/review", middleware.Authenticate(h.GetOrderReview))
	router.GET("/api/farms/:slug/reviews", middleware.OptionalAuth(h.GetFarmReviews))
	router.GET("/api/farms/:slug/sentiment", middleware.OptionalAuth(h.GetFarmSentiment))
}

func AddFarmDashRoutes(router *httprouter.Router, h *farms.Handler) {
	router.GET("/api/farmdash", middleware.Authenticate(h.GetFarmDash))
}
