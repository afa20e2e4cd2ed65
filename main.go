package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"urbanharvest/cart"
	"urbanharvest/farms"
	"urbanharvest/orders"
	"urbanharvest/ratelim"
	"urbanharvest/rdx"
	"urbanharvest/reconciler"
	"urbanharvest/reviews"
	"urbanharvest/routes"
	"urbanharvest/sentiment"
	"urbanharvest/snapshot"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(rl *ratelim.RateLimiter, cartH *cart.Handler, orderH *orders.Handler, reviewH *reviews.Handler, dashH *farms.Handler) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddAuthRoutes(router, rl)
	routes.AddCatalogRoutes(router)
	routes.AddCartRoutes(router, rl, cartH)
	routes.AddOrderRoutes(router, rl, orderH)
	routes.AddReviewRoutes(router, rl, reviewH)
	routes.AddFarmDashRoutes(router, dashH)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	// read port
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	// shared snapshot store: Redis when reachable, in-process otherwise
	var store snapshot.Store
	if err := rdx.Init(); err != nil {
		log.Println("Running without Redis; snapshots stay in-process")
		store = snapshot.NewMemStore()
	} else {
		store = snapshot.NewRedisStore(rdx.Conn)
	}

	// wire up services
	scorer := sentiment.NewClient(os.Getenv("SENTIMENT_URL"))
	orderSvc := orders.NewService(store)
	reviewSvc := reviews.NewService(store, scorer, orderSvc)
	cartSvc := cart.NewService(orderSvc)

	rateLimiter := ratelim.NewRateLimiter()
	router := setupRouter(
		rateLimiter,
		cart.NewHandler(cartSvc),
		orders.NewHandler(orderSvc),
		reviews.NewHandler(reviewSvc),
		farms.NewHandler(orderSvc, reviewSvc),
	)

	// start the cross-session reconciliation loop
	rec := reconciler.New(orderSvc, reviewSvc)
	go rec.Run()

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// on shutdown: stop the reconciler so no periodic work leaks
	server.RegisterOnShutdown(func() {
		log.Println("Stopping reconciler...")
		rec.Stop()
	})

	go func() {
		log.Printf("Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
