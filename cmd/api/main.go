package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"

	"fruitmart-backend/config"
	"fruitmart-backend/internal/delivery/http/middleware"
	v1 "fruitmart-backend/internal/delivery/http/v1"
	infracache "fruitmart-backend/internal/infrastructure/cache"
	"fruitmart-backend/internal/repository/memory"
	"fruitmart-backend/internal/usecase"
	"fruitmart-backend/pkg/logger"
	"fruitmart-backend/pkg/utils"

	"golang.org/x/time/rate"
)

const (
	serviceName    = "fruitmart-api"
	serviceVersion = "1.0.0"
)

func main() {
	cfg := config.LoadConfig()

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Seed the catalog once; the store is read-only for the process lifetime
	products := memory.SeedCatalog(cfg.CatalogSize, cfg.CatalogSeed)
	catalogRepo := memory.NewCatalogRepository(products)
	log.Info().Int("products", len(products)).Int64("seed", cfg.CatalogSeed).Msg("Catalog seeded")

	// Initialize Cache (In-Memory)
	// Default expiration 30m, cleanup every 60m
	memCache := infracache.NewMemoryCache(30*time.Minute, 60*time.Minute)

	// Session-scoped state stores share the cache; entries expire with the session
	sessionStore := infracache.NewMemoryCache(cfg.SessionTTL, cfg.SessionTTL)
	cartRepo := memory.NewCartRepository(sessionStore, cfg.SessionTTL)
	wishlistRepo := memory.NewWishlistRepository(sessionStore, cfg.SessionTTL)

	// Set up Router
	mux := http.NewServeMux()

	// --- Modules Initialization ---

	// Catalog Module
	catalogUC := usecase.NewCatalogUsecase(catalogRepo, memCache, cfg)
	catalogHandler := v1.NewCatalogHandler(catalogUC, cfg.DefaultPageSize)

	// Cart Module
	cartUC := usecase.NewCartUsecase(cartRepo, catalogRepo)
	cartHandler := v1.NewCartHandler(cartUC, cfg.MaxCartQuantity)

	// Wishlist Module
	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo, catalogRepo)
	wishlistHandler := v1.NewWishlistHandler(wishlistUC)

	// Catalog (Public)
	mux.HandleFunc("GET /api/v1/categories", catalogHandler.GetCategories)
	mux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts)
	mux.HandleFunc("GET /api/v1/product/{id}", catalogHandler.GetProductByID)
	mux.HandleFunc("GET /api/v1/products/{slug}", catalogHandler.GetProductDetails)

	// Cart
	mux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart)
	mux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem)
	mux.HandleFunc("PATCH /api/v1/cart/items/{productId}", cartHandler.UpdateItem)
	mux.HandleFunc("DELETE /api/v1/cart/items/{productId}", cartHandler.RemoveItem)
	mux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart)

	// Wishlist
	mux.HandleFunc("GET /api/v1/wishlist", wishlistHandler.GetMyWishlist)
	mux.HandleFunc("POST /api/v1/wishlist", wishlistHandler.AddToWishlist)
	mux.HandleFunc("DELETE /api/v1/wishlist/{productId}", wishlistHandler.RemoveFromWishlist)
	mux.HandleFunc("GET /api/v1/wishlist/contains/{productId}", wishlistHandler.Contains)

	// Health Check
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
	mux.HandleFunc("GET /api/v1/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler) // Support root health check for Load Balancers

	addr := fmt.Sprintf(":%s", cfg.Port)

	// Initialize Rate Limiter with lifecycle management
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		rate.Limit(cfg.RateLimitRPS),
		cfg.RateLimitBurst,
		time.Minute,   // cleanup period
		3*time.Minute, // client TTL
	)

	// Apply CORS (with config injection), Request Logger, Session, Rate Limit, and Gzip
	handler := middleware.NewCORSMiddleware(cfg)(mux)
	handler = middleware.RequestLogger(handler)
	handler = middleware.Session(cfg.SessionCookieName, cfg.SessionTTL)(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	logger.ServiceStart(serviceName, serviceVersion, cfg.Port)

	// Wait for interrupt signal via channel
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	// Stop rate limiter cleanup goroutine before the listener
	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.ServiceStop(serviceName)
}
