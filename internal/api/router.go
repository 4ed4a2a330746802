package api

import (
	"net/http"

	"github.com/dom/securecart/internal/api/handlers"
	"github.com/dom/securecart/internal/api/middleware"
	"github.com/dom/securecart/internal/config"
	"github.com/dom/securecart/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestLogger)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, cfg.CookieSecure)
	catalogHandler := handlers.NewCatalogHandler(services.Catalog, services.Auth)
	cartHandler := handlers.NewCartHandler(services.Cart)
	likeHandler := handlers.NewLikeHandler(services.Like)
	orderHandler := handlers.NewOrderHandler(services.Order)
	adminHandler := handlers.NewAdminHandler(services.Catalog)

	// Public routes
	r.Post("/sign-up", authHandler.SignUp)
	r.Post("/sign-in", authHandler.SignIn)
	r.Post("/sign-out", authHandler.SignOut)

	r.Get("/products", catalogHandler.List)
	r.Get("/products/home", catalogHandler.Home)
	r.Get("/products/{id}", catalogHandler.Get)

	// Product images
	r.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(http.Dir(cfg.ImageDir))))

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser(services.Auth))

		r.Get("/cart", cartHandler.View)
		r.Post("/cart", cartHandler.Update)

		r.Get("/liked", likeHandler.List)
		r.Post("/liked", likeHandler.Update)

		r.Get("/orders", orderHandler.List)
		r.Get("/orders/{id}", orderHandler.Details)
		r.Post("/checkout", orderHandler.Checkout)
	})

	// Admin panel
	r.Route("/adminpanel", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(services.Auth))

		r.Get("/products", adminHandler.ListProducts)
		r.Post("/products", adminHandler.AddProduct)
		r.Post("/products/remove", adminHandler.RemoveProduct)
		r.Post("/products/unlist", adminHandler.UnlistProduct)
		r.Post("/products/relist", adminHandler.RelistProduct)
	})

	return r
}
