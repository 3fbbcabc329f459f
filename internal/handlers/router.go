package handlers

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/shopfront/shopfront/internal/middleware"
	"github.com/shopfront/shopfront/internal/repository"
	"github.com/shopfront/shopfront/internal/service"
)

// NewRouter assembles the mock shop service router over the given catalog.
func NewRouter(repo repository.ProductRepository, log *zap.Logger) chi.Router {
	productService := service.NewProductService(repo)
	orderService := service.NewOrderService(repo, log)

	healthHandler := NewHealthHandler(log)
	productHandler := NewProductHandler(productService, log)
	orderHandler := NewOrderHandler(orderService, log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/product/", productHandler.ListProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)
		r.Post("/order/", orderHandler.CreateOrder)
	})

	return r
}
