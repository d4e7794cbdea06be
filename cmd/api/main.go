package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/maabu025/book-hubs/docs" // swagger docs

	"github.com/maabu025/book-hubs/internal/cache"
	"github.com/maabu025/book-hubs/internal/config"
	"github.com/maabu025/book-hubs/internal/db"
	"github.com/maabu025/book-hubs/internal/handler"
	"github.com/maabu025/book-hubs/internal/repository"
	"github.com/maabu025/book-hubs/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Book Hub API
// @version 1.0
// @description Catalog browsing backend: books, auth, admin analytics (Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo and Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatalf("[mongo] index creation failed: %v", err)
	}
	cancel()

	// repos
	bookRepo := repository.NewBookRepository()
	userRepo := repository.NewUserRepository()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	bookSvc := service.NewBookService(bookRepo)
	insightsSvc := service.NewInsightsService(bookRepo)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	bookH := handler.NewBookHandler(bookSvc)
	adminH := handler.NewAdminHandler(insightsSvc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.CORSOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	authMw := handler.JWTAuth(cfg.JWTSecret)

	// =============
	// Public routes
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	r.Get("/books", bookH.List)
	r.Get("/books/genres", bookH.Genres)
	r.Get("/books/authors", bookH.Authors)
	r.Get("/books/{id}", bookH.Get)

	// ===========================
	// Routes behind JWT
	// ===========================
	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- any authenticated user ----
		r.Get("/auth/me", authH.Me)
		r.Post("/books/{id}/read", bookH.MarkRead)

		// ---- ADMIN only ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			r.Post("/books", bookH.Create)
			r.Put("/books/{id}", bookH.Update)
			r.Delete("/books/{id}", bookH.Delete)

			r.Get("/admin/insights", adminH.GetInsights)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP listening on :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
