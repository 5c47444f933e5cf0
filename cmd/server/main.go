package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/eventgrounds/campsite-booking/internal/config"
	"github.com/eventgrounds/campsite-booking/internal/database"
	"github.com/eventgrounds/campsite-booking/internal/handler"
	"github.com/eventgrounds/campsite-booking/internal/middleware"
	"github.com/eventgrounds/campsite-booking/internal/queue"
	"github.com/eventgrounds/campsite-booking/internal/repository"
	"github.com/eventgrounds/campsite-booking/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// nil client disables caching and rate limiting
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiter disabled")
	}

	events := repository.NewEventRepo(db)
	campgrounds := repository.NewCampgroundRepo(db)
	sites := repository.NewCampsiteRepo(db)
	reservations := repository.NewReservationRepo(db)
	cart := repository.NewCartRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	publicH := handler.NewPublicHandler(events, campgrounds, sites, reservations)
	cartH := handler.NewCartHandler(events, sites, cart, reservations)
	bookingH := handler.NewBookingHandler(reservations)
	adminH := handler.NewAdminHandler(events, campgrounds, sites, reservations)

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, publicH,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	)
	router.RegisterCustomer(e, cartH, bookingH, cfg.JWTSecret)
	router.RegisterAdmin(e, adminH, cfg.JWTSecret)

	// fulfils submitted orders; reconnects on broker failures
	go queue.StartOrderConsumer(reservations)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
