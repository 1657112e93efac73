package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/josemtz/hotel-reservation/internal/booking"
	"github.com/josemtz/hotel-reservation/internal/config"
	"github.com/josemtz/hotel-reservation/internal/database"
	"github.com/josemtz/hotel-reservation/internal/handler"
	"github.com/josemtz/hotel-reservation/internal/middleware"
	"github.com/josemtz/hotel-reservation/internal/queue"
	"github.com/josemtz/hotel-reservation/internal/repository"
	"github.com/josemtz/hotel-reservation/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client degrades the rate limiter and the
	// catalog cache to pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting and response cache disabled")
	}

	customers := repository.NewCustomerRepo(db)
	employees := repository.NewEmployeeRepo(db)
	tokens := repository.NewTokenRepo(db)
	rooms := repository.NewRoomRepo(db)
	services := repository.NewServiceRepo(db)
	reservations := repository.NewReservationRepo(db)
	requests := repository.NewServiceReservationRepo(db)
	payments := repository.NewPaymentRepo(db)

	gateway := repository.NewBookingGateway(db, rooms)
	desk := booking.NewDesk(gateway, gateway, gateway)

	authH := handler.NewAuthHandler(cfg, customers, employees, tokens)
	roomH := handler.NewRoomHandler(rooms)
	serviceH := handler.NewServiceHandler(services)
	reservationH := handler.NewReservationHandler(cfg, customers, rooms, services, reservations, desk)
	requestH := handler.NewServiceReservationHandler(customers, services, requests, desk)
	staffH := handler.NewStaffHandler(cfg, employees, customers, payments)

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, roomH, serviceH, cache)
	router.RegisterGuest(e, reservationH, requestH, cfg.JWTSecret)
	router.RegisterStaff(e, roomH, serviceH, reservationH, staffH, cfg.JWTSecret)

	// Confirmation log consumer; reconnects on its own until shutdown.
	go queue.StartReservationConsumer(cfg.AMQPURL)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
