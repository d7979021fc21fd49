package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelier/internal/config"
	"hotelier/internal/database"
	"hotelier/internal/middleware"
	"hotelier/internal/modules/auth"
	"hotelier/internal/modules/catalog"
	"hotelier/internal/modules/notify"
	"hotelier/internal/modules/reservation"
	jwtsvc "hotelier/internal/pkg/jwt"
	"hotelier/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := notify.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(roomRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reservationService := reservation.NewService(reservationRepo, roomRepo, notify.NewDeskFeed(hub))
	reservationHandler := reservation.NewHandler(reservationService)

	notifyHandler := notify.NewHandler(hub)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// authenticated
		authed := v1.Group("", middleware.JWTAuth(j))
		staff := authed.Group("", middleware.StaffOnly())
		manager := authed.Group("", middleware.ManagerOnly())

		catalogHandler.RegisterRoutes(v1, manager)
		reservationHandler.RegisterRoutes(authed, staff)
		notifyHandler.RegisterRoutes(staff)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
