package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reservations/internal/auth"
	"reservations/internal/common"
	"reservations/internal/env"
	"reservations/internal/v0/menu"
	"reservations/internal/v0/reservation"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// The database location is the one mandatory setting
	dbPath := env.GetEnv(env.EnvDatabasePath, "")
	if dbPath == "" {
		log.Fatalf("%s is missing in environment variables", env.EnvDatabasePath)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Enable WAL mode (better concurrent performance)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		log.Printf("Warning: Failed to enable WAL mode: %v", err)
	}

	// Reservation-window policy, hoisted out of the old page scripts
	policy := reservation.DefaultPolicy()
	policy.OpenHour = env.GetInt(env.EnvOpenHour, policy.OpenHour)
	policy.CloseHour = env.GetInt(env.EnvCloseHour, policy.CloseHour)
	policy.CloseMinute = env.GetInt(env.EnvCloseMinute, policy.CloseMinute)
	policy.EnforceWindowOnSubmit = env.GetBool(env.EnvEnforceWindow, policy.EnforceWindowOnSubmit)
	policy.SeasonStart = env.GetDate(env.EnvSeasonStart)

	// Stores
	menuRepo := menu.NewRepository(db)
	reservationRepo := reservation.NewRepository(db)

	// Services and handlers
	reservationSvc := reservation.NewService(menuRepo, reservationRepo, policy, reservation.SystemClock())
	menuHandler := menu.NewHandler(menuRepo)
	reservationHandler := reservation.NewHandler(reservationSvc, reservationRepo)

	// Admin gate
	authMiddleware := auth.NewMiddleware(env.GetEnv(env.EnvAdminKey, auth.DefaultAdminKey))

	router := gin.Default()

	api := router.Group("/api")
	common.RegisterRoutes(api)
	menu.RegisterRoutes(api, menuHandler, authMiddleware)
	reservation.RegisterRoutes(api, reservationHandler, authMiddleware)

	srv := &http.Server{
		Addr:    env.GetEnv(env.EnvListenAddr, ":9238"),
		Handler: router,
	}

	// Graceful shutdown handling
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

/*
This project is the backend API for a seasonal Ramadan pre-reservation system: daily iftar menus and dinner bookings.
Reservations API Copyright (C) 2025
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
