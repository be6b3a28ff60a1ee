package main

import (
	"context"
	"fmt"
	"os"

	booking "shareit/internal/bookingService"
	"shareit/internal/config"
	item "shareit/internal/itemService"
	"shareit/internal/repository"
	request "shareit/internal/requestService"
	"shareit/internal/server"
	"shareit/internal/telemetry"
	user "shareit/internal/userService"
	"shareit/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := utils.ConfigureLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure logger: %v\n", err)
		os.Exit(1)
	}
	if mode := os.Getenv(gin.EnvGinMode); mode != "" {
		gin.SetMode(mode)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, "shareit-server", cfg.Telemetry.OTLPEndpoint, cfg.Telemetry.Insecure)
	if err != nil {
		utils.Fatal("failed to set up tracing", map[string]any{"error": err.Error()})
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			utils.Error("failed to flush traces", map[string]any{"error": err.Error()})
		}
	}()

	store, err := repository.Open(ctx, cfg.Server.DBDriver, cfg.Server.DatabaseURL)
	if err != nil {
		utils.Fatal("failed to open database", map[string]any{
			"driver": cfg.Server.DBDriver,
			"error":  err.Error(),
		})
	}
	defer store.Close()

	router := server.SetupRouter(server.Services{
		Users:    user.NewUserService(store),
		Items:    item.NewItemService(store),
		Bookings: booking.NewBookingService(store),
		Requests: request.NewRequestService(store),
	})

	utils.Info("starting shareit server", map[string]any{
		"port":   cfg.Server.Port,
		"driver": cfg.Server.DBDriver,
	})
	if err := server.ListenAndServe(":"+cfg.Server.Port, router); err != nil {
		utils.Error("server stopped with error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
