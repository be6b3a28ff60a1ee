package main

import (
	"context"
	"fmt"
	"os"

	"shareit/internal/config"
	"shareit/internal/server"
	"shareit/internal/telemetry"
	"shareit/services/gateway/client"
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

	shutdown, err := telemetry.Setup(context.Background(), "shareit-gateway", cfg.Telemetry.OTLPEndpoint, cfg.Telemetry.Insecure)
	if err != nil {
		utils.Fatal("failed to set up tracing", map[string]any{"error": err.Error()})
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			utils.Error("failed to flush traces", map[string]any{"error": err.Error()})
		}
	}()

	gw := cfg.Gateway
	serverClient := client.NewServerClient(gw.ServerURL, gw.RequestTimeout, client.BreakerSettings{
		MaxRequests:      gw.Breaker.MaxRequests,
		Interval:         gw.Breaker.Interval,
		Timeout:          gw.Breaker.Timeout,
		FailureThreshold: gw.Breaker.FailureThreshold,
	})

	router, err := server.SetupGatewayRouter(serverClient, server.GatewaySettings{
		RateLimit: gw.RateLimit,
		RateBurst: gw.RateBurst,
	})
	if err != nil {
		utils.Fatal("failed to set up gateway router", map[string]any{"error": err.Error()})
	}

	utils.Info("starting shareit gateway", map[string]any{
		"port":       gw.Port,
		"server_url": gw.ServerURL,
	})
	if err := server.ListenAndServe(":"+gw.Port, router); err != nil {
		utils.Error("gateway stopped with error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
