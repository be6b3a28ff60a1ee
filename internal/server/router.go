package server

import (
	"errors"
	"net/http"

	gatewayhandler "shareit/services/gateway/handler"
	gatewayhelpers "shareit/services/gateway/helpers"
	"shareit/services/server/handler"
	"shareit/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

var errTooManyRequests = errors.New("rate limit exceeded")

// Services bundles the business services the server routes to
type Services struct {
	Users    handler.UserServiceInterface
	Items    handler.ItemServiceInterface
	Bookings handler.BookingServiceInterface
	Requests handler.RequestServiceInterface
}

// SetupRouter configures all Gin routes of the server
func SetupRouter(services Services) *gin.Engine {
	router := newEngine("server")

	userHandler := handler.NewUserHandler(services.Users)
	itemHandler := handler.NewItemHandler(services.Items)
	bookingHandler := handler.NewBookingHandler(services.Bookings)
	requestHandler := handler.NewRequestHandler(services.Requests)

	users := router.Group("/users")
	{
		users.POST("", userHandler.CreateUserHandler)
		users.GET("", userHandler.ListUsersHandler)
		users.GET("/:userId", userHandler.GetUserHandler)
		users.PATCH("/:userId", userHandler.UpdateUserHandler)
		users.DELETE("/:userId", userHandler.DeleteUserHandler)
	}

	items := router.Group("/items")
	{
		items.POST("", itemHandler.CreateItemHandler)
		items.GET("", itemHandler.ListUserItemsHandler)
		items.GET("/search", itemHandler.SearchItemsHandler)
		items.GET("/:itemId", itemHandler.GetItemHandler)
		items.PATCH("/:itemId", itemHandler.UpdateItemHandler)
		items.DELETE("/:itemId", itemHandler.DeleteItemHandler)
		items.POST("/:itemId/comment", itemHandler.AddCommentHandler)
	}

	bookings := router.Group("/bookings")
	{
		bookings.POST("", bookingHandler.CreateBookingHandler)
		bookings.GET("", bookingHandler.ListBookerBookingsHandler)
		bookings.GET("/owner", bookingHandler.ListOwnerBookingsHandler)
		bookings.GET("/:bookingId", bookingHandler.GetBookingHandler)
		bookings.PATCH("/:bookingId", bookingHandler.UpdateBookingStatusHandler)
	}

	requests := router.Group("/requests")
	{
		requests.POST("", requestHandler.CreateRequestHandler)
		requests.GET("", requestHandler.ListUserRequestsHandler)
		requests.GET("/all", requestHandler.ListOtherRequestsHandler)
		requests.GET("/:requestId", requestHandler.GetRequestHandler)
	}

	return router
}

// GatewaySettings configures the gateway's inbound rate limit
type GatewaySettings struct {
	RateLimit float64
	RateBurst int
}

// SetupGatewayRouter configures the gateway routes; every route validates and forwards to the server
func SetupGatewayRouter(forwarder gatewayhandler.Forwarder, settings GatewaySettings) (*gin.Engine, error) {
	if err := gatewayhelpers.RegisterValidators(); err != nil {
		return nil, err
	}

	router := newEngine("gateway")

	if settings.RateLimit > 0 {
		limiter := rate.NewLimiter(rate.Limit(settings.RateLimit), settings.RateBurst)
		router.Use(RateLimitMiddleware("gateway", limiter))
	}

	h := gatewayhandler.NewGatewayHandler(forwarder)

	users := router.Group("/users")
	{
		users.POST("", h.CreateUserHandler)
		users.GET("", h.ListUsersHandler)
		users.GET("/:userId", h.UserByIDHandler)
		users.PATCH("/:userId", h.UpdateUserHandler)
		users.DELETE("/:userId", h.UserByIDHandler)
	}

	items := router.Group("/items")
	{
		items.POST("", h.CreateItemHandler)
		items.GET("", h.ListUserItemsHandler)
		items.GET("/search", h.SearchItemsHandler)
		items.GET("/:itemId", h.GetItemHandler)
		items.PATCH("/:itemId", h.UpdateItemHandler)
		items.DELETE("/:itemId", h.DeleteItemHandler)
		items.POST("/:itemId/comment", h.AddCommentHandler)
	}

	bookings := router.Group("/bookings")
	{
		bookings.POST("", h.CreateBookingHandler)
		bookings.GET("", h.ListBookingsHandler)
		bookings.GET("/owner", h.ListBookingsHandler)
		bookings.GET("/:bookingId", h.GetBookingHandler)
		bookings.PATCH("/:bookingId", h.UpdateBookingStatusHandler)
	}

	requests := router.Group("/requests")
	{
		requests.POST("", h.CreateRequestHandler)
		requests.GET("", h.ListUserRequestsHandler)
		requests.GET("/all", h.ListOtherRequestsHandler)
		requests.GET("/:requestId", h.GetRequestHandler)
	}

	return router, nil
}

// newEngine builds a router with the shared middleware chain plus health and metrics endpoints
func newEngine(service string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery()) // recover from panics
	router.Use(RequestIDMiddleware)
	router.Use(TracingMiddleware(service))
	router.Use(MetricsMiddleware(service))
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/health", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"service": service}, "ok")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
