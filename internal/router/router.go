package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stpnv0/StayEscrow/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Nonce(c *ginext.Context)
	CompleteSIWE(c *ginext.Context)
	Session(c *ginext.Context)
	Logout(c *ginext.Context)
	VerifyPersonhood(c *ginext.Context)

	InitiatePay(c *ginext.Context)
	ConfirmPayment(c *ginext.Context)

	CompleteBooking(c *ginext.Context)
	GetBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ReleaseFunds(c *ginext.Context)

	StakeStatus(c *ginext.Context)
	StakeCall(c *ginext.Context)
	Stake(c *ginext.Context)
	FileDispute(c *ginext.Context)

	ListProperty(c *ginext.Context)
	GetProperties(c *ginext.Context)
	GetProperty(c *ginext.Context)
	UploadImage(c *ginext.Context)
}

func InitRouter(mode string, h Handler, sessions middleware.SessionParser, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	api.Use(middleware.Session(sessions))
	{
		// Public
		api.GET("/nonce", h.Nonce)
		api.POST("/complete-siwe", h.CompleteSIWE)
		api.GET("/get-properties", h.GetProperties)
		api.GET("/get-property/:id", h.GetProperty)
		api.GET("/get-bookings", h.GetBookings)
		api.GET("/get-booking/:id", h.GetBooking)
		api.GET("/stake-status", h.StakeStatus)
	}

	auth := api.Group("", middleware.RequireSession())
	{
		auth.GET("/session", h.Session)
		auth.POST("/logout", h.Logout)
		auth.POST("/verify", h.VerifyPersonhood)

		// Payments
		auth.POST("/initiate-pay", h.InitiatePay)
		auth.POST("/confirm-payment", h.ConfirmPayment)

		// Bookings
		auth.POST("/complete-booking", h.CompleteBooking)
		auth.POST("/cancel-booking", h.CancelBooking)
		auth.POST("/release-funds", h.ReleaseFunds)

		// Staking and disputes
		auth.GET("/stake-call", h.StakeCall)
		auth.POST("/stake", h.Stake)
		auth.POST("/file-dispute", h.FileDispute)

		// Listings
		auth.POST("/list-property", h.ListProperty)
		auth.POST("/upload-image", h.UploadImage)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
