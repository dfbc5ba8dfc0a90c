// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"medistore/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler          *handler.UserHandler
	MedicineHandler      *handler.MedicineHandler
	OrderHandler         *handler.OrderHandler
	CheckoutHandler      *handler.CheckoutHandler
	SellerHandler        *handler.SellerHandler
	AdvertisementHandler *handler.AdvertisementHandler
	ContentHandler       *handler.ContentHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler          *handler.UserHandler
	medicineHandler      *handler.MedicineHandler
	orderHandler         *handler.OrderHandler
	checkoutHandler      *handler.CheckoutHandler
	sellerHandler        *handler.SellerHandler
	advertisementHandler *handler.AdvertisementHandler
	contentHandler       *handler.ContentHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:          params.UserHandler,
		medicineHandler:      params.MedicineHandler,
		orderHandler:         params.OrderHandler,
		checkoutHandler:      params.CheckoutHandler,
		sellerHandler:        params.SellerHandler,
		advertisementHandler: params.AdvertisementHandler,
		contentHandler:       params.ContentHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	userGroup := api.Group("/users")
	{
		userGroup.POST("", r.userHandler.RegisterUser)
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/:email", r.userHandler.GetUser)
		userGroup.PATCH("/:email/role", r.userHandler.UpdateUserRole)
	}

	medicineGroup := api.Group("/medicines")
	{
		medicineGroup.POST("", r.medicineHandler.CreateMedicine)
		medicineGroup.GET("", r.medicineHandler.ListMedicines)
		medicineGroup.GET("/banner", r.medicineHandler.ListBannerMedicines)
		medicineGroup.GET("/seller/:email", r.medicineHandler.ListMedicinesBySeller)
		medicineGroup.GET("/:id", r.medicineHandler.GetMedicine)
		medicineGroup.PUT("/:id", r.medicineHandler.UpdateMedicine)
		medicineGroup.DELETE("/:id", r.medicineHandler.DeleteMedicine)
	}

	orderGroup := api.Group("/orders")
	{
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:email", r.orderHandler.ListOrdersByCustomer)
	}

	// Payment workflow
	api.POST("/create-payment-intent", r.checkoutHandler.CreatePaymentIntent)
	api.POST("/confirm-payment", r.checkoutHandler.ConfirmPayment)

	sellerGroup := api.Group("/seller")
	{
		sellerGroup.GET("/payments/:email", r.sellerHandler.GetPaymentHistory)
		sellerGroup.GET("/payment-stats/:email", r.sellerHandler.GetPaymentStats)
	}

	adGroup := api.Group("/advertisements")
	{
		adGroup.POST("", r.advertisementHandler.CreateAdvertisement)
		adGroup.GET("", r.advertisementHandler.ListAdvertisements)
		adGroup.GET("/active/slider", r.advertisementHandler.ListActiveSlider)
		adGroup.GET("/seller/:email", r.advertisementHandler.ListAdvertisementsBySeller)
		adGroup.PUT("/:id", r.advertisementHandler.UpdateAdvertisement)
		adGroup.PATCH("/:id/status", r.advertisementHandler.UpdateAdvertisementStatus)
		adGroup.DELETE("/:id", r.advertisementHandler.DeleteAdvertisement)
	}

	// Informational content
	api.GET("/health-blogs", r.contentHandler.ListHealthBlogs)
	api.GET("/companies", r.contentHandler.ListCompanies)
	api.GET("/categories", r.contentHandler.ListCategories)
}
