package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/configs"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/controllers"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/middlewares"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/repository"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/services"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	loyaltyRepo := repository.NewLoyaltyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Staff queue feed
	hub := ws.NewQueueHub()
	go hub.Run()

	// Services
	discountSvc := services.NewDiscountService(discountRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, discountRepo, loyaltyRepo, discountSvc, hub)
	cartSvc := services.NewCartService(db, cartRepo)
	loyaltySvc := services.NewLoyaltyService(loyaltyRepo)
	analyticsSvc := services.NewAnalyticsService(analyticsRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	menuCtrl := controllers.NewMenuController(db)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	staffCtrl := controllers.NewStaffOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(orderSvc, analyticsSvc)
	discountCtrl := controllers.NewDiscountController(discountSvc)
	cateringCtrl := controllers.NewCateringController(db)
	contactCtrl := controllers.NewContactController(db)
	paymentCtrl := controllers.NewPaymentMethodController(db)
	loyaltyCtrl := controllers.NewLoyaltyController(loyaltySvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public storefront
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/items/:id", menuCtrl.Detail)
	r.POST("/catering", cateringCtrl.Submit)
	r.POST("/contact", contactCtrl.Submit)
	r.POST("/discounts/validate", discountCtrl.Validate)

	// Cart & checkout (any logged-in user)
	u := r.Group("/", middlewares.AuthMiddleware())
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.AddItem)
		u.PATCH("/cart/items/:id", cartCtrl.UpdateItem)
		u.DELETE("/cart/items/:id", cartCtrl.RemoveItem)

		u.POST("/orders", orderCtrl.Checkout)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/orders/:id/cancel", orderCtrl.Cancel)

		u.GET("/payment-methods", paymentCtrl.List)
		u.POST("/payment-methods", paymentCtrl.Create)
		u.PATCH("/payment-methods/:id/default", paymentCtrl.SetDefault)
		u.DELETE("/payment-methods/:id", paymentCtrl.Delete)
	}

	// Profile
	profile := r.Group("/profile", middlewares.AuthMiddleware())
	{
		profile.GET("/orders", orderCtrl.ListForMe)
		profile.GET("/loyalty", loyaltyCtrl.Summary)
	}

	// Staff (staff/manager/admin)
	staff := r.Group("/staff", middlewares.AuthMiddleware(entity.RoleStaff, entity.RoleManager, entity.RoleAdmin))
	{
		staff.GET("/queue", staffCtrl.Queue)
		staff.GET("/catering", cateringCtrl.List)
		staff.GET("/catering/:id", cateringCtrl.Detail)
		staff.PATCH("/catering/:id", cateringCtrl.Update)
	}
	r.PUT("/orders/:id/status", middlewares.AuthMiddleware(entity.RoleStaff, entity.RoleManager, entity.RoleAdmin), staffCtrl.UpdateStatus)
	r.GET("/ws/queue", middlewares.AuthMiddleware(entity.RoleStaff, entity.RoleManager, entity.RoleAdmin), hub.HandleWebSocket)

	// Refunds (manager/admin)
	r.POST("/orders/:id/refund", middlewares.AuthMiddleware(entity.RoleManager, entity.RoleAdmin), adminCtrl.Refund)

	// Menu management (manager/admin)
	manage := r.Group("/manage/menu", middlewares.AuthMiddleware(entity.RoleManager, entity.RoleAdmin))
	{
		manage.POST("/items", menuCtrl.CreateItem)
		manage.PATCH("/items/:id", menuCtrl.UpdateItem)
		manage.POST("/categories", menuCtrl.CreateCategory)
	}

	// Admin only
	admin := r.Group("/admin", middlewares.AuthMiddleware(entity.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/orders", adminCtrl.ListOrders)

		admin.GET("/discounts", discountCtrl.List)
		admin.POST("/discounts", discountCtrl.Create)
		admin.PATCH("/discounts/:id", discountCtrl.Update)
		admin.DELETE("/discounts/:id", discountCtrl.Delete)

		admin.GET("/contact", contactCtrl.List)
		admin.PATCH("/contact/:id/read", contactCtrl.MarkRead)
	}
}
