package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/lezzetkare/cart"
	"github.com/yeremiapane/lezzetkare/catalog"
	"github.com/yeremiapane/lezzetkare/controllers"
	"github.com/yeremiapane/lezzetkare/middlewares"
	"github.com/yeremiapane/lezzetkare/orders"
	"github.com/yeremiapane/lezzetkare/requests"
	"github.com/yeremiapane/lezzetkare/services"
	"github.com/yeremiapane/lezzetkare/store"
)

// Deps -> kolaborator yang router butuhkan; dirakit di main, dioper ke
// test integration tanpa perlu environment lengkap
type Deps struct {
	DB      *gorm.DB
	Store   store.Store
	Catalog *catalog.Catalog
	Carts   *cart.Manager
	Orders  *orders.Controller
	Queue   *requests.Queue
	Gemini  *services.GeminiService
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(deps.DB, deps.Store)
	menuCtrl := controllers.NewMenuController(deps.Catalog)
	cartCtrl := controllers.NewCartController(deps.Carts, deps.Orders)
	orderCtrl := controllers.NewOrderController(deps.Orders)
	requestCtrl := controllers.NewRequestController(deps.Queue)
	reportCtrl := controllers.NewReportController(deps.Orders, deps.Catalog)
	syncCtrl := controllers.NewSyncController(deps.Store)
	assistantCtrl := controllers.NewAssistantController(deps.Gemini, deps.Carts, deps.Orders, deps.Catalog)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// -- CUSTOMER TERMINAL (tanpa auth) --
	// Sinkronisasi: terminal polling cukup membandingkan revision
	r.GET("/sync/revision", syncCtrl.GetRevision)

	// Menu dengan harga efektif saat ini
	r.GET("/menu", menuCtrl.GetMenu)

	// Keranjang per meja
	r.GET("/tables/:table_id/cart", cartCtrl.GetCart)
	r.POST("/tables/:table_id/cart/items", cartCtrl.AddItem)
	r.PATCH("/tables/:table_id/cart/items/:item_id", cartCtrl.SetQuantity)
	r.POST("/tables/:table_id/cart/reorder", cartCtrl.Reorder)

	// Order lifecycle sisi customer
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.POST("/orders/:order_id/cancel", orderCtrl.CancelOrder)
	r.GET("/tables/:table_id/orders", orderCtrl.GetOrdersByTable)

	// Panggil garson / minta bill
	r.POST("/requests", requestCtrl.CreateRequest)

	// Feedback order selesai
	r.POST("/feedback", orderCtrl.CreateFeedback)

	// Garson digital
	r.POST("/assistant/chat", assistantCtrl.Chat)
	r.GET("/tables/:table_id/assistant/tip", assistantCtrl.Advise)

	// ----------------------------------------------------------------
	//                      STAFF ROUTES
	// ----------------------------------------------------------------
	staff := r.Group("/staff")
	staff.Use(middlewares.AuthMiddleware(), middlewares.StaffOnly())
	{
		staff.GET("/profile", userCtrl.Profile)
		staff.POST("/logout", userCtrl.Logout)

		// Dashboard order + KDS
		staff.GET("/orders", orderCtrl.GetAllOrders)
		staff.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

		// Antrian permintaan meja
		staff.GET("/requests", requestCtrl.GetUnresolvedRequests)
		staff.POST("/requests/:request_id/resolve", requestCtrl.ResolveRequest)

		// Catalog management
		staff.POST("/menu", menuCtrl.SaveMenuItem)
		staff.DELETE("/menu/:item_id", menuCtrl.DeleteMenuItem)
		staff.PUT("/menu/:item_id/price", menuCtrl.SetPrice)
		staff.PUT("/menu/:item_id/discount", menuCtrl.SetDiscount)
		staff.GET("/discounts", menuCtrl.GetDiscounts)
		staff.POST("/menu/:item_id/toggle", menuCtrl.ToggleAvailability)

		// Feedback masuk
		staff.GET("/feedback", orderCtrl.GetFeedback)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		admin.GET("/reports/daily", reportCtrl.GetDailyReport)
		admin.GET("/activity", userCtrl.GetActivityLog)
	}

	// WebSocket: staff/kitchen wajib token lewat query, customer bebas
	ws := r.Group("/ws")
	ws.Use(middlewares.WebSocketAuthMiddleware())
	{
		ws.GET("/staff", controllers.HandleWebSocket)
	}
	r.GET("/ws/customer", controllers.HandleWebSocket)

	return r
}
