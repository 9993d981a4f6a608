package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yeremiapane/lezzetkare/cart"
	"github.com/yeremiapane/lezzetkare/catalog"
	"github.com/yeremiapane/lezzetkare/config"
	"github.com/yeremiapane/lezzetkare/kds"
	"github.com/yeremiapane/lezzetkare/middlewares"
	"github.com/yeremiapane/lezzetkare/models"
	"github.com/yeremiapane/lezzetkare/notify"
	"github.com/yeremiapane/lezzetkare/orders"
	"github.com/yeremiapane/lezzetkare/requests"
	"github.com/yeremiapane/lezzetkare/router"
	"github.com/yeremiapane/lezzetkare/services"
	"github.com/yeremiapane/lezzetkare/store"
	"github.com/yeremiapane/lezzetkare/utils"
)

func init() {
	// Load .env di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	// Initialize DB
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	// Simpan koneksi database untuk kolaborator autentikasi
	utils.InitDB(db)
	if err := db.AutoMigrate(&models.User{}); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	// Set gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Record store + notification bus: satu sumber kebenaran untuk
	// semua terminal
	recordStore, err := store.NewGormStore(db)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to initialize record store: %v", err)
	}
	bus := notify.NewBus()

	// Setiap perubahan store disiarkan ke terminal websocket; terminal
	// polling menangkapnya lewat /sync/revision
	bus.Subscribe(func() {
		rev, err := recordStore.Revision()
		if err != nil {
			utils.ErrorLogger.Printf("read revision for broadcast: %v", err)
			return
		}
		kds.BroadcastStoreChanged(rev)
	})

	// Change monitor menangkap write dari proses lain (mis. instance
	// kedua di belakang load balancer) yang tidak lewat bus ini
	monitor := services.NewChangeMonitor(recordStore, bus)
	if ms, err := strconv.Atoi(os.Getenv("SYNC_INTERVAL_MS")); err == nil && ms > 0 {
		monitor.Interval = time.Duration(ms) * time.Millisecond
	}
	monitor.Start()
	defer monitor.Stop()

	// Domain services
	cat := catalog.New(recordStore, bus)
	carts := cart.NewManager(recordStore, bus, cat)
	gemini := services.GetGeminiService()
	orderCtl := orders.NewController(recordStore, bus, carts, gemini)
	queue := requests.NewQueue(recordStore, bus)

	// Seed menu default saat pertama kali jalan
	if _, err := cat.Items(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed menu: %v", err)
	}

	// Setup router
	r := router.SetupRouter(router.Deps{
		DB:      db,
		Store:   recordStore,
		Catalog: cat,
		Carts:   carts,
		Orders:  orderCtl,
		Queue:   queue,
		Gemini:  gemini,
	})

	// Rate limiter global (50 request per detik per IP)
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	// Run server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("LezzetKare listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
