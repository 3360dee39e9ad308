package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mlm-ledger/config"
	"mlm-ledger/database"
	"mlm-ledger/handlers"
	"mlm-ledger/logging"
	"mlm-ledger/middleware"
	"mlm-ledger/services"
	"mlm-ledger/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment")
	} else {
		fmt.Println("✅ .env file loaded and applied")
	}
	cfg := config.Load()

	if err := logging.InitLogger(cfg.Env == "release", cfg.LogLevel); err != nil {
		log.Fatalf("❌ Ошибка инициализации логгера: %v", err)
	}
	defer logging.Logger.Sync()

	store, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("❌ Ошибка инициализации хранилища: %v", err)
	}
	defer database.CloseDB()

	svc, err := services.New(store, cfg)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки реестра: %v", err)
	}
	h := handlers.New(svc, cfg)

	if cfg.Env == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.SetTrustedProxies(cfg.TrustedProxies)
	r.Use(middleware.SetupCORS(cfg))

	// ========== ГРУППЫ МАРШРУТОВ ==========
	api := r.Group("/api")
	{
		api.GET("/health", h.HealthHandler)
		api.GET("/plans", h.GetPlansHandler)
		api.GET("/session", h.SessionHandler)
		api.POST("/auth/register", h.RegisterHandler)
		api.POST("/auth/login", middleware.LoginRateLimit(cfg.LoginRateLimit), h.LoginHandler)
		api.POST("/auth/logout", h.LogoutHandler)
		api.POST("/auth/refresh", h.RefreshHandler)

		// Защищённые эндпоинты участника
		member := api.Group("/")
		member.Use(middleware.AuthMiddleware(cfg))
		{
			member.GET("/profile", h.ProfileHandler)
			member.GET("/transactions", h.TransactionsHandler)
			member.GET("/team/directs", h.DirectsHandler)
			member.GET("/team/count", h.TeamCountHandler)
			member.GET("/team/tree", h.TreeHandler)
			member.POST("/team/simulate-join", h.SimulateJoinHandler)
			member.GET("/export", h.ExportMemberHandler)
			member.POST("/plans/purchase", h.PurchasePlanHandler)
			member.POST("/plans/credit-roi", h.CreditROIHandler)
			member.GET("/orders", h.ListOrdersHandler)
			member.POST("/orders", h.CreateOrderHandler)
			member.POST("/orders/:id/pay", h.SimulateSuccessHandler)
			member.POST("/withdrawals", h.RequestWithdrawHandler)
			member.POST("/kyc", h.SubmitKYCHandler)
		}
	}

	// Админские API
	adminAPI := r.Group("/api/admin")
	adminAPI.Use(middleware.AuthMiddleware(cfg), middleware.AdminMiddleware(cfg))
	{
		adminAPI.GET("/members", h.AdminListMembersHandler)
		adminAPI.GET("/members/:username", h.GetMemberHandler)
		adminAPI.POST("/members/:username/settle", h.AdminSettleHandler)
		adminAPI.GET("/summary", h.AdminSummaryHandler)
		adminAPI.GET("/export/csv", h.AdminExportCSVHandler)
		adminAPI.GET("/withdrawals", h.AdminListWithdrawalsHandler)
		adminAPI.PUT("/withdrawals/:id/approve", h.AdminApproveWithdrawHandler)
		adminAPI.PUT("/withdrawals/:id/reject", h.AdminRejectWithdrawHandler)
		adminAPI.GET("/verifications", h.AdminListVerificationsHandler)
		adminAPI.PUT("/verifications/:username/approve", h.AdminApproveKYCHandler)
		adminAPI.PUT("/verifications/:username/reject", h.AdminRejectKYCHandler)
		adminAPI.POST("/plans", h.AdminCreatePlanHandler)
		adminAPI.PUT("/plans/:id", h.AdminUpdatePlanHandler)
		adminAPI.DELETE("/plans/:id", h.AdminDeletePlanHandler)
		adminAPI.POST("/reset", h.AdminResetHandler)
	}

	// Метрики Prometheus
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Баннер
	port := ":" + cfg.Port
	baseURL := "http://localhost:" + cfg.Port

	fmt.Printf("\n============================================================\n")
	fmt.Printf("   🚀 MLM Ledger – реферальный реестр (демо)\n")
	fmt.Printf("============================================================\n\n")
	fmt.Printf("   📡 API Health       %s/api/health\n", baseURL)
	fmt.Printf("   📡 Планы            %s/api/plans\n", baseURL)
	fmt.Printf("   🔐 Вход             %s/api/auth/login\n", baseURL)
	fmt.Printf("   🔐 Регистрация      %s/api/auth/register\n", baseURL)
	fmt.Printf("   ⚙️  Админка          %s/api/admin/summary\n", baseURL)
	fmt.Printf("   📈 Метрики          %s/metrics\n\n", baseURL)
	fmt.Printf("============================================================\n")
	fmt.Printf("   ⚙️  Конфигурация: порт=%s, режим=%s, хранилище=%s\n", cfg.Port, cfg.Env, cfg.StoreDriver)
	fmt.Printf("   🔒 SKIP_AUTH=%v – все защищённые маршруты открыты без токена\n", cfg.SkipAuth)
	fmt.Printf("============================================================\n")

	log.Printf("🚀 Сервер запущен на порту %s", port)
	r.Run(port)
}

// buildStore выбирает бэкенд хранилища по конфигурации.
func buildStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StoreDriver {
	case "postgres":
		if err := database.InitDB(cfg); err != nil {
			return nil, err
		}
		return storage.NewPostgresStore(database.Pool), nil
	default:
		return storage.NewFileStore(cfg.DataPath)
	}
}
