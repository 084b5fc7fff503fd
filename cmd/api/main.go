package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-ricemill/internal/handler"
	"go-ricemill/internal/middleware"
	"go-ricemill/internal/model"
	"go-ricemill/internal/repository"
	"go-ricemill/internal/scheduler"
	"go-ricemill/internal/service"
	"go-ricemill/internal/ws"
	"go-ricemill/pkg/database"
	"go-ricemill/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	zlog := logger.Must(logger.New())
	defer zlog.Sync()

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (use a dedicated migration tool in production)
	db.AutoMigrate(
		&model.User{}, &model.Privilege{}, &model.Role{},
		&model.Dealer{}, &model.Godown{}, &model.Paddy{}, &model.Rice{},
		&model.DealerOrder{}, &model.Invoice{}, &model.Sale{}, &model.Payment{},
		&model.Counter{},
	)

	// 3. Seed default privileges, roles, and admin user
	seedPrivilegesRolesAndAdmin(db, zlog)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	privilegeRepo := repository.NewPrivilegeRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	dealerRepo := repository.NewDealerRepo(db)
	godownRepo := repository.NewGodownRepo(db)
	paddyRepo := repository.NewPaddyRepo(db)
	riceRepo := repository.NewRiceRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	invoiceRepo := repository.NewInvoiceRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	counterRepo := repository.NewCounterRepo(db)

	authService := service.NewAuthService(userRepo, dealerRepo, roleRepo, privilegeRepo, wsHub)
	dealerService := service.NewDealerService(dealerRepo, orderRepo, invoiceRepo, counterRepo)
	godownService := service.NewGodownService(godownRepo, riceRepo, paddyRepo)
	intakeService := service.NewIntakeService(paddyRepo, wsHub)
	stockService := service.NewStockService(riceRepo, godownRepo, wsHub)
	orderService := service.NewOrderService(orderRepo, dealerRepo, wsHub)
	billingService := service.NewBillingService(invoiceRepo, paymentRepo, saleRepo, dealerRepo, orderRepo, counterRepo, wsHub)
	saleService := service.NewSaleService(saleRepo)
	reportService := service.NewReportService(riceRepo, paddyRepo, godownRepo, saleRepo)

	authHandler := handler.NewAuthHandler(authService)
	dealerHandler := handler.NewDealerHandler(dealerService, logger.Named(zlog, "dealer"))
	godownHandler := handler.NewGodownHandler(godownService, logger.Named(zlog, "godown"))
	paddyHandler := handler.NewPaddyHandler(intakeService, logger.Named(zlog, "paddy"))
	riceHandler := handler.NewRiceHandler(stockService, logger.Named(zlog, "rice"))
	orderHandler := handler.NewOrderHandler(orderService, logger.Named(zlog, "order"))
	billingHandler := handler.NewBillingHandler(billingService, saleService, logger.Named(zlog, "billing"))
	reportHandler := handler.NewReportHandler(reportService, logger.Named(zlog, "report"))

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Rice Mill Operations v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New()) // Request logging
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/dealer/register", authHandler.DealerRegister)
	auth.Post("/dealer/login", authHandler.DealerLogin)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/heartbeat", middleware.RequireAuth(userRepo), authHandler.Heartbeat)
	auth.Get("/me", middleware.RequireAuth(userRepo), authHandler.Me)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Dealer management (admin)
	protected.Get("/dealers", middleware.RequirePrivilege("dealer:view"), dealerHandler.GetDealers)
	protected.Post("/dealers", middleware.RequirePrivilege("dealer:create"), dealerHandler.CreateDealer)
	protected.Put("/dealers/:id", middleware.RequirePrivilege("dealer:update"), dealerHandler.UpdateDealer)
	protected.Delete("/dealers/:id", middleware.RequirePrivilege("dealer:disable"), dealerHandler.DisableDealer)
	protected.Get("/dealers/:id/overview", middleware.RequirePrivilege("dealer:view"), dealerHandler.GetDealerOverview)

	// Godowns
	protected.Get("/godowns", middleware.RequirePrivilege("godown:view"), godownHandler.GetGodowns)
	protected.Post("/godowns", middleware.RequirePrivilege("godown:create"), godownHandler.CreateGodown)
	protected.Put("/godowns/:id", middleware.RequirePrivilege("godown:update"), godownHandler.UpdateGodown)
	protected.Get("/godowns/:id", middleware.RequirePrivilege("godown:view"), godownHandler.GetGodownDetails)

	// Paddy intake
	protected.Get("/paddy", middleware.RequirePrivilege("paddy:view"), paddyHandler.GetIntakes)
	protected.Post("/paddy", middleware.RequirePrivilege("paddy:create"), paddyHandler.RecordIntake)
	protected.Get("/paddy/summary", middleware.RequirePrivilege("paddy:view"), paddyHandler.GetStockSummary)

	// Rice stock
	protected.Get("/rice", middleware.RequirePrivilege("rice:view"), riceHandler.GetRice)
	protected.Post("/rice", middleware.RequirePrivilege("rice:create"), riceHandler.CreateRice)
	protected.Put("/rice/:id", middleware.RequirePrivilege("rice:update"), riceHandler.UpdateRice)
	protected.Post("/rice/deduct", middleware.RequirePrivilege("rice:update"), riceHandler.DeductStock)
	protected.Get("/rice/summary", middleware.RequirePrivilege("rice:view"), riceHandler.GetStockSummary)

	// Dealer orders (admin side)
	protected.Get("/orders", middleware.RequirePrivilege("order:view"), orderHandler.GetOrders)
	protected.Post("/orders/:id/approve", middleware.RequirePrivilege("order:approve"), orderHandler.ApproveOrder)
	protected.Put("/orders/:id/status", middleware.RequirePrivilege("order:update_status"), orderHandler.SetOrderStatus)

	// Dealer portal
	protected.Post("/dealer/orders", middleware.RequirePrivilege("order:place"), orderHandler.PlaceOrder)
	protected.Get("/dealer/orders", middleware.RequirePrivilege("order:view_own"), orderHandler.GetMyOrders)
	protected.Get("/dealer/invoices", middleware.RequirePrivilege("invoice:view_own"), billingHandler.GetMyInvoices)
	protected.Get("/dealer/analytics", middleware.RequirePrivilege("analytics:view_own"), orderHandler.GetMyAnalytics)

	// Invoices & payments
	protected.Get("/invoices", middleware.RequirePrivilege("invoice:view"), billingHandler.GetInvoices)
	protected.Post("/invoices", middleware.RequirePrivilege("invoice:create"), billingHandler.CreateInvoice)
	protected.Get("/payments", middleware.RequirePrivilege("payment:view"), billingHandler.GetPayments)
	protected.Post("/payments", middleware.RequirePrivilege("payment:create"), billingHandler.RecordPayment)
	protected.Get("/payments/summary", middleware.RequirePrivilege("payment:view"), billingHandler.GetPaymentSummary)
	protected.Get("/payments/ledger", middleware.RequirePrivilege("payment:view"), billingHandler.GetCustomerLedger)

	// Direct sales
	protected.Get("/sales", middleware.RequirePrivilege("sale:view"), billingHandler.GetSales)
	protected.Get("/sales/recent", middleware.RequirePrivilege("sale:view"), billingHandler.GetRecentSales)
	protected.Post("/sales", middleware.RequirePrivilege("sale:create"), billingHandler.CreateSale)
	protected.Put("/sales/:id", middleware.RequirePrivilege("sale:update"), billingHandler.UpdateSale)

	// Reports
	protected.Get("/reports/dashboard", middleware.RequirePrivilege("report:view"), reportHandler.GetDashboard)
	protected.Get("/reports/alerts", middleware.RequirePrivilege("report:view"), reportHandler.GetAlerts)

	// Roles & privileges
	protected.Get("/roles", func(c *fiber.Ctx) error {
		roles, err := roleRepo.FindAll()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch roles"})
		}
		return c.JSON(roles)
	})
	protected.Get("/privileges", func(c *fiber.Ctx) error {
		privileges, err := privilegeRepo.FindAll()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch privileges"})
		}
		return c.JSON(privileges)
	})

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Scheduler (periodic stock/capacity alert scan)
	sched := scheduler.NewScheduler(reportService, wsHub, logger.Named(zlog, "scheduler"))
	sched.Start()
	defer sched.Stop()

	// 9. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server exited")
}

// seedPrivilegesRolesAndAdmin creates default privileges, roles, and admin user if they don't exist
func seedPrivilegesRolesAndAdmin(db *gorm.DB, zlog *zap.Logger) {
	privilegeRepo := repository.NewPrivilegeRepo(db)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	if err := privilegeRepo.SeedDefaults(); err != nil {
		zlog.Warn("failed to seed privileges", zap.Error(err))
	}

	if err := roleRepo.SeedDefaults(); err != nil {
		zlog.Warn("failed to seed roles", zap.Error(err))
	}

	allPrivileges, _ := privilegeRepo.FindAll()

	// ADMIN gets ALL privileges
	adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
	if err == nil && len(adminRole.Privileges) == 0 {
		db.Model(&adminRole).Association("Privileges").Replace(allPrivileges)
		zlog.Info("ADMIN role assigned all privileges")
	}

	// DEALER gets the dealer-portal subset
	dealerRole, err := roleRepo.FindByCode(model.RoleDealer)
	if err == nil && len(dealerRole.Privileges) == 0 {
		dealerPrivileges, err := privilegeRepo.FindByCodes(model.DealerPrivilegeCodes)
		if err != nil {
			zlog.Warn("failed to load dealer privileges", zap.Error(err))
		} else {
			db.Model(&dealerRole).Association("Privileges").Replace(dealerPrivileges)
			zlog.Info("DEALER role assigned portal privileges")
		}
	}

	// Create default admin user
	if _, err := userRepo.FindByEmail("admin@example.com"); err != nil {
		adminRole, _ := roleRepo.FindByCode(model.RoleAdmin)

		admin := &model.User{
			Email:       "admin@example.com",
			FullName:    "Mill Administrator",
			PhoneNumber: "",
			RoleID:      &adminRole.ID,
			IsActive:    true,
			Privileges:  adminRole.Privileges,
		}
		admin.CreatedBy = "system"
		admin.UpdatedBy = "system"

		if err := admin.SetPassword("admin123"); err != nil {
			zlog.Warn("failed to hash admin password", zap.Error(err))
			return
		}

		if err := userRepo.Create(admin); err != nil {
			zlog.Warn("failed to create admin user", zap.Error(err))
		} else {
			zlog.Info("admin user created", zap.String("email", "admin@example.com"))
		}
	}
}
