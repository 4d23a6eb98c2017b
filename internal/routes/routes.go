package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/winespa/spa-scheduler/internal/audit"
	"github.com/winespa/spa-scheduler/internal/config"
	"github.com/winespa/spa-scheduler/internal/handlers"
	infraRepo "github.com/winespa/spa-scheduler/internal/infra/repository"
	"github.com/winespa/spa-scheduler/internal/middleware"
	"github.com/winespa/spa-scheduler/internal/notify"
	"github.com/winespa/spa-scheduler/internal/recovery"
	"github.com/winespa/spa-scheduler/internal/storage"
	ucAppointment "github.com/winespa/spa-scheduler/internal/usecase/appointment"
	ucNovelty "github.com/winespa/spa-scheduler/internal/usecase/novelty"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifyDispatcher := notify.NewDispatcher(notify.NewSMTPNotifier(cfg))
	recoveryStore := recovery.NewStore(rdb)
	uploader := storage.NewUploader(cfg)

	window := cfg.Schedule

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBook(scheduleRepo, window, auditDispatcher)
	rescheduleUC := ucAppointment.NewReschedule(scheduleRepo, window, auditDispatcher)
	transitionUC := ucAppointment.NewTransition(scheduleRepo, auditDispatcher)
	listByDateUC := ucAppointment.NewListByDate(scheduleRepo)
	listByMonthUC := ucAppointment.NewListByMonth(scheduleRepo)
	availabilityUC := ucAppointment.NewGetAvailability(scheduleRepo, window)

	// ======================================================
	// USE CASES — NOVELTIES
	// ======================================================
	cascadeUC := ucNovelty.NewCascade(scheduleRepo, notifyDispatcher)
	createNoveltyUC := ucNovelty.NewCreate(scheduleRepo, window, cascadeUC, auditDispatcher)
	annulNoveltyUC := ucNovelty.NewAnnul(scheduleRepo, cascadeUC, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, recoveryStore, notifyDispatcher)
	clientHandler := handlers.NewClientHandler(db, auditDispatcher)
	staffHandler := handlers.NewStaffHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	supplyHandler := handlers.NewSupplyHandler(db, auditDispatcher)
	supplierHandler := handlers.NewSupplierHandler(db, auditDispatcher)
	purchaseHandler := handlers.NewPurchaseHandler(db, auditDispatcher)
	saleHandler := handlers.NewSaleHandler(db, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		scheduleRepo,
		bookUC,
		rescheduleUC,
		transitionUC,
		listByDateUC,
		listByMonthUC,
		availabilityUC,
	)

	noveltyHandler := handlers.NewNoveltyHandler(
		scheduleRepo,
		createNoveltyUC,
		annulNoveltyUC,
		uploader,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/recovery", authHandler.RequestRecovery)
		api.POST("/auth/reset-password", authHandler.ResetPassword)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", authHandler.Me)

			// ------------------------------
			// CLIENTES
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.PATCH("/clients/:id/deactivate", clientHandler.Deactivate)

			// ------------------------------
			// MANICURISTAS
			// ------------------------------
			secured.GET("/staff", staffHandler.List)
			secured.POST("/staff", staffHandler.Create)
			secured.GET("/staff/:id", staffHandler.Get)
			secured.PUT("/staff/:id", staffHandler.Update)
			secured.PATCH("/staff/:id/status", staffHandler.SetStatus)

			// ------------------------------
			// SERVICIOS
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.PATCH("/services/:id/status", serviceHandler.SetStatus)

			// ------------------------------
			// CITAS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Book)
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.GET("/appointments/availability", appointmentHandler.Availability)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PUT("/appointments/:id", appointmentHandler.Reschedule)
			secured.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)

			// ------------------------------
			// NOVEDADES
			// ------------------------------
			secured.GET("/novelties", noveltyHandler.List)
			secured.POST("/novelties", noveltyHandler.Create)
			secured.GET("/novelties/:id", noveltyHandler.Get)
			secured.PATCH("/novelties/:id/annul", noveltyHandler.Annul)

			// ------------------------------
			// VENTAS
			// ------------------------------
			secured.GET("/sales", saleHandler.List)
			secured.GET("/sales/:id", saleHandler.Get)
			secured.PATCH("/sales/:id/pay", saleHandler.Pay)

			// ------------------------------
			// INVENTARIO
			// ------------------------------
			secured.GET("/supplies", supplyHandler.List)
			secured.POST("/supplies", supplyHandler.Create)
			secured.GET("/supplies/:id", supplyHandler.Get)
			secured.PUT("/supplies/:id", supplyHandler.Update)

			secured.GET("/suppliers", supplierHandler.List)
			secured.POST("/suppliers", supplierHandler.Create)
			secured.GET("/suppliers/:id", supplierHandler.Get)
			secured.PUT("/suppliers/:id", supplierHandler.Update)

			secured.GET("/purchases", purchaseHandler.List)
			secured.POST("/purchases", purchaseHandler.Create)
			secured.GET("/purchases/:id", purchaseHandler.Get)

			// ------------------------------
			// AUDITORÍA
			// ------------------------------
			secured.GET("/audit-logs", middleware.RequireRole("admin"), auditLogsHandler.List)
		}
	}
}
