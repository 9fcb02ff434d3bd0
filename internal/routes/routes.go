package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pet-shop/internal/audit"
	"github.com/BruksfildServices01/pet-shop/internal/config"
	"github.com/BruksfildServices01/pet-shop/internal/domain/access"
	"github.com/BruksfildServices01/pet-shop/internal/domain/role"
	"github.com/BruksfildServices01/pet-shop/internal/handlers"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	infraRepo "github.com/BruksfildServices01/pet-shop/internal/infra/repository"
	"github.com/BruksfildServices01/pet-shop/internal/infra/session"
	"github.com/BruksfildServices01/pet-shop/internal/middleware"
	ucAccount "github.com/BruksfildServices01/pet-shop/internal/usecase/account"
	ucBooking "github.com/BruksfildServices01/pet-shop/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/pet-shop/internal/usecase/catalog"
	"github.com/BruksfildServices01/pet-shop/internal/worker"
)

type Deps struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Tasks  worker.Submitter
	Config *config.Config
	Log    zerolog.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	log := d.Log

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// ======================================================
	// INFRA
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	serviceRepo := infraRepo.NewServiceGormRepository(d.DB)

	provider := session.NewProvider(d.Redis, session.Options{
		Secret:          cfg.JWTSecret,
		TTL:             cfg.SessionTTL,
		SuperAdminEmail: cfg.SuperAdminEmail,
	})

	auditLogger := audit.New(d.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger, d.Tasks)

	// ======================================================
	// USE CASES
	// ======================================================
	resolver := ucAccount.NewResolver(provider, userRepo, d.Tasks, log)
	assignRoleUC := ucAccount.NewAssignRole(userRepo, provider, provider, d.Tasks, auditDispatcher, log)
	listUsersUC := ucAccount.NewListUsers(userRepo)

	listServicesUC := ucBooking.NewListServices(bookingRepo)
	listCartUC := ucBooking.NewListCart(bookingRepo)
	addCartItemUC := ucBooking.NewAddCartItem(bookingRepo, cfg.ShopTimezone)
	removeCartItemUC := ucBooking.NewRemoveCartItem(bookingRepo)
	checkoutUC := ucBooking.NewCheckout(bookingRepo, auditDispatcher, log)
	createBookingUC := ucBooking.NewCreateDirectBooking(bookingRepo, auditDispatcher, cfg.ShopTimezone)
	listMyBookingsUC := ucBooking.NewListMyBookings(bookingRepo)
	listAllBookingsUC := ucBooking.NewListAllBookings(bookingRepo)
	updateStatusUC := ucBooking.NewUpdateBookingStatus(bookingRepo, auditDispatcher)

	adminListServicesUC := ucCatalog.NewListServices(serviceRepo)
	getServiceUC := ucCatalog.NewGetService(serviceRepo)
	createServiceUC := ucCatalog.NewCreateService(serviceRepo, auditDispatcher, log)
	updateServiceUC := ucCatalog.NewUpdateService(serviceRepo, auditDispatcher, log)
	deleteServiceUC := ucCatalog.NewDeleteService(serviceRepo, auditDispatcher, log)
	overviewUC := ucCatalog.NewOverview(serviceRepo, cfg.ShopTimezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(provider, int(cfg.SessionTTL.Seconds()), !cfg.IsDevelopment(), log)
	meHandler := handlers.NewMeHandler()
	userAdminHandler := handlers.NewUserAdminHandler(assignRoleUC, listUsersUC, log)
	serviceHandler := handlers.NewServiceHandler(listServicesUC, log)
	cartHandler := handlers.NewCartHandler(listCartUC, addCartItemUC, removeCartItemUC, checkoutUC, log)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, listMyBookingsUC, log)
	adminBookingHandler := handlers.NewAdminBookingHandler(listAllBookingsUC, updateStatusUC, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, log)
	adminServiceHandler := handlers.NewAdminServiceHandler(
		adminListServicesUC,
		getServiceUC,
		createServiceUC,
		updateServiceUC,
		deleteServiceUC,
		overviewUC,
		log,
	)

	signedIn := access.Authenticated()
	guard := func(req access.Requirement, h middleware.UserHandler) gin.HandlerFunc {
		return middleware.Guard(resolver, req, h)
	}

	// ======================================================
	// OPERATIONS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, "NOT_FOUND", "Route not found.")
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/services", serviceHandler.List)

		// ------------------------------
		// ACCOUNT
		// ------------------------------
		api.GET("/me", middleware.Authenticated(resolver, meHandler.GetMe))

		// ------------------------------
		// CART
		// ------------------------------
		api.GET("/cart", guard(signedIn, cartHandler.List))
		api.POST("/cart", guard(signedIn, cartHandler.Add))
		api.DELETE("/cart/:id", guard(signedIn, cartHandler.Remove))
		api.POST("/cart/checkout", guard(signedIn, cartHandler.Checkout))

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		api.POST("/bookings", guard(signedIn, bookingHandler.Create))
		api.GET("/bookings", guard(signedIn, bookingHandler.ListMine))

		// ------------------------------
		// BACK OFFICE
		// ------------------------------
		admin := api.Group("/admin")
		{
			admin.GET("/dashboard", guard(access.AdminSurface(role.AdminDashboard), adminServiceHandler.Dashboard))

			admin.GET("/services", guard(access.AdminSurface(role.ReadServices), adminServiceHandler.List))
			admin.GET("/services/:id", guard(access.AdminSurface(role.ReadServices), adminServiceHandler.Get))
			admin.POST("/services", guard(access.AdminSurface(role.WriteServices), adminServiceHandler.Create))
			admin.PUT("/services/:id", guard(access.AdminSurface(role.WriteServices), adminServiceHandler.Update))
			admin.DELETE("/services/:id", guard(access.AdminSurface(role.DeleteServices), adminServiceHandler.Delete))

			admin.GET("/users", guard(access.AdminSurface(role.ReadUsers), userAdminHandler.List))
			admin.POST("/users/role", guard(access.AdminSurface(role.SystemSettings), userAdminHandler.AssignRole))

			admin.GET("/bookings", guard(access.AdminSurface(role.ReadBookings), adminBookingHandler.List))
			admin.PATCH("/bookings/:id", guard(access.AdminSurface(role.WriteBookings), adminBookingHandler.UpdateStatus))

			admin.GET("/audit-logs", guard(access.AdminSurface(role.SystemSettings), auditLogsHandler.List))
		}
	}
}
