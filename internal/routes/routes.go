package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/sportivox/sportivox-api/internal/audit"
	"github.com/sportivox/sportivox-api/internal/cache"
	"github.com/sportivox/sportivox-api/internal/config"
	"github.com/sportivox/sportivox-api/internal/handlers"
	infraRepo "github.com/sportivox/sportivox-api/internal/infra/repository"
	"github.com/sportivox/sportivox-api/internal/middleware"
	"github.com/sportivox/sportivox-api/internal/payments"
	ucbooking "github.com/sportivox/sportivox-api/internal/usecase/booking"
	ucmember "github.com/sportivox/sportivox-api/internal/usecase/member"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	couponCache := cache.NewCouponCache(rdb)
	gateway := payments.NewStripeGateway(cfg.StripeSecretKey)

	// ======================================================
	// USE CASES — BOOKING LIFECYCLE
	// ======================================================
	createBookingUC := ucbooking.NewCreateBooking(bookingRepo, auditDispatcher)
	listBookingsUC := ucbooking.NewListBookings(bookingRepo)
	cancelBookingUC := ucbooking.NewCancelBooking(bookingRepo, auditDispatcher)
	approveBookingUC := ucbooking.NewApproveBooking(bookingRepo, auditDispatcher)
	markPaidUC := ucbooking.NewMarkBookingPaid(bookingRepo, auditDispatcher)

	listMembersUC := ucmember.NewListMembers(bookingRepo)
	deleteMemberUC := ucmember.NewDeleteMember(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listBookingsUC,
		cancelBookingUC,
		approveBookingUC,
		markPaidUC,
	)
	memberHandler := handlers.NewMemberHandler(listMembersUC, deleteMemberUC)
	paymentHandler := handlers.NewPaymentHandler(db, gateway, auditDispatcher)

	userHandler := handlers.NewUserHandler(db, auditDispatcher)
	courtHandler := handlers.NewCourtHandler(db)
	couponHandler := handlers.NewCouponHandler(db, couponCache)
	announcementHandler := handlers.NewAnnouncementHandler(db)
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

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		api.POST("/bookings", bookingHandler.Create)
		api.GET("/bookings", bookingHandler.List)
		api.DELETE("/bookings/:id", bookingHandler.Cancel)
		api.PUT("/bookings/approve/:id", bookingHandler.Approve)
		api.PATCH("/bookings/payment/:id", bookingHandler.MarkPaid)

		// ------------------------------
		// PAYMENTS
		// ------------------------------
		api.POST("/create-payment-intent", paymentHandler.CreateIntent)
		api.POST("/payments", paymentHandler.Record)
		api.GET("/payments", paymentHandler.List)

		// ------------------------------
		// MEMBERS (derived view)
		// ------------------------------
		api.GET("/members", memberHandler.List)
		api.DELETE("/members/:email", memberHandler.Delete)

		// ------------------------------
		// USERS
		// ------------------------------
		api.POST("/users", userHandler.Create)
		api.GET("/users", userHandler.List)
		api.PATCH("/users/role/:email", userHandler.UpdateRole)
		api.DELETE("/users/:email", userHandler.Delete)

		// ------------------------------
		// COURTS
		// ------------------------------
		api.GET("/courts", courtHandler.List)
		api.POST("/courts", courtHandler.Create)
		api.PUT("/courts/:id", courtHandler.Update)
		api.DELETE("/courts/:id", courtHandler.Delete)

		// ------------------------------
		// COUPONS
		// ------------------------------
		api.GET("/coupons", couponHandler.GetByCode)
		api.GET("/all_coupons", couponHandler.ListAll)
		api.POST("/coupons", couponHandler.Create)
		api.PATCH("/coupons/:id", couponHandler.Update)
		api.DELETE("/coupons/:id", couponHandler.Delete)

		// ------------------------------
		// ANNOUNCEMENTS
		// ------------------------------
		api.GET("/announcements", announcementHandler.List)
		api.POST("/announcements", announcementHandler.Create)
		api.PATCH("/announcements/:id", announcementHandler.Update)
		api.DELETE("/announcements/:id", announcementHandler.Delete)

		// ------------------------------
		// SECURED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
