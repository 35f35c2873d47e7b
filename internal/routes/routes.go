package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/corteturno/corteturno/internal/config"
	"github.com/corteturno/corteturno/internal/handlers"
	infraRepo "github.com/corteturno/corteturno/internal/infra/repository"
	"github.com/corteturno/corteturno/internal/middleware"
	"github.com/corteturno/corteturno/internal/notify"
	ucAppointment "github.com/corteturno/corteturno/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	dispatcher *notify.Dispatcher,
	store notify.Store,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, dispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	listClientAppointmentsUC := ucAppointment.NewListClientAppointments(appointmentRepo)
	rescheduleUC := ucAppointment.NewRescheduleAppointment(appointmentRepo, dispatcher)
	updateStatusUC := ucAppointment.NewUpdateStatus(appointmentRepo)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, dispatcher)
	statsUC := ucAppointment.NewGetDayStats(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	onboardingHandler := handlers.NewOnboardingHandler(db)
	branchHandler := handlers.NewBranchHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	userHandler := handlers.NewUserHandler(db)
	notificationHandler := handlers.NewNotificationHandler(store)

	appointmentHandler := handlers.NewAppointmentHandler(
		availabilityUC,
		createAppointmentUC,
		listAppointmentsUC,
		rescheduleUC,
		updateStatusUC,
		cancelUC,
		statsUC,
	)

	publicHandler := handlers.NewPublicHandler(
		db,
		availabilityUC,
		createAppointmentUC,
		listClientAppointmentsUC,
		rescheduleUC,
		cancelUC,
	)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (enlace de reserva)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/branch/:branchId", publicHandler.GetBranch)
			publicAPI.GET("/services/:branchId", publicHandler.ListServices)
			publicAPI.GET("/available-times", publicHandler.AvailableTimes)
			publicAPI.POST("/book", publicHandler.Book)
			publicAPI.GET("/appointments", publicHandler.ListAppointments)
			publicAPI.PATCH("/reschedule/:appointmentId", publicHandler.Reschedule)
			publicAPI.DELETE("/cancel/:appointmentId", publicHandler.Cancel)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/onboarding/complete", onboardingHandler.Complete)

			secured.GET("/branches", branchHandler.List)
			secured.POST("/branches", branchHandler.Create)
			secured.PATCH("/branches/:id", branchHandler.Update)
			secured.DELETE("/branches/:id", branchHandler.Delete)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/users", userHandler.List)
			secured.PATCH("/users/:id", userHandler.Update)
			secured.DELETE("/users/:id", userHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/available-times", appointmentHandler.AvailableTimes)
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/stats", appointmentHandler.Stats)

			secured.GET("/notifications", notificationHandler.List)
			secured.POST("/notifications/mark-read", notificationHandler.MarkRead)
		}
	}
}
