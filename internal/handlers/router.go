package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/harentsoaR/clinic-admin-api/internal/auth"
	"github.com/harentsoaR/clinic-admin-api/internal/middleware"
)

// NewRouter builds the gin engine with the full middleware chain and every
// route wired. Tests run requests through this same engine so the auth
// middleware is always exercised.
func NewRouter(h *Handler, tokens *auth.TokenManager, corsOrigins []string, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Public routes
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/login", h.Login)

	// Every other route requires a valid bearer token
	protected := r.Group("/")
	protected.Use(middleware.RequireAuth(tokens))
	{
		admin := protected.Group("/")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/add-doctor", h.AddDoctor)
			admin.POST("/add-admin", h.AddAdmin)
		}

		protected.GET("/profile", h.GetProfile)
		protected.PUT("/profile", h.UpdateProfile)

		protected.GET("/total-doctors", h.TotalDoctors)
		protected.GET("/total-patients", h.TotalPatients)
		protected.GET("/doctor-overview", h.DoctorOverview)
		protected.GET("/patient-overview", h.PatientOverview)

		protected.GET("/appointment/completed-cancelled", h.CompletedCancelledAppointments)
		protected.GET("/appointments/upcoming", h.UpcomingAppointments)
	}

	return r
}
