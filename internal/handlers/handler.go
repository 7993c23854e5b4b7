package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/harentsoaR/clinic-admin-api/internal/auth"
	"github.com/harentsoaR/clinic-admin-api/internal/services"
	"github.com/harentsoaR/clinic-admin-api/internal/store"
)

// Stores bundles the per-collection stores the handlers draw from.
type Stores struct {
	Doctors      store.DoctorStore
	Admins       store.AdminStore
	Users        store.UserStore
	Appointments store.AppointmentStore
}

// Handler carries the dependencies shared by every route handler.
type Handler struct {
	Doctors         store.DoctorStore
	Admins          store.AdminStore
	Users           store.UserStore
	Appointments    store.AppointmentStore
	Tokens          *auth.TokenManager
	NotificationSvc *services.NotificationService
	Logger          *zap.Logger
}

func NewHandler(stores Stores, tokens *auth.TokenManager, notificationSvc *services.NotificationService, logger *zap.Logger) *Handler {
	return &Handler{
		Doctors:         stores.Doctors,
		Admins:          stores.Admins,
		Users:           stores.Users,
		Appointments:    stores.Appointments,
		Tokens:          tokens,
		NotificationSvc: notificationSvc,
		Logger:          logger,
	}
}

// Health reports process liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// serverError logs the failure detail and answers with the generic body;
// nothing store-level leaks to the caller on read paths.
func (h *Handler) serverError(c *gin.Context, msg string, err error) {
	h.Logger.Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
