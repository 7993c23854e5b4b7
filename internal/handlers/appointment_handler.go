package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/clinic-admin-api/internal/models"
)

// AppointmentView is an appointment with the display names its doctor and
// patient references resolve to.
type AppointmentView struct {
	ID          primitive.ObjectID `json:"id"`
	DoctorID    primitive.ObjectID `json:"doctorId"`
	PatientID   primitive.ObjectID `json:"patientId"`
	DoctorName  string             `json:"doctorName"`
	PatientName string             `json:"patientName"`
	Date        time.Time          `json:"date"`
	Time        string             `json:"time"`
	Status      string             `json:"status"`
}

// CompletedCancelledAppointments lists the appointment history: completed
// and cancelled appointments, most recent date first. No pagination.
func (h *Handler) CompletedCancelledAppointments(c *gin.Context) {
	appointments, err := h.Appointments.FindByStatuses(c.Request.Context(),
		models.StatusCompleted, models.StatusCancelled)
	if err != nil {
		h.serverError(c, "appointment history query failed", err)
		return
	}
	h.respondWithNames(c, appointments)
}

// UpcomingAppointments lists scheduled appointments dated today or later,
// ordered by (date, time). "Today" starts at the server's local midnight, so
// appointments later today are included.
func (h *Handler) UpcomingAppointments(c *gin.Context) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	appointments, err := h.Appointments.FindScheduledSince(c.Request.Context(), midnight)
	if err != nil {
		h.serverError(c, "upcoming appointments query failed", err)
		return
	}
	h.respondWithNames(c, appointments)
}

// respondWithNames joins doctor and patient display names into the listing
// with one read per collection. The store guarantees referents exist; a miss
// renders an empty name rather than failing the listing.
func (h *Handler) respondWithNames(c *gin.Context, appointments []models.Appointment) {
	ctx := c.Request.Context()

	doctors, err := h.Doctors.FindAll(ctx)
	if err != nil {
		h.serverError(c, "doctor listing failed", err)
		return
	}
	patients, err := h.Users.FindByRole(ctx, models.RolePatient)
	if err != nil {
		h.serverError(c, "patient listing failed", err)
		return
	}

	doctorNames := make(map[primitive.ObjectID]string, len(doctors))
	for _, d := range doctors {
		doctorNames[d.ID] = d.FullName()
	}
	patientNames := make(map[primitive.ObjectID]string, len(patients))
	for _, p := range patients {
		patientNames[p.ID] = p.FullName()
	}

	views := make([]AppointmentView, len(appointments))
	for i, apt := range appointments {
		views[i] = AppointmentView{
			ID:          apt.ID,
			DoctorID:    apt.DoctorID,
			PatientID:   apt.PatientID,
			DoctorName:  doctorNames[apt.DoctorID],
			PatientName: patientNames[apt.PatientID],
			Date:        apt.Date,
			Time:        apt.Time,
			Status:      apt.Status,
		}
	}

	c.JSON(http.StatusOK, views)
}
