package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/harentsoaR/clinic-admin-api/internal/models"
)

// TotalDoctors returns the number of doctor accounts.
func (h *Handler) TotalDoctors(c *gin.Context) {
	count, err := h.Doctors.Count(c.Request.Context())
	if err != nil {
		h.serverError(c, "doctor count failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalDoctors": count})
}

// TotalPatients returns the number of users with the patient role.
func (h *Handler) TotalPatients(c *gin.Context) {
	count, err := h.Users.CountByRole(c.Request.Context(), models.RolePatient)
	if err != nil {
		h.serverError(c, "patient count failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalPatients": count})
}

type DoctorOverviewEntry struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Patients  int64  `json:"patients"`
}

// DoctorOverview lists every doctor with the number of distinct patients
// they have seen; repeat visits count once. The per-doctor counts fan out
// concurrently and land in their own slot, so the doctor ordering is kept.
func (h *Handler) DoctorOverview(c *gin.Context) {
	ctx := c.Request.Context()

	doctors, err := h.Doctors.FindAll(ctx)
	if err != nil {
		h.serverError(c, "doctor listing failed", err)
		return
	}

	overview := make([]DoctorOverviewEntry, len(doctors))
	g, gctx := errgroup.WithContext(ctx)
	for i, doctor := range doctors {
		i, doctor := i, doctor // per-iteration copies; go directive predates Go 1.22 loop scoping
		g.Go(func() error {
			patients, err := h.Appointments.CountDistinctPatients(gctx, doctor.ID)
			if err != nil {
				return err
			}
			overview[i] = DoctorOverviewEntry{
				Name:      doctor.FullName(),
				Specialty: doctor.Specialty,
				Patients:  patients,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		h.serverError(c, "distinct patient count failed", err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

type PatientOverviewEntry struct {
	Name         string `json:"name"`
	Appointments int64  `json:"appointments"`
}

// PatientOverview lists every patient with their total appointment count,
// repeat visits included. Same fan-out shape as DoctorOverview.
func (h *Handler) PatientOverview(c *gin.Context) {
	ctx := c.Request.Context()

	patients, err := h.Users.FindByRole(ctx, models.RolePatient)
	if err != nil {
		h.serverError(c, "patient listing failed", err)
		return
	}

	overview := make([]PatientOverviewEntry, len(patients))
	g, gctx := errgroup.WithContext(ctx)
	for i, patient := range patients {
		i, patient := i, patient // per-iteration copies; go directive predates Go 1.22 loop scoping
		g.Go(func() error {
			appointments, err := h.Appointments.CountByPatient(gctx, patient.ID)
			if err != nil {
				return err
			}
			overview[i] = PatientOverviewEntry{
				Name:         patient.FullName(),
				Appointments: appointments,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		h.serverError(c, "appointment count failed", err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
