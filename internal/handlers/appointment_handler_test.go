package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/clinic-admin-api/internal/handlers"
	"github.com/harentsoaR/clinic-admin-api/internal/models"
)

func TestCompletedCancelledAppointments(t *testing.T) {
	e := newTestEnv(t)
	token := e.tokenFor(t, primitive.NewObjectID().Hex(), models.RoleAdmin)

	grace := e.seedDoctor(t, "Grace", "Harper", "Orthodontics")
	pia := e.seedPatient(t, "Pia", "North")

	e.seedAppointment(grace.ID, pia.ID, date(2026, 2, 3), "09:00", models.StatusCompleted)
	e.seedAppointment(grace.ID, pia.ID, date(2026, 4, 1), "10:00", models.StatusCancelled)
	e.seedAppointment(grace.ID, pia.ID, date(2026, 3, 1), "11:00", models.StatusScheduled)

	w := e.request(t, http.MethodGet, "/appointment/completed-cancelled", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var views []handlers.AppointmentView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 2, "scheduled appointments must be excluded")

	// Most recent first, display names joined in.
	assert.Equal(t, models.StatusCancelled, views[0].Status)
	assert.Equal(t, models.StatusCompleted, views[1].Status)
	for i := 1; i < len(views); i++ {
		assert.False(t, views[i-1].Date.Before(views[i].Date), "dates must be non-increasing")
	}
	for _, v := range views {
		assert.NotEqual(t, models.StatusScheduled, v.Status)
		assert.Equal(t, "Grace Harper", v.DoctorName)
		assert.Equal(t, "Pia North", v.PatientName)
	}
}

func TestUpcomingAppointments(t *testing.T) {
	e := newTestEnv(t)
	token := e.tokenFor(t, primitive.NewObjectID().Hex(), models.RoleAdmin)

	grace := e.seedDoctor(t, "Grace", "Harper", "Orthodontics")
	pia := e.seedPatient(t, "Pia", "North")

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	e.seedAppointment(grace.ID, pia.ID, today.AddDate(0, 0, -1), "09:00", models.StatusScheduled) // past
	e.seedAppointment(grace.ID, pia.ID, today, "14:00", models.StatusScheduled)                   // today counts as upcoming
	e.seedAppointment(grace.ID, pia.ID, today.AddDate(0, 0, 2), "08:00", models.StatusScheduled)
	e.seedAppointment(grace.ID, pia.ID, today.AddDate(0, 0, 2), "07:30", models.StatusScheduled)
	e.seedAppointment(grace.ID, pia.ID, today.AddDate(0, 0, 1), "10:00", models.StatusCompleted) // wrong status

	w := e.request(t, http.MethodGet, "/appointments/upcoming", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var views []handlers.AppointmentView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 3)

	assert.True(t, views[0].Date.Equal(today), "today's appointment comes first")
	assert.Equal(t, "14:00", views[0].Time)
	assert.Equal(t, "07:30", views[1].Time)
	assert.Equal(t, "08:00", views[2].Time)

	for i := 1; i < len(views); i++ {
		prev, cur := views[i-1], views[i]
		assert.False(t, cur.Date.Before(prev.Date), "dates must be non-decreasing")
		if cur.Date.Equal(prev.Date) {
			assert.GreaterOrEqual(t, cur.Time, prev.Time, "same-day order is by time")
		}
	}
	for _, v := range views {
		assert.Equal(t, models.StatusScheduled, v.Status)
		assert.False(t, v.Date.Before(today), "past appointments must be excluded")
		assert.Equal(t, "Grace Harper", v.DoctorName)
		assert.Equal(t, "Pia North", v.PatientName)
	}
}

func TestUpcomingAppointmentsEmpty(t *testing.T) {
	e := newTestEnv(t)
	token := e.tokenFor(t, primitive.NewObjectID().Hex(), models.RoleAdmin)

	w := e.request(t, http.MethodGet, "/appointments/upcoming", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestAppointmentListingStoreFailure(t *testing.T) {
	e := newTestEnv(t)
	token := e.tokenFor(t, primitive.NewObjectID().Hex(), models.RoleAdmin)
	e.appointments.err = errors.New("network unreachable")

	w := e.request(t, http.MethodGet, "/appointment/completed-cancelled", token, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}
