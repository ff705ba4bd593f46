package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetclinic-server/internal/models"
)

func newVeterinarianRouter(h *VeterinarianHandler) *gin.Engine {
	router := gin.New()
	router.DELETE("/veterinarians/:id", h.DeleteVeterinarian)
	router.GET("/veterinarians/:id/schedule", h.GetVeterinarianSchedule)
	return router
}

func TestDeleteVeterinarianBlockedBySchedule(t *testing.T) {
	db, mock := newMockDB(t)
	router := newVeterinarianRouter(NewVeterinarianHandler(db))

	mock.ExpectQuery("SELECT \\* FROM `veterinarians` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testVetID))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `appointments`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	w := performRequest(t, router, http.MethodDelete, "/veterinarians/"+testVetID, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cannot delete veterinarian with active appointments")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteVeterinarianWithoutSchedule(t *testing.T) {
	db, mock := newMockDB(t)
	router := newVeterinarianRouter(NewVeterinarianHandler(db))

	mock.ExpectQuery("SELECT \\* FROM `veterinarians` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testVetID))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `appointments`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `veterinarians`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := performRequest(t, router, http.MethodDelete, "/veterinarians/"+testVetID, nil)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVeterinarianScheduleRequiresDate(t *testing.T) {
	db, mock := newMockDB(t)
	router := newVeterinarianRouter(NewVeterinarianHandler(db))

	mock.ExpectQuery("SELECT `id` FROM `veterinarians` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testVetID))

	w := performRequest(t, router, http.MethodGet, "/veterinarians/"+testVetID+"/schedule", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "YYYY-MM-DD")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVeterinarianSchedule(t *testing.T) {
	db, mock := newMockDB(t)
	router := newVeterinarianRouter(NewVeterinarianHandler(db))

	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.Local)

	mock.ExpectQuery("SELECT `id` FROM `veterinarians` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testVetID))
	mock.ExpectQuery("SELECT \\* FROM `appointments` WHERE veterinarian_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "veterinarian_id", "appointment_date", "status"}).
			AddRow("appt-1", testVetID, day.Add(9*time.Hour), "scheduled").
			AddRow("appt-2", testVetID, day.Add(10*time.Hour), "completed"))

	w := performRequest(t, router, http.MethodGet,
		"/veterinarians/"+testVetID+"/schedule?date=2026-09-14", nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	env := decodeResponse(t, w)
	var appointments []models.Appointment
	require.NoError(t, json.Unmarshal(env.Data, &appointments))
	require.Len(t, appointments, 2)
	assert.Equal(t, "appt-1", appointments[0].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}
