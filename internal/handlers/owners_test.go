package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetclinic-server/internal/models"
)

func newOwnerRouter(h *OwnerHandler) *gin.Engine {
	router := gin.New()
	router.POST("/owners", h.CreateOwner)
	router.DELETE("/owners/:id", h.DeleteOwner)
	return router
}

func TestCreateOwner(t *testing.T) {
	db, mock := newMockDB(t)
	router := newOwnerRouter(NewOwnerHandler(db))

	mock.ExpectQuery("SELECT \\* FROM `owners` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `owners`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := performRequest(t, router, http.MethodPost, "/owners", map[string]any{
		"firstName": "Jordan",
		"lastName":  "Reyes",
		"email":     "jordan@example.com",
		"phone":     "555-0101",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	env := decodeResponse(t, w)
	var owner models.Owner
	require.NoError(t, json.Unmarshal(env.Data, &owner))
	assert.Equal(t, "jordan@example.com", owner.Email)
	assert.NotEmpty(t, owner.ID, "id is assigned before insert")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOwnerDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	router := newOwnerRouter(NewOwnerHandler(db))

	mock.ExpectQuery("SELECT \\* FROM `owners` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow("owner-1", "jordan@example.com"))

	w := performRequest(t, router, http.MethodPost, "/owners", map[string]any{
		"firstName": "Jordan",
		"lastName":  "Reyes",
		"email":     "jordan@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOwnerValidation(t *testing.T) {
	db, mock := newMockDB(t)
	router := newOwnerRouter(NewOwnerHandler(db))

	w := performRequest(t, router, http.MethodPost, "/owners", map[string]any{
		"firstName": "Jordan",
		"email":     "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOwnerBlockedByPets(t *testing.T) {
	db, mock := newMockDB(t)
	router := newOwnerRouter(NewOwnerHandler(db))

	mock.ExpectQuery("SELECT \\* FROM `owners` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("owner-1"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `pets`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))

	w := performRequest(t, router, http.MethodDelete, "/owners/owner-1", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cannot delete owner with associated pets")
	// The delete never ran.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOwnerWithoutPets(t *testing.T) {
	db, mock := newMockDB(t)
	router := newOwnerRouter(NewOwnerHandler(db))

	mock.ExpectQuery("SELECT \\* FROM `owners` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("owner-1"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `pets`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `owners`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := performRequest(t, router, http.MethodDelete, "/owners/owner-1", nil)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOwnerNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	router := newOwnerRouter(NewOwnerHandler(db))

	mock.ExpectQuery("SELECT \\* FROM `owners` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := performRequest(t, router, http.MethodDelete, "/owners/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
