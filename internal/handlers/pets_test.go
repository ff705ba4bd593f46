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

const testOwnerID = "3d4e5f60-7182-93a4-b5c6-d7e8f9a0b1c2"

func newPetRouter(h *PetHandler) *gin.Engine {
	router := gin.New()
	router.POST("/pets", h.CreatePet)
	router.DELETE("/pets/:id", h.DeletePet)
	return router
}

func TestCreatePet(t *testing.T) {
	db, mock := newMockDB(t)
	router := newPetRouter(NewPetHandler(db))

	mock.ExpectQuery("SELECT \\* FROM `owners` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name"}).
			AddRow(testOwnerID, "Jordan"))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `pets`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := performRequest(t, router, http.MethodPost, "/pets", map[string]any{
		"name":    "Rex",
		"species": "dog",
		"breed":   "border collie",
		"ownerId": testOwnerID,
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	env := decodeResponse(t, w)
	var pet models.Pet
	require.NoError(t, json.Unmarshal(env.Data, &pet))
	assert.Equal(t, models.SpeciesDog, pet.Species)
	assert.Equal(t, testOwnerID, pet.OwnerID)
	require.NotNil(t, pet.Owner)
	assert.Zero(t, pet.VisitCount)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePetUnknownOwner(t *testing.T) {
	db, mock := newMockDB(t)
	router := newPetRouter(NewPetHandler(db))

	mock.ExpectQuery("SELECT \\* FROM `owners` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := performRequest(t, router, http.MethodPost, "/pets", map[string]any{
		"name":    "Rex",
		"species": "dog",
		"ownerId": testOwnerID,
	})

	// Dangling references are refused, not created.
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePetRejectsUnknownSpecies(t *testing.T) {
	db, mock := newMockDB(t)
	router := newPetRouter(NewPetHandler(db))

	w := performRequest(t, router, http.MethodPost, "/pets", map[string]any{
		"name":    "Ziggy",
		"species": "iguana",
		"ownerId": testOwnerID,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePetBlockedByScheduledAppointments(t *testing.T) {
	db, mock := newMockDB(t)
	router := newPetRouter(NewPetHandler(db))

	mock.ExpectQuery("SELECT \\* FROM `pets` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testPetID))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `appointments`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	w := performRequest(t, router, http.MethodDelete, "/pets/"+testPetID, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cannot delete pet with active appointments")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePetWithoutActiveAppointments(t *testing.T) {
	db, mock := newMockDB(t)
	router := newPetRouter(NewPetHandler(db))

	mock.ExpectQuery("SELECT \\* FROM `pets` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testPetID))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `appointments`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `pets`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := performRequest(t, router, http.MethodDelete, "/pets/"+testPetID, nil)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}
