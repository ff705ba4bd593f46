package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelopeJSON(data any) []byte {
	b, _ := json.Marshal(map[string]any{
		"status":  200,
		"message": "ok",
		"data":    data,
	})
	return b
}

func newTestServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()

	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostFormValue("username") != "vet@clinic.test" || r.PostFormValue("password") != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"status":401,"message":"An error occurred","error":"Incorrect email or password"}`))
			return
		}
		w.Write([]byte(`{"access_token":"tok-123","token_type":"bearer"}`))
	})

	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Write(envelopeJSON(Veterinarian{ID: "vet-1", Email: "vet@clinic.test", IsActive: true}))
	})

	mux.HandleFunc("GET /veterinarians/vet-1/schedule", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-09-14", r.URL.Query().Get("date"))
		w.Write(envelopeJSON([]Appointment{
			{ID: "appt-1", VeterinarianID: "vet-1", AppointmentDate: day.Add(9 * time.Hour), Status: "scheduled"},
			{ID: "appt-2", VeterinarianID: "vet-1", AppointmentDate: day.Add(10 * time.Hour), Status: "completed"},
		}))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, New(server.URL, 0)
}

func TestLoginStoresToken(t *testing.T) {
	_, c := newTestServer(t)

	require.NoError(t, c.Login(context.Background(), "vet@clinic.test", "hunter2"))
	assert.Equal(t, "tok-123", c.Token())
}

func TestLoginRejected(t *testing.T) {
	_, c := newTestServer(t)

	err := c.Login(context.Background(), "vet@clinic.test", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Incorrect email or password", apiErr.Detail)
	assert.Empty(t, c.Token())
}

func TestMeSendsBearerToken(t *testing.T) {
	_, c := newTestServer(t)
	require.NoError(t, c.Login(context.Background(), "vet@clinic.test", "hunter2"))

	vet, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "vet@clinic.test", vet.Email)
}

func TestCheckAvailability(t *testing.T) {
	_, c := newTestServer(t)
	require.NoError(t, c.Login(context.Background(), "vet@clinic.test", "hunter2"))

	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	t.Run("clashes with an open booking", func(t *testing.T) {
		free, err := c.CheckAvailability(context.Background(), "vet-1", day.Add(9*time.Hour+15*time.Minute))
		require.NoError(t, err)
		assert.False(t, free)
	})

	t.Run("completed bookings do not block the slot", func(t *testing.T) {
		free, err := c.CheckAvailability(context.Background(), "vet-1", day.Add(10*time.Hour))
		require.NoError(t, err)
		assert.True(t, free)
	})

	t.Run("free slot", func(t *testing.T) {
		free, err := c.CheckAvailability(context.Background(), "vet-1", day.Add(14*time.Hour))
		require.NoError(t, err)
		assert.True(t, free)
	})
}

func TestAPIErrorFormatting(t *testing.T) {
	err := &APIError{StatusCode: 404, Detail: "Owner not found"}
	assert.Equal(t, "api error: status=404 detail=Owner not found", err.Error())

	bare := &APIError{StatusCode: 500}
	assert.Equal(t, "api error: status=500", bare.Error())

	assert.False(t, errors.Is(err, bare))
}
