// Package client is a typed API client for the clinic backend, written for
// dashboard front-ends. The bearer credential obtained by Login is held on
// the client and attached explicitly to every outgoing request; there is no
// ambient session state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vetclinic-server/internal/scheduling"
)

// DefaultTimeout bounds every request when the caller does not supply one.
const DefaultTimeout = 10 * time.Second

// Client talks to the clinic API.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New creates a client for the given base URL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// APIError represents a non-2xx response, carrying the server's detail string.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status=%d detail=%s", e.StatusCode, e.Detail)
}

// envelope is the server's standard response wrapper.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Login authenticates with the form-encoded login endpoint and stores the
// bearer token on the client.
func (c *Client) Login(ctx context.Context, email, password string) error {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login",
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("client: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Detail: errorDetail(raw)}
	}

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return fmt.Errorf("client: decode login response: %w", err)
	}
	c.token = body.AccessToken
	return nil
}

// Token returns the held bearer credential, empty before Login.
func (c *Client) Token() string {
	return c.token
}

// do runs a JSON request against the API, attaching the bearer credential,
// and decodes the envelope's data field into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("client: marshal body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("client: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Detail: errorDetail(raw)}
	}

	if out == nil {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("client: decode response data: %w", err)
	}
	return nil
}

func errorDetail(raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error != "" {
		return env.Error
	}
	return strings.TrimSpace(string(raw))
}

// Me fetches the authenticated veterinarian.
func (c *Client) Me(ctx context.Context) (Veterinarian, error) {
	var vet Veterinarian
	err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, &vet)
	return vet, err
}

// Veterinarians lists the clinic's veterinarians.
func (c *Client) Veterinarians(ctx context.Context) ([]Veterinarian, error) {
	var vets []Veterinarian
	err := c.do(ctx, http.MethodGet, "/veterinarians", nil, nil, &vets)
	return vets, err
}

// VeterinarianSchedule fetches one veterinarian's appointments for a day.
func (c *Client) VeterinarianSchedule(ctx context.Context, vetID string, day time.Time) ([]Appointment, error) {
	q := url.Values{}
	q.Set("date", day.Format("2006-01-02"))
	var appointments []Appointment
	err := c.do(ctx, http.MethodGet, "/veterinarians/"+vetID+"/schedule", q, nil, &appointments)
	return appointments, err
}

// CreateOwner registers an owner.
func (c *Client) CreateOwner(ctx context.Context, params CreateOwnerParams) (Owner, error) {
	var owner Owner
	err := c.do(ctx, http.MethodPost, "/owners", nil, params, &owner)
	return owner, err
}

// Owners lists registered owners with their pets.
func (c *Client) Owners(ctx context.Context) ([]Owner, error) {
	var owners []Owner
	err := c.do(ctx, http.MethodGet, "/owners", nil, nil, &owners)
	return owners, err
}

// CreatePet registers a pet.
func (c *Client) CreatePet(ctx context.Context, params CreatePetParams) (Pet, error) {
	var pet Pet
	err := c.do(ctx, http.MethodPost, "/pets", nil, params, &pet)
	return pet, err
}

// CreateAppointment books an appointment.
func (c *Client) CreateAppointment(ctx context.Context, params CreateAppointmentParams) (Appointment, error) {
	var appointment Appointment
	err := c.do(ctx, http.MethodPost, "/appointments", nil, params, &appointment)
	return appointment, err
}

// CheckAvailability fetches the veterinarian's schedule for the candidate day
// and scans it for a slot clash, skipping completed, cancelled and no-show
// entries. It is advisory: the server re-checks on booking.
func (c *Client) CheckAvailability(ctx context.Context, vetID string, start time.Time) (bool, error) {
	appointments, err := c.VeterinarianSchedule(ctx, vetID, start)
	if err != nil {
		return false, err
	}
	open := make([]time.Time, 0, len(appointments))
	for _, appt := range appointments {
		switch appt.Status {
		case "completed", "cancelled", "no_show":
			continue
		}
		open = append(open, appt.AppointmentDate)
	}
	_, conflict := scheduling.FindConflict(start, open)
	return !conflict, nil
}

// PayInvoice marks an invoice paid.
func (c *Client) PayInvoice(ctx context.Context, invoiceID string) (Invoice, error) {
	var invoice Invoice
	err := c.do(ctx, http.MethodPost, "/invoices/"+invoiceID+"/pay", nil, nil, &invoice)
	return invoice, err
}

// Revenue fetches the paid-invoice total for a date range.
func (c *Client) Revenue(ctx context.Context, start, end time.Time) (RevenueReport, error) {
	q := url.Values{}
	q.Set("start_date", start.Format("2006-01-02"))
	q.Set("end_date", end.Format("2006-01-02"))
	var report RevenueReport
	err := c.do(ctx, http.MethodGet, "/reports/revenue", q, nil, &report)
	return report, err
}

// VaccinationAlerts fetches the doses coming due within the window.
func (c *Client) VaccinationAlerts(ctx context.Context, windowDays int) ([]VaccinationRecord, error) {
	q := url.Values{}
	if windowDays > 0 {
		q.Set("days", fmt.Sprintf("%d", windowDays))
	}
	var records []VaccinationRecord
	err := c.do(ctx, http.MethodGet, "/reports/vaccination-alerts", q, nil, &records)
	return records, err
}
