package client

import (
	"time"
)

// Wire types for the dashboard-facing resources. These mirror the server's
// JSON shapes without carrying its persistence tags.

// Veterinarian is a clinic veterinarian account.
type Veterinarian struct {
	ID                string     `json:"id"`
	LicenseNumber     string     `json:"licenseNumber"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone,omitempty"`
	Specialization    string     `json:"specialization,omitempty"`
	HireDate          *time.Time `json:"hireDate,omitempty"`
	IsActive          bool       `json:"isActive"`
	ConsultationFee   *float64   `json:"consultationFee,omitempty"`
	Rating            *float64   `json:"rating,omitempty"`
	TotalAppointments int        `json:"totalAppointments"`
}

// Owner is a pet owner.
type Owner struct {
	ID                     string `json:"id"`
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName"`
	Email                  string `json:"email"`
	Phone                  string `json:"phone,omitempty"`
	Address                string `json:"address,omitempty"`
	EmergencyContact       string `json:"emergencyContact,omitempty"`
	PreferredPaymentMethod string `json:"preferredPaymentMethod,omitempty"`
	Pets                   []Pet  `json:"pets,omitempty"`
}

// Pet is a registered patient.
type Pet struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Species         string     `json:"species"`
	Breed           string     `json:"breed,omitempty"`
	BirthDate       *time.Time `json:"birthDate,omitempty"`
	Weight          *float64   `json:"weight,omitempty"`
	MicrochipNumber *string    `json:"microchipNumber,omitempty"`
	IsNeutered      bool       `json:"isNeutered"`
	BloodType       string     `json:"bloodType,omitempty"`
	OwnerID         string     `json:"ownerId"`
	VisitCount      int        `json:"visitCount"`
	LastVisitDate   *time.Time `json:"lastVisitDate,omitempty"`
	Owner           *Owner     `json:"owner,omitempty"`
}

// Appointment is a clinic visit. A nil PetID is an emergency walk-in.
type Appointment struct {
	ID              string        `json:"id"`
	PetID           *string       `json:"petId"`
	VeterinarianID  string        `json:"veterinarianId"`
	AppointmentDate time.Time     `json:"appointmentDate"`
	Reason          string        `json:"reason,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	Status          string        `json:"status"`
	Pet             *Pet          `json:"pet,omitempty"`
	Veterinarian    *Veterinarian `json:"veterinarian,omitempty"`
}

// Invoice bills an appointment.
type Invoice struct {
	ID            string     `json:"id"`
	AppointmentID *string    `json:"appointmentId"`
	InvoiceNumber string     `json:"invoiceNumber"`
	IssueDate     time.Time  `json:"issueDate"`
	Subtotal      float64    `json:"subtotal"`
	TaxAmount     float64    `json:"taxAmount"`
	TotalAmount   float64    `json:"totalAmount"`
	PaymentStatus string     `json:"paymentStatus"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
}

// VaccinationRecord is an administered dose with an optional follow-up date.
type VaccinationRecord struct {
	ID              string     `json:"id"`
	PetID           string     `json:"petId"`
	VaccineID       string     `json:"vaccineId"`
	VeterinarianID  string     `json:"veterinarianId"`
	VaccinationDate time.Time  `json:"vaccinationDate"`
	NextDoseDate    *time.Time `json:"nextDoseDate,omitempty"`
	BatchNumber     string     `json:"batchNumber,omitempty"`
	Pet             *Pet       `json:"pet,omitempty"`
}

// RevenueReport is the revenue endpoint response.
type RevenueReport struct {
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// CreateOwnerParams is the body for registering an owner.
type CreateOwnerParams struct {
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName"`
	Email                  string `json:"email"`
	Phone                  string `json:"phone,omitempty"`
	Address                string `json:"address,omitempty"`
	EmergencyContact       string `json:"emergencyContact,omitempty"`
	PreferredPaymentMethod string `json:"preferredPaymentMethod,omitempty"`
}

// CreatePetParams is the body for registering a pet.
type CreatePetParams struct {
	Name            string     `json:"name"`
	Species         string     `json:"species"`
	Breed           string     `json:"breed,omitempty"`
	BirthDate       *time.Time `json:"birthDate,omitempty"`
	Weight          *float64   `json:"weight,omitempty"`
	MicrochipNumber *string    `json:"microchipNumber,omitempty"`
	IsNeutered      bool       `json:"isNeutered,omitempty"`
	BloodType       string     `json:"bloodType,omitempty"`
	OwnerID         string     `json:"ownerId"`
}

// CreateAppointmentParams is the body for booking an appointment. Leave PetID
// nil for an emergency walk-in.
type CreateAppointmentParams struct {
	PetID           *string   `json:"petId,omitempty"`
	VeterinarianID  string    `json:"veterinarianId"`
	AppointmentDate time.Time `json:"appointmentDate"`
	Reason          string    `json:"reason,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}
