package models

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// TerminalStatuses are the statuses that no longer occupy the veterinarian's
// calendar; only non-terminal appointments count for overlap detection.
var TerminalStatuses = []AppointmentStatus{StatusCompleted, StatusCancelled, StatusNoShow}

// Appointment represents a clinic visit. A nil PetID is an emergency walk-in
// with no registered patient.
type Appointment struct {
	BaseModel
	PetID           *string           `gorm:"size:36;index" json:"petId"`
	VeterinarianID  string            `gorm:"size:36;not null;index" json:"veterinarianId"`
	AppointmentDate time.Time         `gorm:"not null" json:"appointmentDate"`
	Reason          string            `gorm:"type:text" json:"reason,omitempty"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	Status          AppointmentStatus `gorm:"size:20;default:'scheduled'" json:"status"`

	// Relations
	Pet           *Pet           `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	Veterinarian  *Veterinarian  `gorm:"foreignKey:VeterinarianID" json:"veterinarian,omitempty"`
	MedicalRecord *MedicalRecord `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE" json:"medicalRecord,omitempty"`
	Invoice       *Invoice       `gorm:"foreignKey:AppointmentID;constraint:OnDelete:SET NULL" json:"invoice,omitempty"`
}
