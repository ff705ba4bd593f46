package models

// MedicalRecord is the clinical outcome of a completed appointment.
// The unique index on AppointmentID enforces the 1:1 relation.
type MedicalRecord struct {
	BaseModel
	AppointmentID    string `gorm:"size:36;uniqueIndex;not null" json:"appointmentId"`
	Diagnosis        string `gorm:"type:text;not null" json:"diagnosis"`
	Treatment        string `gorm:"type:text;not null" json:"treatment"`
	Prescription     string `gorm:"type:text" json:"prescription,omitempty"`
	FollowUpRequired bool   `gorm:"default:false" json:"followUpRequired"`

	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"-"`
}
