package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Veterinarian represents a clinic veterinarian, which doubles as the
// authenticated user account.
type Veterinarian struct {
	BaseModel
	LicenseNumber     string     `gorm:"uniqueIndex;size:50;not null" json:"licenseNumber"`
	FirstName         string     `gorm:"size:100;not null" json:"firstName"`
	LastName          string     `gorm:"size:100;not null" json:"lastName"`
	Email             string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password          string     `gorm:"size:255" json:"-"` // Never send password hash in JSON
	Phone             string     `gorm:"size:30" json:"phone,omitempty"`
	Specialization    string     `gorm:"size:200" json:"specialization,omitempty"`
	HireDate          *time.Time `json:"hireDate,omitempty"`
	IsActive          bool       `gorm:"default:true" json:"isActive"`
	ConsultationFee   *float64   `gorm:"type:decimal(8,2)" json:"consultationFee,omitempty"`
	Rating            *float64   `gorm:"type:decimal(3,2)" json:"rating,omitempty"`
	TotalAppointments int        `gorm:"not null;default:0" json:"totalAppointments"` // derived counter

	// Relations (not always preloaded)
	Appointments       []Appointment       `gorm:"foreignKey:VeterinarianID" json:"-"`
	VaccinationRecords []VaccinationRecord `gorm:"foreignKey:VeterinarianID" json:"-"`
}

// SetPassword hashes a password and sets it on the veterinarian
func (v *Veterinarian) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	v.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the veterinarian's hashed password
func (v *Veterinarian) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(v.Password), []byte(password))
	return err == nil
}
