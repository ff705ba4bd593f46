package models

import (
	"time"
)

// Vaccine is a catalog entry (e.g. rabies, distemper).
type Vaccine struct {
	BaseModel
	Name              string `gorm:"uniqueIndex;size:200;not null" json:"name"`
	Manufacturer      string `gorm:"size:200" json:"manufacturer,omitempty"`
	SpeciesApplicable string `gorm:"size:100" json:"speciesApplicable,omitempty"` // e.g. "dog", "dog,cat"

	VaccinationRecords []VaccinationRecord `gorm:"foreignKey:VaccineID" json:"-"`
}

// VaccinationRecord logs a vaccine dose administered to a pet. NextDoseDate
// feeds the upcoming-dose alerts report.
type VaccinationRecord struct {
	BaseModel
	PetID           string     `gorm:"size:36;not null;index" json:"petId"`
	VaccineID       string     `gorm:"size:36;not null;index" json:"vaccineId"`
	VeterinarianID  string     `gorm:"size:36;not null;index" json:"veterinarianId"`
	VaccinationDate time.Time  `gorm:"not null" json:"vaccinationDate"`
	NextDoseDate    *time.Time `json:"nextDoseDate,omitempty"`
	BatchNumber     string     `gorm:"size:50" json:"batchNumber,omitempty"`

	Pet          *Pet          `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	Vaccine      *Vaccine      `gorm:"foreignKey:VaccineID" json:"vaccine,omitempty"`
	Veterinarian *Veterinarian `gorm:"foreignKey:VeterinarianID" json:"veterinarian,omitempty"`
}
