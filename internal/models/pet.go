package models

import (
	"time"
)

// Species enumerates the patient species the clinic registers.
type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesBird   Species = "bird"
	SpeciesRabbit Species = "rabbit"
	SpeciesOther  Species = "other"
)

// Pet represents a registered patient. VisitCount and LastVisitDate are
// derived fields, maintained only by appointment creation and deletion.
type Pet struct {
	BaseModel
	Name            string     `gorm:"size:100;not null" json:"name"`
	Species         Species    `gorm:"size:20;not null" json:"species"`
	Breed           string     `gorm:"size:100" json:"breed,omitempty"`
	BirthDate       *time.Time `json:"birthDate,omitempty"`
	Weight          *float64   `gorm:"type:decimal(6,2)" json:"weight,omitempty"`
	MicrochipNumber *string    `gorm:"uniqueIndex;size:50" json:"microchipNumber,omitempty"`
	IsNeutered      bool       `gorm:"default:false" json:"isNeutered"`
	BloodType       string     `gorm:"size:10" json:"bloodType,omitempty"`
	OwnerID         string     `gorm:"size:36;not null;index" json:"ownerId"`
	VisitCount      int        `gorm:"not null;default:0" json:"visitCount"`
	LastVisitDate   *time.Time `json:"lastVisitDate,omitempty"`

	Owner              *Owner              `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Appointments       []Appointment       `gorm:"foreignKey:PetID" json:"-"`
	VaccinationRecords []VaccinationRecord `gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE" json:"-"`
}
