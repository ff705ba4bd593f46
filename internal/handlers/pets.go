package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vetclinic-server/internal/models"
	"vetclinic-server/internal/utils"
)

// PetHandler handles pet resource requests.
type PetHandler struct {
	DB *gorm.DB
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(db *gorm.DB) *PetHandler {
	return &PetHandler{DB: db}
}

// CreatePetRequest represents the request body for registering a pet.
type CreatePetRequest struct {
	Name            string     `json:"name" binding:"required"`
	Species         string     `json:"species" binding:"required,oneof=dog cat bird rabbit other"`
	Breed           string     `json:"breed"`
	BirthDate       *time.Time `json:"birthDate"`
	Weight          *float64   `json:"weight"`
	MicrochipNumber *string    `json:"microchipNumber"`
	IsNeutered      bool       `json:"isNeutered"`
	BloodType       string     `json:"bloodType"`
	OwnerID         string     `json:"ownerId" binding:"required,uuid"`
}

// CreatePet registers a new pet for an existing owner.
func (h *PetHandler) CreatePet(c *gin.Context) {
	var req CreatePetRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var owner models.Owner
	if err := h.DB.First(&owner, "id = ?", req.OwnerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.BadRequest(c, "Owner with id "+req.OwnerID+" not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	pet := models.Pet{
		Name:            req.Name,
		Species:         models.Species(req.Species),
		Breed:           req.Breed,
		BirthDate:       req.BirthDate,
		Weight:          req.Weight,
		MicrochipNumber: req.MicrochipNumber,
		IsNeutered:      req.IsNeutered,
		BloodType:       req.BloodType,
		OwnerID:         req.OwnerID,
	}
	if err := h.DB.Create(&pet).Error; err != nil {
		utils.InternalServerError(c, "Failed to create pet: "+err.Error())
		return
	}

	pet.Owner = &owner
	utils.Created(c, "Pet created successfully", pet)
}

// ListPets returns all pets with their owners.
func (h *PetHandler) ListPets(c *gin.Context) {
	skip, limit := pagination(c)
	var pets []models.Pet
	if err := h.DB.Preload("Owner").Offset(skip).Limit(limit).Find(&pets).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Pets fetched successfully", pets)
}

// GetPet returns a single pet with its owner.
func (h *PetHandler) GetPet(c *gin.Context) {
	var pet models.Pet
	if err := h.DB.Preload("Owner").First(&pet, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Pet not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	utils.Success(c, "Pet fetched successfully", pet)
}

// UpdatePetRequest carries a partial update; only non-nil fields are applied.
// VisitCount and LastVisitDate are derived and not updatable here.
type UpdatePetRequest struct {
	Name            *string    `json:"name"`
	Species         *string    `json:"species" binding:"omitempty,oneof=dog cat bird rabbit other"`
	Breed           *string    `json:"breed"`
	BirthDate       *time.Time `json:"birthDate"`
	Weight          *float64   `json:"weight"`
	MicrochipNumber *string    `json:"microchipNumber"`
	IsNeutered      *bool      `json:"isNeutered"`
	BloodType       *string    `json:"bloodType"`
	OwnerID         *string    `json:"ownerId" binding:"omitempty,uuid"`
}

// UpdatePet applies a partial update to a pet.
func (h *PetHandler) UpdatePet(c *gin.Context) {
	var pet models.Pet
	if err := h.DB.First(&pet, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Pet not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var req UpdatePetRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if req.OwnerID != nil && *req.OwnerID != pet.OwnerID {
		var owner models.Owner
		if err := h.DB.First(&owner, "id = ?", *req.OwnerID).Error; err != nil {
			utils.BadRequest(c, "Owner with id "+*req.OwnerID+" not found")
			return
		}
		pet.OwnerID = *req.OwnerID
	}
	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Species != nil {
		pet.Species = models.Species(*req.Species)
	}
	if req.Breed != nil {
		pet.Breed = *req.Breed
	}
	if req.BirthDate != nil {
		pet.BirthDate = req.BirthDate
	}
	if req.Weight != nil {
		pet.Weight = req.Weight
	}
	if req.MicrochipNumber != nil {
		pet.MicrochipNumber = req.MicrochipNumber
	}
	if req.IsNeutered != nil {
		pet.IsNeutered = *req.IsNeutered
	}
	if req.BloodType != nil {
		pet.BloodType = *req.BloodType
	}

	if err := h.DB.Save(&pet).Error; err != nil {
		utils.InternalServerError(c, "Failed to update pet: "+err.Error())
		return
	}

	if err := h.DB.Preload("Owner").First(&pet, "id = ?", pet.ID).Error; err == nil {
		utils.Success(c, "Pet updated successfully", pet)
		return
	}
	utils.Success(c, "Pet updated successfully", pet)
}

// DeletePet removes a pet unless it still has a scheduled appointment.
// Vaccination records cascade at the schema level.
func (h *PetHandler) DeletePet(c *gin.Context) {
	var pet models.Pet
	if err := h.DB.First(&pet, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Pet not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var scheduled int64
	if err := h.DB.Model(&models.Appointment{}).
		Where("pet_id = ? AND status = ?", pet.ID, models.StatusScheduled).
		Count(&scheduled).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	if scheduled > 0 {
		utils.BadRequest(c, "Cannot delete pet with active appointments")
		return
	}

	if err := h.DB.Delete(&pet).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete pet: "+err.Error())
		return
	}
	utils.Success(c, "Pet deleted successfully", pet)
}

// GetPetMedicalHistory returns the medical records written for a pet's
// appointments, newest first.
func (h *PetHandler) GetPetMedicalHistory(c *gin.Context) {
	petID := c.Param("id")
	if !h.petExists(c, petID) {
		return
	}

	var records []models.MedicalRecord
	if err := h.DB.
		Joins("JOIN appointments ON appointments.id = medical_records.appointment_id").
		Where("appointments.pet_id = ?", petID).
		Order("medical_records.created_at desc").
		Find(&records).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Medical history fetched successfully", records)
}

// GetPetVaccinations returns a pet's vaccination log, newest first.
func (h *PetHandler) GetPetVaccinations(c *gin.Context) {
	petID := c.Param("id")
	if !h.petExists(c, petID) {
		return
	}

	var records []models.VaccinationRecord
	if err := h.DB.Preload("Vaccine").Preload("Veterinarian").
		Where("pet_id = ?", petID).
		Order("vaccination_date desc").
		Find(&records).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Vaccinations fetched successfully", records)
}

// GetPetVaccinationSchedule returns the pet's upcoming doses (next_dose_date
// today or later), soonest first.
func (h *PetHandler) GetPetVaccinationSchedule(c *gin.Context) {
	petID := c.Param("id")
	if !h.petExists(c, petID) {
		return
	}

	today := startOfDay(time.Now())
	var records []models.VaccinationRecord
	if err := h.DB.Preload("Vaccine").
		Where("pet_id = ? AND next_dose_date >= ?", petID, today).
		Order("next_dose_date asc").
		Find(&records).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Vaccination schedule fetched successfully", records)
}

func (h *PetHandler) petExists(c *gin.Context, id string) bool {
	var pet models.Pet
	if err := h.DB.Select("id").First(&pet, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Pet not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return false
	}
	return true
}

// startOfDay truncates a timestamp to local midnight.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
