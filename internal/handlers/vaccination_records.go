package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vetclinic-server/internal/models"
	"vetclinic-server/internal/utils"
)

// VaccinationRecordHandler handles vaccination log requests.
type VaccinationRecordHandler struct {
	DB *gorm.DB
}

// NewVaccinationRecordHandler creates a new VaccinationRecordHandler.
func NewVaccinationRecordHandler(db *gorm.DB) *VaccinationRecordHandler {
	return &VaccinationRecordHandler{DB: db}
}

// CreateVaccinationRecordRequest represents the request body for logging a
// dose.
type CreateVaccinationRecordRequest struct {
	PetID           string     `json:"petId" binding:"required,uuid"`
	VaccineID       string     `json:"vaccineId" binding:"required,uuid"`
	VeterinarianID  string     `json:"veterinarianId" binding:"required,uuid"`
	VaccinationDate time.Time  `json:"vaccinationDate" binding:"required"`
	NextDoseDate    *time.Time `json:"nextDoseDate"`
	BatchNumber     string     `json:"batchNumber"`
}

// CreateVaccinationRecord logs an administered dose.
func (h *VaccinationRecordHandler) CreateVaccinationRecord(c *gin.Context) {
	var req CreateVaccinationRecordRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := h.DB.Select("id").First(&models.Pet{}, "id = ?", req.PetID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Pet not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	if err := h.DB.Select("id").First(&models.Vaccine{}, "id = ?", req.VaccineID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Vaccine not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	if err := h.DB.Select("id").First(&models.Veterinarian{}, "id = ?", req.VeterinarianID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Veterinarian not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	record := models.VaccinationRecord{
		PetID:           req.PetID,
		VaccineID:       req.VaccineID,
		VeterinarianID:  req.VeterinarianID,
		VaccinationDate: req.VaccinationDate,
		NextDoseDate:    req.NextDoseDate,
		BatchNumber:     req.BatchNumber,
	}
	if err := h.DB.Create(&record).Error; err != nil {
		utils.InternalServerError(c, "Failed to create vaccination record: "+err.Error())
		return
	}
	utils.Created(c, "Vaccination record created successfully", record)
}

// ListVaccinationRecords returns the vaccination log.
func (h *VaccinationRecordHandler) ListVaccinationRecords(c *gin.Context) {
	skip, limit := pagination(c)
	var records []models.VaccinationRecord
	if err := h.DB.Preload("Pet").Preload("Vaccine").Preload("Veterinarian").
		Offset(skip).Limit(limit).Find(&records).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Vaccination records fetched successfully", records)
}

// GetVaccinationRecord returns a single vaccination record.
func (h *VaccinationRecordHandler) GetVaccinationRecord(c *gin.Context) {
	var record models.VaccinationRecord
	if err := h.DB.Preload("Pet").Preload("Vaccine").Preload("Veterinarian").
		First(&record, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Vaccination record not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	utils.Success(c, "Vaccination record fetched successfully", record)
}

// UpdateVaccinationRecordRequest carries a partial update.
type UpdateVaccinationRecordRequest struct {
	PetID           *string    `json:"petId" binding:"omitempty,uuid"`
	VaccineID       *string    `json:"vaccineId" binding:"omitempty,uuid"`
	VeterinarianID  *string    `json:"veterinarianId" binding:"omitempty,uuid"`
	VaccinationDate *time.Time `json:"vaccinationDate"`
	NextDoseDate    *time.Time `json:"nextDoseDate"`
	BatchNumber     *string    `json:"batchNumber"`
}

// UpdateVaccinationRecord applies a partial update to a vaccination record.
func (h *VaccinationRecordHandler) UpdateVaccinationRecord(c *gin.Context) {
	var record models.VaccinationRecord
	if err := h.DB.First(&record, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Vaccination record not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var req UpdateVaccinationRecordRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if req.PetID != nil && *req.PetID != record.PetID {
		if err := h.DB.Select("id").First(&models.Pet{}, "id = ?", *req.PetID).Error; err != nil {
			utils.BadRequest(c, "Pet with id "+*req.PetID+" not found")
			return
		}
		record.PetID = *req.PetID
	}
	if req.VaccineID != nil && *req.VaccineID != record.VaccineID {
		if err := h.DB.Select("id").First(&models.Vaccine{}, "id = ?", *req.VaccineID).Error; err != nil {
			utils.BadRequest(c, "Vaccine with id "+*req.VaccineID+" not found")
			return
		}
		record.VaccineID = *req.VaccineID
	}
	if req.VeterinarianID != nil && *req.VeterinarianID != record.VeterinarianID {
		if err := h.DB.Select("id").First(&models.Veterinarian{}, "id = ?", *req.VeterinarianID).Error; err != nil {
			utils.BadRequest(c, "Veterinarian with id "+*req.VeterinarianID+" not found")
			return
		}
		record.VeterinarianID = *req.VeterinarianID
	}
	if req.VaccinationDate != nil {
		record.VaccinationDate = *req.VaccinationDate
	}
	if req.NextDoseDate != nil {
		record.NextDoseDate = req.NextDoseDate
	}
	if req.BatchNumber != nil {
		record.BatchNumber = *req.BatchNumber
	}

	if err := h.DB.Save(&record).Error; err != nil {
		utils.InternalServerError(c, "Failed to update vaccination record: "+err.Error())
		return
	}
	utils.Success(c, "Vaccination record updated successfully", record)
}

// DeleteVaccinationRecord removes a vaccination record.
func (h *VaccinationRecordHandler) DeleteVaccinationRecord(c *gin.Context) {
	var record models.VaccinationRecord
	if err := h.DB.First(&record, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Vaccination record not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&record).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete vaccination record: "+err.Error())
		return
	}
	utils.Success(c, "Vaccination record deleted successfully", record)
}
