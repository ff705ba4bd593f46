package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vetclinic-server/internal/models"
	"vetclinic-server/internal/utils"
)

// VeterinarianHandler handles veterinarian resource requests. Accounts are
// created through sign-up; this handler covers the rest of the lifecycle.
type VeterinarianHandler struct {
	DB *gorm.DB
}

// NewVeterinarianHandler creates a new VeterinarianHandler.
func NewVeterinarianHandler(db *gorm.DB) *VeterinarianHandler {
	return &VeterinarianHandler{DB: db}
}

// ListVeterinarians returns all veterinarians.
func (h *VeterinarianHandler) ListVeterinarians(c *gin.Context) {
	skip, limit := pagination(c)
	var vets []models.Veterinarian
	if err := h.DB.Offset(skip).Limit(limit).Find(&vets).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Veterinarians fetched successfully", vets)
}

// GetVeterinarian returns a single veterinarian by id.
func (h *VeterinarianHandler) GetVeterinarian(c *gin.Context) {
	var vet models.Veterinarian
	if err := h.DB.First(&vet, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Veterinarian not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	utils.Success(c, "Veterinarian fetched successfully", vet)
}

// UpdateVeterinarianRequest carries a partial update; only non-nil fields are
// applied.
type UpdateVeterinarianRequest struct {
	LicenseNumber   *string    `json:"licenseNumber"`
	FirstName       *string    `json:"firstName"`
	LastName        *string    `json:"lastName"`
	Email           *string    `json:"email" binding:"omitempty,email"`
	Phone           *string    `json:"phone"`
	Specialization  *string    `json:"specialization"`
	HireDate        *time.Time `json:"hireDate"`
	IsActive        *bool      `json:"isActive"`
	ConsultationFee *float64   `json:"consultationFee"`
	Rating          *float64   `json:"rating"`
}

// UpdateVeterinarian applies a partial update to a veterinarian.
func (h *VeterinarianHandler) UpdateVeterinarian(c *gin.Context) {
	var vet models.Veterinarian
	if err := h.DB.First(&vet, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Veterinarian not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var req UpdateVeterinarianRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if req.Email != nil && *req.Email != vet.Email {
		var existing models.Veterinarian
		if err := h.DB.Where("email = ?", *req.Email).First(&existing).Error; err == nil {
			utils.BadRequest(c, "Email already registered")
			return
		}
		vet.Email = *req.Email
	}
	if req.LicenseNumber != nil && *req.LicenseNumber != vet.LicenseNumber {
		var existing models.Veterinarian
		if err := h.DB.Where("license_number = ?", *req.LicenseNumber).First(&existing).Error; err == nil {
			utils.BadRequest(c, "License number already registered")
			return
		}
		vet.LicenseNumber = *req.LicenseNumber
	}
	if req.FirstName != nil {
		vet.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		vet.LastName = *req.LastName
	}
	if req.Phone != nil {
		vet.Phone = *req.Phone
	}
	if req.Specialization != nil {
		vet.Specialization = *req.Specialization
	}
	if req.HireDate != nil {
		vet.HireDate = req.HireDate
	}
	if req.IsActive != nil {
		vet.IsActive = *req.IsActive
	}
	if req.ConsultationFee != nil {
		vet.ConsultationFee = req.ConsultationFee
	}
	if req.Rating != nil {
		vet.Rating = req.Rating
	}

	if err := h.DB.Save(&vet).Error; err != nil {
		utils.InternalServerError(c, "Failed to update veterinarian: "+err.Error())
		return
	}
	utils.Success(c, "Veterinarian updated successfully", vet)
}

// DeleteVeterinarian removes a veterinarian unless they still have scheduled
// appointments.
func (h *VeterinarianHandler) DeleteVeterinarian(c *gin.Context) {
	var vet models.Veterinarian
	if err := h.DB.First(&vet, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Veterinarian not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var scheduled int64
	if err := h.DB.Model(&models.Appointment{}).
		Where("veterinarian_id = ? AND status = ?", vet.ID, models.StatusScheduled).
		Count(&scheduled).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	if scheduled > 0 {
		utils.BadRequest(c, "Cannot delete veterinarian with active appointments")
		return
	}

	if err := h.DB.Delete(&vet).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete veterinarian: "+err.Error())
		return
	}
	utils.Success(c, "Veterinarian deleted successfully", vet)
}

// GetVeterinarianAppointments returns all appointments of a veterinarian.
func (h *VeterinarianHandler) GetVeterinarianAppointments(c *gin.Context) {
	vetID := c.Param("id")
	if !h.vetExists(c, vetID) {
		return
	}

	var appointments []models.Appointment
	if err := h.DB.Preload("Pet").
		Where("veterinarian_id = ?", vetID).
		Order("appointment_date asc").
		Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetVeterinarianSchedule returns a veterinarian's appointments for one day,
// ordered by time. The date query parameter is required (YYYY-MM-DD).
func (h *VeterinarianHandler) GetVeterinarianSchedule(c *gin.Context) {
	vetID := c.Param("id")
	if !h.vetExists(c, vetID) {
		return
	}

	day, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		utils.BadRequest(c, "Invalid or missing date parameter, expected YYYY-MM-DD")
		return
	}

	var appointments []models.Appointment
	if err := h.DB.Preload("Pet").
		Where("veterinarian_id = ? AND appointment_date >= ? AND appointment_date < ?",
			vetID, day, day.AddDate(0, 0, 1)).
		Order("appointment_date asc").
		Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Schedule fetched successfully", appointments)
}

func (h *VeterinarianHandler) vetExists(c *gin.Context, id string) bool {
	var vet models.Veterinarian
	if err := h.DB.Select("id").First(&vet, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Veterinarian not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return false
	}
	return true
}
