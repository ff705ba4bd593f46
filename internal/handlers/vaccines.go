package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vetclinic-server/internal/models"
	"vetclinic-server/internal/utils"
)

// VaccineHandler handles vaccine catalog requests.
type VaccineHandler struct {
	DB *gorm.DB
}

// NewVaccineHandler creates a new VaccineHandler.
func NewVaccineHandler(db *gorm.DB) *VaccineHandler {
	return &VaccineHandler{DB: db}
}

// CreateVaccineRequest represents the request body for a catalog entry.
type CreateVaccineRequest struct {
	Name              string `json:"name" binding:"required"`
	Manufacturer      string `json:"manufacturer"`
	SpeciesApplicable string `json:"speciesApplicable"`
}

// CreateVaccine adds a vaccine to the catalog.
func (h *VaccineHandler) CreateVaccine(c *gin.Context) {
	var req CreateVaccineRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var existing models.Vaccine
	if err := h.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		utils.BadRequest(c, "Vaccine name already registered")
		return
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	vaccine := models.Vaccine{
		Name:              req.Name,
		Manufacturer:      req.Manufacturer,
		SpeciesApplicable: req.SpeciesApplicable,
	}
	if err := h.DB.Create(&vaccine).Error; err != nil {
		utils.InternalServerError(c, "Failed to create vaccine: "+err.Error())
		return
	}
	utils.Created(c, "Vaccine created successfully", vaccine)
}

// ListVaccines returns the vaccine catalog.
func (h *VaccineHandler) ListVaccines(c *gin.Context) {
	skip, limit := pagination(c)
	var vaccines []models.Vaccine
	if err := h.DB.Offset(skip).Limit(limit).Find(&vaccines).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Vaccines fetched successfully", vaccines)
}

// GetVaccine returns a single catalog entry.
func (h *VaccineHandler) GetVaccine(c *gin.Context) {
	var vaccine models.Vaccine
	if err := h.DB.First(&vaccine, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Vaccine not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	utils.Success(c, "Vaccine fetched successfully", vaccine)
}

// UpdateVaccineRequest carries a partial update.
type UpdateVaccineRequest struct {
	Name              *string `json:"name"`
	Manufacturer      *string `json:"manufacturer"`
	SpeciesApplicable *string `json:"speciesApplicable"`
}

// UpdateVaccine applies a partial update to a catalog entry.
func (h *VaccineHandler) UpdateVaccine(c *gin.Context) {
	var vaccine models.Vaccine
	if err := h.DB.First(&vaccine, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Vaccine not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var req UpdateVaccineRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if req.Name != nil && *req.Name != vaccine.Name {
		var existing models.Vaccine
		if err := h.DB.Where("name = ?", *req.Name).First(&existing).Error; err == nil {
			utils.BadRequest(c, "Vaccine name already registered")
			return
		}
		vaccine.Name = *req.Name
	}
	if req.Manufacturer != nil {
		vaccine.Manufacturer = *req.Manufacturer
	}
	if req.SpeciesApplicable != nil {
		vaccine.SpeciesApplicable = *req.SpeciesApplicable
	}

	if err := h.DB.Save(&vaccine).Error; err != nil {
		utils.InternalServerError(c, "Failed to update vaccine: "+err.Error())
		return
	}
	utils.Success(c, "Vaccine updated successfully", vaccine)
}

// DeleteVaccine removes a catalog entry unless vaccination records still
// reference it.
func (h *VaccineHandler) DeleteVaccine(c *gin.Context) {
	var vaccine models.Vaccine
	if err := h.DB.First(&vaccine, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Vaccine not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var inUse int64
	if err := h.DB.Model(&models.VaccinationRecord{}).
		Where("vaccine_id = ?", vaccine.ID).
		Count(&inUse).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	if inUse > 0 {
		utils.BadRequest(c, "Cannot delete vaccine used in vaccination records")
		return
	}

	if err := h.DB.Delete(&vaccine).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete vaccine: "+err.Error())
		return
	}
	utils.Success(c, "Vaccine deleted successfully", vaccine)
}
