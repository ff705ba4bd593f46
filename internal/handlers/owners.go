package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vetclinic-server/internal/models"
	"vetclinic-server/internal/utils"
)

// OwnerHandler handles owner resource requests.
type OwnerHandler struct {
	DB *gorm.DB
}

// NewOwnerHandler creates a new OwnerHandler.
func NewOwnerHandler(db *gorm.DB) *OwnerHandler {
	return &OwnerHandler{DB: db}
}

// CreateOwnerRequest represents the request body for creating an owner.
type CreateOwnerRequest struct {
	FirstName              string `json:"firstName" binding:"required"`
	LastName               string `json:"lastName" binding:"required"`
	Email                  string `json:"email" binding:"required,email"`
	Phone                  string `json:"phone"`
	Address                string `json:"address"`
	EmergencyContact       string `json:"emergencyContact"`
	PreferredPaymentMethod string `json:"preferredPaymentMethod" binding:"omitempty,oneof=cash credit debit insurance"`
}

// CreateOwner registers a new owner.
func (h *OwnerHandler) CreateOwner(c *gin.Context) {
	var req CreateOwnerRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var existing models.Owner
	if err := h.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.BadRequest(c, "Email already registered")
		return
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	owner := models.Owner{
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		Email:                  req.Email,
		Phone:                  req.Phone,
		Address:                req.Address,
		EmergencyContact:       req.EmergencyContact,
		PreferredPaymentMethod: models.PaymentMethod(req.PreferredPaymentMethod),
	}
	if err := h.DB.Create(&owner).Error; err != nil {
		utils.InternalServerError(c, "Failed to create owner: "+err.Error())
		return
	}
	utils.Created(c, "Owner created successfully", owner)
}

// ListOwners returns all owners with their pets.
func (h *OwnerHandler) ListOwners(c *gin.Context) {
	skip, limit := pagination(c)
	var owners []models.Owner
	if err := h.DB.Preload("Pets").Offset(skip).Limit(limit).Find(&owners).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Owners fetched successfully", owners)
}

// GetOwner returns a single owner with their pets.
func (h *OwnerHandler) GetOwner(c *gin.Context) {
	var owner models.Owner
	if err := h.DB.Preload("Pets").First(&owner, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Owner not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	utils.Success(c, "Owner fetched successfully", owner)
}

// UpdateOwnerRequest carries a partial update; only non-nil fields are applied.
type UpdateOwnerRequest struct {
	FirstName              *string `json:"firstName"`
	LastName               *string `json:"lastName"`
	Email                  *string `json:"email" binding:"omitempty,email"`
	Phone                  *string `json:"phone"`
	Address                *string `json:"address"`
	EmergencyContact       *string `json:"emergencyContact"`
	PreferredPaymentMethod *string `json:"preferredPaymentMethod" binding:"omitempty,oneof=cash credit debit insurance"`
}

// UpdateOwner applies a partial update to an owner.
func (h *OwnerHandler) UpdateOwner(c *gin.Context) {
	var owner models.Owner
	if err := h.DB.First(&owner, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Owner not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var req UpdateOwnerRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if req.Email != nil && *req.Email != owner.Email {
		var existing models.Owner
		if err := h.DB.Where("email = ?", *req.Email).First(&existing).Error; err == nil {
			utils.BadRequest(c, "Email already registered")
			return
		}
		owner.Email = *req.Email
	}
	if req.FirstName != nil {
		owner.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		owner.LastName = *req.LastName
	}
	if req.Phone != nil {
		owner.Phone = *req.Phone
	}
	if req.Address != nil {
		owner.Address = *req.Address
	}
	if req.EmergencyContact != nil {
		owner.EmergencyContact = *req.EmergencyContact
	}
	if req.PreferredPaymentMethod != nil {
		owner.PreferredPaymentMethod = models.PaymentMethod(*req.PreferredPaymentMethod)
	}

	if err := h.DB.Save(&owner).Error; err != nil {
		utils.InternalServerError(c, "Failed to update owner: "+err.Error())
		return
	}
	utils.Success(c, "Owner updated successfully", owner)
}

// DeleteOwner removes an owner unless they still own pets.
func (h *OwnerHandler) DeleteOwner(c *gin.Context) {
	var owner models.Owner
	if err := h.DB.First(&owner, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Owner not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var petCount int64
	if err := h.DB.Model(&models.Pet{}).Where("owner_id = ?", owner.ID).Count(&petCount).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	if petCount > 0 {
		utils.BadRequest(c, "Cannot delete owner with associated pets")
		return
	}

	if err := h.DB.Delete(&owner).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete owner: "+err.Error())
		return
	}
	utils.Success(c, "Owner deleted successfully", owner)
}

// GetOwnerPets returns the pets belonging to an owner.
func (h *OwnerHandler) GetOwnerPets(c *gin.Context) {
	ownerID := c.Param("id")
	if !h.ownerExists(c, ownerID) {
		return
	}

	var pets []models.Pet
	if err := h.DB.Where("owner_id = ?", ownerID).Find(&pets).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Pets fetched successfully", pets)
}

// GetOwnerAppointments returns all appointments of an owner's pets.
func (h *OwnerHandler) GetOwnerAppointments(c *gin.Context) {
	ownerID := c.Param("id")
	if !h.ownerExists(c, ownerID) {
		return
	}

	var appointments []models.Appointment
	if err := h.DB.
		Joins("JOIN pets ON pets.id = appointments.pet_id").
		Where("pets.owner_id = ?", ownerID).
		Preload("Pet").Preload("Veterinarian").
		Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Appointments fetched successfully", appointments)
}

func (h *OwnerHandler) ownerExists(c *gin.Context, id string) bool {
	var owner models.Owner
	if err := h.DB.Select("id").First(&owner, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Owner not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return false
	}
	return true
}
