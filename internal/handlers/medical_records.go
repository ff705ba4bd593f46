package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vetclinic-server/internal/models"
	"vetclinic-server/internal/utils"
)

// MedicalRecordHandler handles medical record requests.
type MedicalRecordHandler struct {
	DB *gorm.DB
}

// NewMedicalRecordHandler creates a new MedicalRecordHandler.
func NewMedicalRecordHandler(db *gorm.DB) *MedicalRecordHandler {
	return &MedicalRecordHandler{DB: db}
}

// CreateMedicalRecordRequest represents the request body for writing a
// medical record.
type CreateMedicalRecordRequest struct {
	AppointmentID    string `json:"appointmentId" binding:"required,uuid"`
	Diagnosis        string `json:"diagnosis" binding:"required"`
	Treatment        string `json:"treatment" binding:"required"`
	Prescription     string `json:"prescription"`
	FollowUpRequired bool   `json:"followUpRequired"`
}

// CreateMedicalRecord writes the record for a completed appointment. An
// appointment carries at most one record.
func (h *MedicalRecordHandler) CreateMedicalRecord(c *gin.Context) {
	var req CreateMedicalRecordRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", req.AppointmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if appointment.Status != models.StatusCompleted {
		utils.BadRequest(c, "Cannot create medical record for an appointment that is not completed")
		return
	}

	var existing models.MedicalRecord
	if err := h.DB.Where("appointment_id = ?", req.AppointmentID).First(&existing).Error; err == nil {
		utils.BadRequest(c, "A medical record already exists for this appointment")
		return
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	record := models.MedicalRecord{
		AppointmentID:    req.AppointmentID,
		Diagnosis:        req.Diagnosis,
		Treatment:        req.Treatment,
		Prescription:     req.Prescription,
		FollowUpRequired: req.FollowUpRequired,
	}
	if err := h.DB.Create(&record).Error; err != nil {
		utils.InternalServerError(c, "Failed to create medical record: "+err.Error())
		return
	}
	utils.Created(c, "Medical record created successfully", record)
}

// ListMedicalRecords returns medical records.
func (h *MedicalRecordHandler) ListMedicalRecords(c *gin.Context) {
	skip, limit := pagination(c)
	var records []models.MedicalRecord
	if err := h.DB.Offset(skip).Limit(limit).Find(&records).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Medical records fetched successfully", records)
}

// GetMedicalRecord returns a single medical record.
func (h *MedicalRecordHandler) GetMedicalRecord(c *gin.Context) {
	var record models.MedicalRecord
	if err := h.DB.First(&record, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Medical record not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	utils.Success(c, "Medical record fetched successfully", record)
}

// UpdateMedicalRecordRequest carries a partial update; only non-nil fields
// are applied. The appointment link is immutable.
type UpdateMedicalRecordRequest struct {
	Diagnosis        *string `json:"diagnosis"`
	Treatment        *string `json:"treatment"`
	Prescription     *string `json:"prescription"`
	FollowUpRequired *bool   `json:"followUpRequired"`
}

// UpdateMedicalRecord applies a partial update to a medical record.
func (h *MedicalRecordHandler) UpdateMedicalRecord(c *gin.Context) {
	var record models.MedicalRecord
	if err := h.DB.First(&record, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Medical record not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var req UpdateMedicalRecordRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if req.Diagnosis != nil {
		record.Diagnosis = *req.Diagnosis
	}
	if req.Treatment != nil {
		record.Treatment = *req.Treatment
	}
	if req.Prescription != nil {
		record.Prescription = *req.Prescription
	}
	if req.FollowUpRequired != nil {
		record.FollowUpRequired = *req.FollowUpRequired
	}

	if err := h.DB.Save(&record).Error; err != nil {
		utils.InternalServerError(c, "Failed to update medical record: "+err.Error())
		return
	}
	utils.Success(c, "Medical record updated successfully", record)
}
