package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vetclinic-server/internal/models"
	"vetclinic-server/internal/scheduling"
	"vetclinic-server/internal/utils"
)

// AppointmentHandler handles appointment requests, including the derived
// counter maintenance on the pet and veterinarian rows.
type AppointmentHandler struct {
	DB *gorm.DB
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(db *gorm.DB) *AppointmentHandler {
	return &AppointmentHandler{DB: db}
}

// CreateAppointmentRequest represents the request body for creating an
// appointment. A missing petId books an emergency walk-in.
type CreateAppointmentRequest struct {
	PetID           *string   `json:"petId" binding:"omitempty,uuid"`
	VeterinarianID  string    `json:"veterinarianId" binding:"required,uuid"`
	AppointmentDate time.Time `json:"appointmentDate" binding:"required"`
	Reason          string    `json:"reason"`
	Notes           string    `json:"notes"`
}

// CreateAppointment books an appointment. In one transaction it persists the
// row, bumps the pet's visit_count and last_visit_date (when a pet is
// attached), and bumps the veterinarian's total_appointments. The slot is
// first checked against the veterinarian's open appointments.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var vet models.Veterinarian
	if err := h.DB.First(&vet, "id = ?", req.VeterinarianID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Veterinarian with id "+req.VeterinarianID+" not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var pet *models.Pet
	if req.PetID != nil {
		var p models.Pet
		if err := h.DB.First(&p, "id = ?", *req.PetID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				utils.NotFound(c, "Pet with id "+*req.PetID+" not found")
			} else {
				utils.InternalServerError(c, "Database error: "+err.Error())
			}
			return
		}
		pet = &p
	}

	// Advisory double-booking check: a read-then-write scan with no
	// serialization against concurrent requests.
	var openStarts []time.Time
	if err := h.DB.Model(&models.Appointment{}).
		Where("veterinarian_id = ? AND status NOT IN ?", vet.ID, models.TerminalStatuses).
		Pluck("appointment_date", &openStarts).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	if taken, conflict := scheduling.FindConflict(req.AppointmentDate, openStarts); conflict {
		utils.BadRequest(c, "Scheduling conflict: veterinarian already has an appointment at "+
			taken.Format(time.RFC3339))
		return
	}

	appointment := models.Appointment{
		PetID:           req.PetID,
		VeterinarianID:  req.VeterinarianID,
		AppointmentDate: req.AppointmentDate,
		Reason:          req.Reason,
		Notes:           req.Notes,
		Status:          models.StatusScheduled,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&appointment).Error; err != nil {
			return err
		}
		if req.PetID != nil {
			visitDate := startOfDay(req.AppointmentDate)
			if err := tx.Model(&models.Pet{}).Where("id = ?", *req.PetID).
				Updates(map[string]interface{}{
					"visit_count":     gorm.Expr("visit_count + ?", 1),
					"last_visit_date": visitDate,
				}).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Veterinarian{}).Where("id = ?", req.VeterinarianID).
			Update("total_appointments", gorm.Expr("total_appointments + ?", 1)).Error
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to create appointment: "+err.Error())
		return
	}

	appointment.Pet = pet
	appointment.Veterinarian = &vet
	utils.Created(c, "Appointment created successfully", appointment)
}

// ListAppointments returns appointments, newest first.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	skip, limit := pagination(c)
	var appointments []models.Appointment
	if err := h.DB.Preload("Pet").Preload("Veterinarian").
		Order("appointment_date desc").
		Offset(skip).Limit(limit).
		Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Appointments fetched successfully", appointments)
}

// ListAppointmentsToday returns the appointments scheduled for today.
func (h *AppointmentHandler) ListAppointmentsToday(c *gin.Context) {
	today := startOfDay(time.Now())
	var appointments []models.Appointment
	if err := h.DB.Preload("Pet").Preload("Veterinarian").
		Where("appointment_date >= ? AND appointment_date < ?", today, today.AddDate(0, 0, 1)).
		Order("appointment_date asc").
		Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Appointments fetched successfully", appointments)
}

// ListPendingAppointments returns all appointments still in scheduled status.
func (h *AppointmentHandler) ListPendingAppointments(c *gin.Context) {
	var appointments []models.Appointment
	if err := h.DB.Preload("Pet").Preload("Veterinarian").
		Where("status = ?", models.StatusScheduled).
		Order("appointment_date asc").
		Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetAppointment returns one appointment with its related rows.
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := h.DB.Preload("Pet").Preload("Veterinarian").
		Preload("MedicalRecord").Preload("Invoice").
		First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	utils.Success(c, "Appointment fetched successfully", appointment)
}

// UpdateAppointmentRequest carries a partial update. Counter maintenance is
// tied to creation and deletion only, so changing fields here moves no
// counters.
type UpdateAppointmentRequest struct {
	PetID           *string    `json:"petId" binding:"omitempty,uuid"`
	VeterinarianID  *string    `json:"veterinarianId" binding:"omitempty,uuid"`
	AppointmentDate *time.Time `json:"appointmentDate"`
	Reason          *string    `json:"reason"`
	Notes           *string    `json:"notes"`
	Status          *string    `json:"status" binding:"omitempty,oneof=scheduled completed cancelled no_show"`
}

// UpdateAppointment applies a partial update to an appointment.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var req UpdateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if req.PetID != nil && (appointment.PetID == nil || *req.PetID != *appointment.PetID) {
		var pet models.Pet
		if err := h.DB.First(&pet, "id = ?", *req.PetID).Error; err != nil {
			utils.BadRequest(c, "Pet with id "+*req.PetID+" not found")
			return
		}
		appointment.PetID = req.PetID
	}
	if req.VeterinarianID != nil && *req.VeterinarianID != appointment.VeterinarianID {
		var vet models.Veterinarian
		if err := h.DB.First(&vet, "id = ?", *req.VeterinarianID).Error; err != nil {
			utils.BadRequest(c, "Veterinarian with id "+*req.VeterinarianID+" not found")
			return
		}
		appointment.VeterinarianID = *req.VeterinarianID
	}
	if req.AppointmentDate != nil {
		appointment.AppointmentDate = *req.AppointmentDate
	}
	if req.Reason != nil {
		appointment.Reason = *req.Reason
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}
	if req.Status != nil {
		appointment.Status = models.AppointmentStatus(*req.Status)
	}

	if err := h.DB.Save(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to update appointment: "+err.Error())
		return
	}
	utils.Success(c, "Appointment updated successfully", appointment)
}

// CompleteAppointment marks an appointment completed, making it eligible for
// a medical record.
func (h *AppointmentHandler) CompleteAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	appointment.Status = models.StatusCompleted
	if err := h.DB.Save(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to update appointment: "+err.Error())
		return
	}
	utils.Success(c, "Appointment completed", appointment)
}

// CancelAppointment cancels a booking by removing the row and rolling the
// derived counters back, same as deletion.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	h.removeAppointment(c, "Appointment cancelled")
}

// DeleteAppointment removes an appointment and decrements the derived
// counters, each floored at zero. The medical record cascades away and the
// invoice link nulls out at the schema level.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	h.removeAppointment(c, "Appointment deleted successfully")
}

func (h *AppointmentHandler) removeAppointment(c *gin.Context, message string) {
	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if appointment.PetID != nil {
			if err := tx.Model(&models.Pet{}).Where("id = ?", *appointment.PetID).
				Update("visit_count", gorm.Expr("GREATEST(visit_count - ?, 0)", 1)).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&models.Veterinarian{}).Where("id = ?", appointment.VeterinarianID).
			Update("total_appointments", gorm.Expr("GREATEST(total_appointments - ?, 0)", 1)).Error; err != nil {
			return err
		}
		return tx.Delete(&appointment).Error
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to delete appointment: "+err.Error())
		return
	}
	utils.Success(c, message, appointment)
}
