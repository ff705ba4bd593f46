package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vetclinic-server/internal/models"
	"vetclinic-server/internal/utils"
)

// InvoiceHandler handles invoice requests.
type InvoiceHandler struct {
	DB *gorm.DB
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(db *gorm.DB) *InvoiceHandler {
	return &InvoiceHandler{DB: db}
}

// CreateInvoiceRequest represents the request body for issuing an invoice.
// The appointment link is optional; an appointment carries at most one
// invoice.
type CreateInvoiceRequest struct {
	AppointmentID *string    `json:"appointmentId" binding:"omitempty,uuid"`
	InvoiceNumber string     `json:"invoiceNumber" binding:"required"`
	IssueDate     *time.Time `json:"issueDate"`
	Subtotal      float64    `json:"subtotal" binding:"required,gte=0"`
	TaxAmount     float64    `json:"taxAmount" binding:"gte=0"`
	TotalAmount   float64    `json:"totalAmount" binding:"required,gte=0"`
}

// CreateInvoice issues a new invoice.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if req.AppointmentID != nil {
		var appointment models.Appointment
		if err := h.DB.First(&appointment, "id = ?", *req.AppointmentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				utils.NotFound(c, "Appointment not found")
			} else {
				utils.InternalServerError(c, "Database error: "+err.Error())
			}
			return
		}
		var existing models.Invoice
		if err := h.DB.Where("appointment_id = ?", *req.AppointmentID).First(&existing).Error; err == nil {
			utils.BadRequest(c, "An invoice already exists for this appointment")
			return
		} else if err != gorm.ErrRecordNotFound {
			utils.InternalServerError(c, "Database error: "+err.Error())
			return
		}
	}

	var dup models.Invoice
	if err := h.DB.Where("invoice_number = ?", req.InvoiceNumber).First(&dup).Error; err == nil {
		utils.BadRequest(c, "Invoice number already registered")
		return
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	issueDate := time.Now()
	if req.IssueDate != nil {
		issueDate = *req.IssueDate
	}

	invoice := models.Invoice{
		AppointmentID: req.AppointmentID,
		InvoiceNumber: req.InvoiceNumber,
		IssueDate:     issueDate,
		Subtotal:      req.Subtotal,
		TaxAmount:     req.TaxAmount,
		TotalAmount:   req.TotalAmount,
		PaymentStatus: models.PaymentPending,
	}
	if err := h.DB.Create(&invoice).Error; err != nil {
		utils.InternalServerError(c, "Failed to create invoice: "+err.Error())
		return
	}
	utils.Created(c, "Invoice created successfully", invoice)
}

// ListInvoices returns invoices, most recently issued first.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	skip, limit := pagination(c)
	var invoices []models.Invoice
	if err := h.DB.Preload("Appointment").Preload("Appointment.Pet").
		Order("issue_date desc").
		Offset(skip).Limit(limit).
		Find(&invoices).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Invoices fetched successfully", invoices)
}

// ListPendingInvoices returns invoices awaiting payment (pending or overdue).
func (h *InvoiceHandler) ListPendingInvoices(c *gin.Context) {
	skip, limit := pagination(c)
	var invoices []models.Invoice
	if err := h.DB.
		Where("payment_status IN ?", []models.PaymentStatus{models.PaymentPending, models.PaymentOverdue}).
		Order("issue_date desc").
		Offset(skip).Limit(limit).
		Find(&invoices).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Pending invoices fetched successfully", invoices)
}

// GetInvoice returns a single invoice.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	var invoice models.Invoice
	if err := h.DB.Preload("Appointment").Preload("Appointment.Pet").
		First(&invoice, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Invoice not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	utils.Success(c, "Invoice fetched successfully", invoice)
}

// PayInvoice marks an invoice paid and stamps the payment time. Paying twice
// is refused and leaves the payment date untouched.
func (h *InvoiceHandler) PayInvoice(c *gin.Context) {
	var invoice models.Invoice
	if err := h.DB.First(&invoice, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Invoice not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if invoice.PaymentStatus == models.PaymentPaid {
		utils.BadRequest(c, "Invoice is already paid")
		return
	}

	now := time.Now()
	invoice.PaymentStatus = models.PaymentPaid
	invoice.PaymentDate = &now
	if err := h.DB.Save(&invoice).Error; err != nil {
		utils.InternalServerError(c, "Failed to update invoice: "+err.Error())
		return
	}
	utils.Success(c, "Invoice paid successfully", invoice)
}

// UpdateInvoiceRequest carries a partial update.
type UpdateInvoiceRequest struct {
	InvoiceNumber *string    `json:"invoiceNumber"`
	IssueDate     *time.Time `json:"issueDate"`
	Subtotal      *float64   `json:"subtotal" binding:"omitempty,gte=0"`
	TaxAmount     *float64   `json:"taxAmount" binding:"omitempty,gte=0"`
	TotalAmount   *float64   `json:"totalAmount" binding:"omitempty,gte=0"`
	PaymentStatus *string    `json:"paymentStatus" binding:"omitempty,oneof=pending partial paid overdue"`
}

// UpdateInvoice applies a partial update to an invoice.
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var invoice models.Invoice
	if err := h.DB.First(&invoice, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Invoice not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var req UpdateInvoiceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if req.InvoiceNumber != nil && *req.InvoiceNumber != invoice.InvoiceNumber {
		var existing models.Invoice
		if err := h.DB.Where("invoice_number = ?", *req.InvoiceNumber).First(&existing).Error; err == nil {
			utils.BadRequest(c, "Invoice number already registered")
			return
		}
		invoice.InvoiceNumber = *req.InvoiceNumber
	}
	if req.IssueDate != nil {
		invoice.IssueDate = *req.IssueDate
	}
	if req.Subtotal != nil {
		invoice.Subtotal = *req.Subtotal
	}
	if req.TaxAmount != nil {
		invoice.TaxAmount = *req.TaxAmount
	}
	if req.TotalAmount != nil {
		invoice.TotalAmount = *req.TotalAmount
	}
	if req.PaymentStatus != nil {
		invoice.PaymentStatus = models.PaymentStatus(*req.PaymentStatus)
	}

	if err := h.DB.Save(&invoice).Error; err != nil {
		utils.InternalServerError(c, "Failed to update invoice: "+err.Error())
		return
	}
	utils.Success(c, "Invoice updated successfully", invoice)
}

// DeleteInvoice removes an invoice.
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	var invoice models.Invoice
	if err := h.DB.First(&invoice, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Invoice not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&invoice).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete invoice: "+err.Error())
		return
	}
	utils.Success(c, "Invoice deleted successfully", invoice)
}
