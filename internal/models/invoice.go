package models

import (
	"time"
)

// PaymentStatus represents the payment state of an invoice
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

// Invoice bills an appointment. AppointmentID is nullable and unique: an
// invoice may exist on its own, but an appointment carries at most one.
type Invoice struct {
	BaseModel
	AppointmentID *string       `gorm:"size:36;uniqueIndex" json:"appointmentId"`
	InvoiceNumber string        `gorm:"uniqueIndex;size:50;not null" json:"invoiceNumber"`
	IssueDate     time.Time     `gorm:"not null" json:"issueDate"`
	Subtotal      float64       `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	TaxAmount     float64       `gorm:"type:decimal(10,2);not null;default:0" json:"taxAmount"`
	TotalAmount   float64       `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	PaymentStatus PaymentStatus `gorm:"size:20;default:'pending'" json:"paymentStatus"`
	PaymentDate   *time.Time    `json:"paymentDate,omitempty"` // set when marked paid

	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}
