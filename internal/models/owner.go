package models

// PaymentMethod is the owner's preferred way of paying.
type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "cash"
	PaymentCredit    PaymentMethod = "credit"
	PaymentDebit     PaymentMethod = "debit"
	PaymentInsurance PaymentMethod = "insurance"
)

// Owner represents a pet owner.
type Owner struct {
	BaseModel
	FirstName              string        `gorm:"size:100;not null" json:"firstName"`
	LastName               string        `gorm:"size:100;not null" json:"lastName"`
	Email                  string        `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone                  string        `gorm:"size:30" json:"phone,omitempty"`
	Address                string        `gorm:"type:text" json:"address,omitempty"`
	EmergencyContact       string        `gorm:"size:30" json:"emergencyContact,omitempty"`
	PreferredPaymentMethod PaymentMethod `gorm:"size:20" json:"preferredPaymentMethod,omitempty"`

	Pets []Pet `gorm:"foreignKey:OwnerID" json:"pets,omitempty"`
}
