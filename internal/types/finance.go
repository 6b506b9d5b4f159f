package types

import (
	"fmt"
	"time"
)

// InvoiceStatus tracks an invoice through its payment lifecycle.
type InvoiceStatus string

const (
	InvoiceDraft         InvoiceStatus = "draft"
	InvoicePending       InvoiceStatus = "pending"
	InvoicePartiallyPaid InvoiceStatus = "partially_paid"
	InvoicePaid          InvoiceStatus = "paid"
	InvoiceOverdue       InvoiceStatus = "overdue"
)

// IsValid checks if the invoice status value is valid.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoicePending, InvoicePartiallyPaid, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}

// RecurringFrequency is the cadence of a recurring invoice.
type RecurringFrequency string

const (
	RecurringMonthly    RecurringFrequency = "monthly"
	RecurringQuarterly  RecurringFrequency = "quarterly"
	RecurringHalfYearly RecurringFrequency = "half_yearly"
	RecurringYearly     RecurringFrequency = "yearly"
)

// IsValid checks if the recurring frequency value is valid.
func (f RecurringFrequency) IsValid() bool {
	switch f {
	case RecurringMonthly, RecurringQuarterly, RecurringHalfYearly, RecurringYearly:
		return true
	}
	return false
}

// PaymentMethod is how a payment was settled.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCheque       PaymentMethod = "cheque"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentUPI          PaymentMethod = "upi"
	PaymentCard         PaymentMethod = "card"
)

// IsValid checks if the payment method value is valid.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCheque, PaymentBankTransfer, PaymentUPI, PaymentCard:
		return true
	}
	return false
}

// BillingPeriod is the span an invoice covers.
type BillingPeriod struct {
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

// InvoiceItem is a billed row on an invoice.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Payment is a settlement recorded against an invoice.
type Payment struct {
	ID        string        `json:"id"`
	Amount    float64       `json:"amount"`
	Method    PaymentMethod `json:"method"`
	Reference string        `json:"reference"`
	Notes     string        `json:"notes"`
	PaidAt    time.Time     `json:"paidAt"`
	PaidBy    string        `json:"paidBy"`
}

// Invoice bills a tenant for a period.
type Invoice struct {
	ID                 string             `json:"id"`
	InvoiceNumber      string             `json:"invoiceNumber"`
	TenantID           string             `json:"tenantId"`
	TenantName         string             `json:"tenantName,omitempty"`
	BuildingID         string             `json:"buildingId"`
	BuildingName       string             `json:"buildingName,omitempty"`
	BillingPeriod      BillingPeriod      `json:"billingPeriod"`
	Items              []InvoiceItem      `json:"items"`
	Subtotal           float64            `json:"subtotal"`
	Tax                float64            `json:"tax"`
	Total              float64            `json:"total"`
	DueDate            string             `json:"dueDate"`
	Status             InvoiceStatus      `json:"status"`
	Payments           []Payment          `json:"payments"`
	IsRecurring        bool               `json:"isRecurring"`
	RecurringFrequency RecurringFrequency `json:"recurringFrequency,omitempty"`
	ParentInvoice      string             `json:"parentInvoice,omitempty"`
	Notes              string             `json:"notes"`
	IsActive           bool               `json:"isActive"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// InvoiceForm is the create/update body for invoices.
type InvoiceForm struct {
	TenantID           string             `json:"tenantId" validate:"required"`
	BillingPeriod      BillingPeriod      `json:"billingPeriod"`
	Items              []InvoiceItem      `json:"items" validate:"min=1"`
	DueDate            string             `json:"dueDate" validate:"required"`
	IsRecurring        bool               `json:"isRecurring"`
	RecurringFrequency RecurringFrequency `json:"recurringFrequency,omitempty"`
	ParentInvoice      string             `json:"parentInvoice,omitempty"`
	Notes              string             `json:"notes"`
}

// Validate checks the form before it is submitted.
func (f InvoiceForm) Validate() error {
	if f.IsRecurring && !f.RecurringFrequency.IsValid() {
		return ValidationErrors{{Field: "recurringFrequency", Message: "is required for recurring invoices"}}
	}
	return runValidate(f)
}

// PaymentForm is the body for the add-payment action.
type PaymentForm struct {
	Amount    float64       `json:"amount" validate:"gt=0"`
	Method    PaymentMethod `json:"method" validate:"required"`
	Reference string        `json:"reference"`
	Notes     string        `json:"notes"`
}

// Validate checks the form before it is submitted.
func (f PaymentForm) Validate() error {
	if f.Method != "" && !f.Method.IsValid() {
		return ValidationErrors{{Field: "method", Message: fmt.Sprintf("invalid payment method %q", f.Method)}}
	}
	return runValidate(f)
}
