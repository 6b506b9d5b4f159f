package types

import (
	"fmt"
	"time"
)

// BuildingType categorizes a managed building.
type BuildingType string

const (
	BuildingResidential   BuildingType = "residential"
	BuildingCommercial    BuildingType = "commercial"
	BuildingIndustrial    BuildingType = "industrial"
	BuildingMixedUse      BuildingType = "mixed_use"
	BuildingInstitutional BuildingType = "institutional"
)

// IsValid checks if the building type value is valid.
func (t BuildingType) IsValid() bool {
	switch t {
	case BuildingResidential, BuildingCommercial, BuildingIndustrial,
		BuildingMixedUse, BuildingInstitutional:
		return true
	}
	return false
}

// Building is a managed property.
type Building struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Address             string       `json:"address"`
	Area                float64      `json:"area"`
	OrganizationID      string       `json:"organizationId"`
	FacilityManagerID   string       `json:"facilityManagerId,omitempty"`
	FacilityManagerName string       `json:"facilityManagerName,omitempty"`
	Type                BuildingType `json:"type"`
	YearBuilt           int          `json:"yearBuilt"`
	Floors              int          `json:"floors"`
	IsActive            bool         `json:"isActive"`
	Latitude            float64      `json:"latitude,omitempty"`
	Longitude           float64      `json:"longitude,omitempty"`
	CreatedAt           time.Time    `json:"createdAt"`
	UpdatedAt           time.Time    `json:"updatedAt"`
}

// BuildingForm is the create/update body for buildings.
type BuildingForm struct {
	Name              string       `json:"name" validate:"required"`
	Address           string       `json:"address" validate:"required"`
	Area              float64      `json:"area" validate:"gt=0"`
	FacilityManagerID string       `json:"facilityManagerId,omitempty"`
	Type              BuildingType `json:"type" validate:"required"`
	YearBuilt         int          `json:"yearBuilt" validate:"gt=0"`
	Floors            int          `json:"floors" validate:"gt=0"`
	Latitude          float64      `json:"latitude,omitempty"`
	Longitude         float64      `json:"longitude,omitempty"`
}

// Validate checks the form before it is submitted.
func (f BuildingForm) Validate() error {
	if f.Type != "" && !f.Type.IsValid() {
		return ValidationErrors{{Field: "type", Message: fmt.Sprintf("invalid building type %q", f.Type)}}
	}
	return runValidate(f)
}

// TenantContact holds the reachable contact details for a tenant.
type TenantContact struct {
	Email            string            `json:"email" validate:"required,email"`
	Phone            string            `json:"phone" validate:"required"`
	AlternatePhone   string            `json:"alternatePhone,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
}

// EmergencyContact is an optional escalation contact for a tenant.
type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// LeaseDetails captures the commercial terms of a tenancy.
type LeaseDetails struct {
	StartDate       string  `json:"startDate" validate:"required"`
	EndDate         string  `json:"endDate" validate:"required"`
	MonthlyRent     float64 `json:"monthlyRent" validate:"gt=0"`
	SecurityDeposit float64 `json:"securityDeposit" validate:"gte=0"`
	EscalationRate  float64 `json:"escalationRate"`
	RenewalTerms    string  `json:"renewalTerms"`
	Terms           string  `json:"terms"`
}

// Tenant is an occupant of a building unit.
type Tenant struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Contact      TenantContact `json:"contact"`
	BuildingID   string        `json:"buildingId"`
	BuildingName string        `json:"buildingName,omitempty"`
	Unit         string        `json:"unit"`
	Area         float64       `json:"area"`
	LeaseDetails LeaseDetails  `json:"leaseDetails"`
	IsActive     bool          `json:"isActive"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// TenantForm is the create/update body for tenants.
type TenantForm struct {
	Name         string        `json:"name" validate:"required"`
	Contact      TenantContact `json:"contact"`
	BuildingID   string        `json:"buildingId" validate:"required"`
	Unit         string        `json:"unit" validate:"required"`
	Area         float64       `json:"area" validate:"gt=0"`
	LeaseDetails LeaseDetails  `json:"leaseDetails"`
}

// Validate checks the form before it is submitted.
func (f TenantForm) Validate() error {
	return runValidate(f)
}

// ContractStatus tracks the lifecycle of an AMC contract.
type ContractStatus string

const (
	ContractActive         ContractStatus = "active"
	ContractExpired        ContractStatus = "expired"
	ContractPendingRenewal ContractStatus = "pending_renewal"
)

// IsValid checks if the contract status value is valid.
func (s ContractStatus) IsValid() bool {
	switch s {
	case ContractActive, ContractExpired, ContractPendingRenewal:
		return true
	}
	return false
}

// AMCContract is an annual maintenance contract with a vendor.
type AMCContract struct {
	ID                  string         `json:"id"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	StartDate           string         `json:"startDate"`
	EndDate             string         `json:"endDate"`
	VendorID            string         `json:"vendorId"`
	VendorName          string         `json:"vendorName,omitempty"`
	BuildingID          string         `json:"buildingId"`
	BuildingName        string         `json:"buildingName,omitempty"`
	Status              ContractStatus `json:"status"`
	Reminders           []string       `json:"reminders"`
	SLATerms            string         `json:"slaTerms"`
	Value               float64        `json:"value"`
	RenewalReminderDays int            `json:"renewalReminderDays"`
	IsActive            bool           `json:"isActive"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

// ContractForm is the create/update body for AMC contracts.
type ContractForm struct {
	Title               string  `json:"title" validate:"required"`
	Description         string  `json:"description"`
	StartDate           string  `json:"startDate" validate:"required"`
	EndDate             string  `json:"endDate" validate:"required"`
	VendorID            string  `json:"vendorId" validate:"required"`
	BuildingID          string  `json:"buildingId" validate:"required"`
	SLATerms            string  `json:"slaTerms"`
	Value               float64 `json:"value" validate:"gt=0"`
	RenewalReminderDays int     `json:"renewalReminderDays" validate:"gte=0"`
}

// Validate checks the form before it is submitted.
func (f ContractForm) Validate() error {
	return runValidate(f)
}

// WorkOrderStatus tracks the state of a maintenance work order.
type WorkOrderStatus string

const (
	WorkOrderOpen          WorkOrderStatus = "open"
	WorkOrderInProgress    WorkOrderStatus = "in_progress"
	WorkOrderAwaitingParts WorkOrderStatus = "awaiting_parts"
	WorkOrderCompleted     WorkOrderStatus = "completed"
	WorkOrderClosed        WorkOrderStatus = "closed"
)

// IsValid checks if the work order status value is valid.
func (s WorkOrderStatus) IsValid() bool {
	switch s {
	case WorkOrderOpen, WorkOrderInProgress, WorkOrderAwaitingParts,
		WorkOrderCompleted, WorkOrderClosed:
		return true
	}
	return false
}

// Priority is the shared urgency scale for work orders, projects and tasks.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsValid checks if the priority value is valid.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// WorkOrderCategory classifies the trade a work order belongs to.
type WorkOrderCategory string

const (
	WorkCategoryElectrical  WorkOrderCategory = "electrical"
	WorkCategoryPlumbing    WorkOrderCategory = "plumbing"
	WorkCategoryHVAC        WorkOrderCategory = "hvac"
	WorkCategoryStructural  WorkOrderCategory = "structural"
	WorkCategoryCleaning    WorkOrderCategory = "cleaning"
	WorkCategoryLandscaping WorkOrderCategory = "landscaping"
	WorkCategorySecurity    WorkOrderCategory = "security"
	WorkCategoryOther       WorkOrderCategory = "other"
)

// IsValid checks if the work order category value is valid.
func (c WorkOrderCategory) IsValid() bool {
	switch c {
	case WorkCategoryElectrical, WorkCategoryPlumbing, WorkCategoryHVAC,
		WorkCategoryStructural, WorkCategoryCleaning, WorkCategoryLandscaping,
		WorkCategorySecurity, WorkCategoryOther:
		return true
	}
	return false
}

// WorkOrderPhoto is an image attached to a work order.
type WorkOrderPhoto struct {
	URL        string    `json:"url"`
	Caption    string    `json:"caption"`
	UploadedAt time.Time `json:"uploadedAt"`
	UploadedBy string    `json:"uploadedBy"`
}

// PartUsed records inventory consumed while executing a work order.
type PartUsed struct {
	InventoryItemID   string    `json:"inventoryItemId"`
	InventoryItemName string    `json:"inventoryItemName,omitempty"`
	Quantity          float64   `json:"quantity"`
	AddedAt           time.Time `json:"addedAt"`
	AddedBy           string    `json:"addedBy"`
}

// StatusChange is one entry in a work order's status history.
type StatusChange struct {
	Status    WorkOrderStatus `json:"status"`
	ChangedAt time.Time       `json:"changedAt"`
	ChangedBy string          `json:"changedBy"`
	Notes     string          `json:"notes"`
}

// WorkOrder is a unit of maintenance work assigned to a technician or vendor.
type WorkOrder struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	BuildingID        string            `json:"buildingId"`
	BuildingName      string            `json:"buildingName,omitempty"`
	AssignedTo        string            `json:"assignedTo"`
	AssignedToName    string            `json:"assignedToName,omitempty"`
	AssignedBy        string            `json:"assignedBy"`
	AssignedByName    string            `json:"assignedByName,omitempty"`
	Priority          Priority          `json:"priority"`
	Status            WorkOrderStatus   `json:"status"`
	Category          WorkOrderCategory `json:"category"`
	EstimatedDuration float64           `json:"estimatedDuration"`
	ActualDuration    float64           `json:"actualDuration"`
	ScheduledDate     string            `json:"scheduledDate"`
	CompletedDate     string            `json:"completedDate,omitempty"`
	AMCContractID     string            `json:"amcContractId,omitempty"`
	AMCContractTitle  string            `json:"amcContractTitle,omitempty"`
	Location          string            `json:"location"`
	Photos            []WorkOrderPhoto  `json:"photos"`
	PartsUsed         []PartUsed        `json:"partsUsed"`
	Cost              float64           `json:"cost"`
	StatusHistory     []StatusChange    `json:"statusHistory"`
	Tags              []string          `json:"tags"`
	IsActive          bool              `json:"isActive"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// WorkOrderForm is the create/update body for work orders.
type WorkOrderForm struct {
	Title             string            `json:"title" validate:"required"`
	Description       string            `json:"description"`
	BuildingID        string            `json:"buildingId" validate:"required"`
	AssignedTo        string            `json:"assignedTo" validate:"required"`
	Priority          Priority          `json:"priority" validate:"required"`
	Category          WorkOrderCategory `json:"category" validate:"required"`
	EstimatedDuration float64           `json:"estimatedDuration" validate:"gte=0"`
	ScheduledDate     string            `json:"scheduledDate" validate:"required"`
	AMCContractID     string            `json:"amcContractId,omitempty"`
	Location          string            `json:"location"`
	Tags              []string          `json:"tags"`
}

// Validate checks the form before it is submitted.
func (f WorkOrderForm) Validate() error {
	if f.Priority != "" && !f.Priority.IsValid() {
		return ValidationErrors{{Field: "priority", Message: fmt.Sprintf("invalid priority %q", f.Priority)}}
	}
	if f.Category != "" && !f.Category.IsValid() {
		return ValidationErrors{{Field: "category", Message: fmt.Sprintf("invalid category %q", f.Category)}}
	}
	return runValidate(f)
}

// InventoryCategory classifies stocked items.
type InventoryCategory string

const (
	InventoryElectrical InventoryCategory = "electrical"
	InventoryPlumbing   InventoryCategory = "plumbing"
	InventoryHVAC       InventoryCategory = "hvac"
	InventorySafety     InventoryCategory = "safety"
	InventoryCleaning   InventoryCategory = "cleaning"
	InventoryTools      InventoryCategory = "tools"
	InventoryOther      InventoryCategory = "other"
)

// IsValid checks if the inventory category value is valid.
func (c InventoryCategory) IsValid() bool {
	switch c {
	case InventoryElectrical, InventoryPlumbing, InventoryHVAC,
		InventorySafety, InventoryCleaning, InventoryTools, InventoryOther:
		return true
	}
	return false
}

// InventoryItem is a stocked spare or consumable tracked per building.
type InventoryItem struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Quantity        float64           `json:"quantity"`
	ReorderPoint    float64           `json:"reorderPoint"`
	Unit            string            `json:"unit"`
	Category        InventoryCategory `json:"category"`
	BuildingID      string            `json:"buildingId"`
	BuildingName    string            `json:"buildingName,omitempty"`
	VendorID        string            `json:"vendorId,omitempty"`
	VendorName      string            `json:"vendorName,omitempty"`
	Location        string            `json:"location"`
	PurchasePrice   float64           `json:"purchasePrice"`
	LastRestockDate string            `json:"lastRestockDate,omitempty"`
	IsActive        bool              `json:"isActive"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// InventoryForm is the create/update body for inventory items.
type InventoryForm struct {
	Name          string            `json:"name" validate:"required"`
	Description   string            `json:"description"`
	Quantity      float64           `json:"quantity" validate:"gte=0"`
	ReorderPoint  float64           `json:"reorderPoint" validate:"gte=0"`
	Unit          string            `json:"unit" validate:"required"`
	Category      InventoryCategory `json:"category" validate:"required"`
	BuildingID    string            `json:"buildingId" validate:"required"`
	VendorID      string            `json:"vendorId,omitempty"`
	Location      string            `json:"location"`
	PurchasePrice float64           `json:"purchasePrice" validate:"gte=0"`
}

// Validate checks the form before it is submitted.
func (f InventoryForm) Validate() error {
	if f.Category != "" && !f.Category.IsValid() {
		return ValidationErrors{{Field: "category", Message: fmt.Sprintf("invalid category %q", f.Category)}}
	}
	return runValidate(f)
}
