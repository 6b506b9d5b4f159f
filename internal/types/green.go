package types

import (
	"fmt"
	"time"
)

// CalculationType names a sustainability metric. The formulas behind each
// type are evaluated by the API; the client only carries inputs and results.
type CalculationType string

const (
	CalcEnergy              CalculationType = "energy"
	CalcWater               CalculationType = "water"
	CalcWaste               CalculationType = "waste"
	CalcIndoorAirQuality    CalculationType = "indoor_air_quality"
	CalcCarbonFootprint     CalculationType = "carbon_footprint"
	CalcLifecycleAssessment CalculationType = "lifecycle_assessment"
)

// IsValid checks if the calculation type value is valid.
func (t CalculationType) IsValid() bool {
	switch t {
	case CalcEnergy, CalcWater, CalcWaste, CalcIndoorAirQuality,
		CalcCarbonFootprint, CalcLifecycleAssessment:
		return true
	}
	return false
}

// Calculation is a stored sustainability computation.
type Calculation struct {
	ID               string          `json:"id"`
	Type             CalculationType `json:"type"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	ProjectID        string          `json:"projectId,omitempty"`
	ProjectName      string          `json:"projectName,omitempty"`
	GreenProjectID   string          `json:"greenProjectId,omitempty"`
	Inputs           map[string]any  `json:"inputs"`
	Results          map[string]any  `json:"results"`
	Formula          string          `json:"formula"`
	Unit             string          `json:"unit"`
	Benchmark        float64         `json:"benchmark,omitempty"`
	Compliance       bool            `json:"compliance"`
	CalculatedBy     string          `json:"calculatedBy"`
	CalculatedByName string          `json:"calculatedByName,omitempty"`
	IsActive         bool            `json:"isActive"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// CalculationForm is the create body for stored calculations.
type CalculationForm struct {
	Type           CalculationType `json:"type" validate:"required"`
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description"`
	ProjectID      string          `json:"projectId,omitempty"`
	GreenProjectID string          `json:"greenProjectId,omitempty"`
	Inputs         map[string]any  `json:"inputs"`
	Formula        string          `json:"formula"`
	Unit           string          `json:"unit"`
	Benchmark      float64         `json:"benchmark,omitempty"`
}

// Validate checks the form before it is submitted.
func (f CalculationForm) Validate() error {
	if f.Type != "" && !f.Type.IsValid() {
		return ValidationErrors{{Field: "type", Message: fmt.Sprintf("invalid calculation type %q", f.Type)}}
	}
	return runValidate(f)
}

// EnergyInput is the request body for the energy evaluation endpoint.
type EnergyInput struct {
	BuildingArea      float64 `json:"buildingArea" validate:"gt=0"`
	EnergyConsumption float64 `json:"energyConsumption" validate:"gt=0"`
	Period            int     `json:"period" validate:"gt=0"`
	BuildingType      string  `json:"buildingType" validate:"required"`
}

// Validate checks the input before it is submitted.
func (f EnergyInput) Validate() error { return runValidate(f) }

// EnergyResult is the server-computed energy performance outcome.
type EnergyResult struct {
	EPI             float64 `json:"epi"`
	CarbonFootprint float64 `json:"carbonFootprint"`
	Benchmark       float64 `json:"benchmark"`
	Compliance      bool    `json:"compliance"`
	Unit            string  `json:"unit"`
}

// WaterInput is the request body for the water evaluation endpoint.
type WaterInput struct {
	WaterConsumption            float64 `json:"waterConsumption" validate:"gt=0"`
	Occupancy                   int     `json:"occupancy" validate:"gt=0"`
	RainwaterHarvestingCapacity float64 `json:"rainwaterHarvestingCapacity" validate:"gte=0"`
	Period                      int     `json:"period" validate:"gt=0"`
}

// Validate checks the input before it is submitted.
func (f WaterInput) Validate() error { return runValidate(f) }

// WaterResult is the server-computed water performance outcome.
type WaterResult struct {
	PerCapitaConsumption float64 `json:"perCapitaConsumption"`
	WaterSavings         float64 `json:"waterSavings"`
	Benchmark            float64 `json:"benchmark"`
	Compliance           bool    `json:"compliance"`
	Unit                 string  `json:"unit"`
}

// WasteInput is the request body for the waste evaluation endpoint.
type WasteInput struct {
	TotalWaste    float64 `json:"totalWaste" validate:"gt=0"`
	RecycledWaste float64 `json:"recycledWaste" validate:"gte=0"`
	Period        int     `json:"period" validate:"gt=0"`
}

// Validate checks the input before it is submitted.
func (f WasteInput) Validate() error { return runValidate(f) }

// WasteResult is the server-computed waste diversion outcome.
type WasteResult struct {
	WasteDiversionRate float64 `json:"wasteDiversionRate"`
	Benchmark          float64 `json:"benchmark"`
	Compliance         bool    `json:"compliance"`
	Unit               string  `json:"unit"`
}

// CertificationType names a green-building rating system.
type CertificationType string

const (
	CertIGBC  CertificationType = "IGBC"
	CertGRIHA CertificationType = "GRIHA"
	CertLEED  CertificationType = "LEED"
	CertBEE   CertificationType = "BEE"
)

// IsValid checks if the certification type value is valid.
func (t CertificationType) IsValid() bool {
	switch t {
	case CertIGBC, CertGRIHA, CertLEED, CertBEE:
		return true
	}
	return false
}

// CertificationStatus tracks a certification submission.
type CertificationStatus string

const (
	CertDraft       CertificationStatus = "draft"
	CertSubmitted   CertificationStatus = "submitted"
	CertUnderReview CertificationStatus = "under_review"
	CertApproved    CertificationStatus = "approved"
	CertRejected    CertificationStatus = "rejected"
)

// IsValid checks if the certification status value is valid.
func (s CertificationStatus) IsValid() bool {
	switch s {
	case CertDraft, CertSubmitted, CertUnderReview, CertApproved, CertRejected:
		return true
	}
	return false
}

// Consultant assigns a user to a green project role.
type Consultant struct {
	UserID       string `json:"userId"`
	UserName     string `json:"userName,omitempty"`
	Role         string `json:"role"`
	AssignedDate string `json:"assignedDate"`
}

// ChecklistItemStatus tracks one checklist entry.
type ChecklistItemStatus string

const (
	ChecklistPending    ChecklistItemStatus = "pending"
	ChecklistInProgress ChecklistItemStatus = "in_progress"
	ChecklistCompleted  ChecklistItemStatus = "completed"
)

// IsValid checks if the checklist item status value is valid.
func (s ChecklistItemStatus) IsValid() bool {
	switch s {
	case ChecklistPending, ChecklistInProgress, ChecklistCompleted:
		return true
	}
	return false
}

// ChecklistItem is one requirement within a certification checklist.
type ChecklistItem struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Status        ChecklistItemStatus `json:"status"`
	CompletedDate string              `json:"completedDate,omitempty"`
	CompletedBy   string              `json:"completedBy,omitempty"`
}

// Checklist groups certification requirements.
type Checklist struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Items       []ChecklistItem `json:"items"`
}

// CertificationCost is a fee recorded against a green project.
type CertificationCost struct {
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
	PaymentStatus string  `json:"paymentStatus"`
	PaidDate      string  `json:"paidDate,omitempty"`
}

// GreenProject is a certification effort attached to a project.
type GreenProject struct {
	ID                string              `json:"id"`
	ProjectID         string              `json:"projectId"`
	ProjectName       string              `json:"projectName,omitempty"`
	CertificationType CertificationType   `json:"certificationType"`
	Status            CertificationStatus `json:"status"`
	SubmissionDate    string              `json:"submissionDate,omitempty"`
	ReferenceNumber   string              `json:"referenceNumber,omitempty"`
	TargetRating      string              `json:"targetRating"`
	AchievedRating    string              `json:"achievedRating,omitempty"`
	Score             float64             `json:"score,omitempty"`
	Consultants       []Consultant        `json:"consultants"`
	Checklists        []Checklist         `json:"checklists"`
	Calculations      []string            `json:"calculations"`
	Narratives        []string            `json:"narratives"`
	Costs             []CertificationCost `json:"costs"`
	IsActive          bool                `json:"isActive"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

// GreenProjectForm is the create/update body for green projects.
type GreenProjectForm struct {
	ProjectID         string            `json:"projectId" validate:"required"`
	CertificationType CertificationType `json:"certificationType" validate:"required"`
	TargetRating      string            `json:"targetRating" validate:"required"`
	Consultants       []Consultant      `json:"consultants"`
}

// Validate checks the form before it is submitted.
func (f GreenProjectForm) Validate() error {
	if f.CertificationType != "" && !f.CertificationType.IsValid() {
		return ValidationErrors{{Field: "certificationType", Message: fmt.Sprintf("invalid certification type %q", f.CertificationType)}}
	}
	return runValidate(f)
}
