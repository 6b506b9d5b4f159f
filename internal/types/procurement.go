package types

import (
	"fmt"
	"time"
)

// VendorContact holds the commercial contact details for a vendor.
type VendorContact struct {
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	AlternatePhone string `json:"alternatePhone,omitempty"`
	ContactPerson  string `json:"contactPerson" validate:"required"`
	Designation    string `json:"designation"`
}

// BankDetails holds a vendor's settlement account.
type BankDetails struct {
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
	IFSCCode      string `json:"ifscCode"`
	Branch        string `json:"branch"`
}

// VendorPerformance aggregates delivery history for a vendor.
type VendorPerformance struct {
	TotalJobs      int       `json:"totalJobs"`
	CompletedJobs  int       `json:"completedJobs"`
	OnTimeDelivery float64   `json:"onTimeDelivery"`
	QualityRating  float64   `json:"qualityRating"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// Vendor is a registered supplier or service provider.
type Vendor struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Contact        VendorContact     `json:"contact"`
	Address        string            `json:"address"`
	Category       []string          `json:"category"`
	Services       []string          `json:"services"`
	OrganizationID string            `json:"organizationId"`
	GSTNumber      string            `json:"gstNumber"`
	PANNumber      string            `json:"panNumber"`
	BankDetails    BankDetails       `json:"bankDetails"`
	Rating         float64           `json:"rating"`
	Performance    VendorPerformance `json:"performance"`
	Contracts      []string          `json:"contracts"`
	IsActive       bool              `json:"isActive"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// VendorForm is the create/update body for vendors.
type VendorForm struct {
	Name        string        `json:"name" validate:"required"`
	Contact     VendorContact `json:"contact"`
	Address     string        `json:"address" validate:"required"`
	Category    []string      `json:"category" validate:"min=1"`
	Services    []string      `json:"services"`
	GSTNumber   string        `json:"gstNumber"`
	PANNumber   string        `json:"panNumber"`
	BankDetails BankDetails   `json:"bankDetails"`
}

// Validate checks the form before it is submitted.
func (f VendorForm) Validate() error {
	return runValidate(f)
}

// ProductCategory classifies catalog products.
type ProductCategory string

const (
	ProductHVAC              ProductCategory = "hvac"
	ProductLighting          ProductCategory = "lighting"
	ProductPlumbing          ProductCategory = "plumbing"
	ProductElectrical        ProductCategory = "electrical"
	ProductBuildingMaterials ProductCategory = "building_materials"
	ProductRenewableEnergy   ProductCategory = "renewable_energy"
	ProductWaterManagement   ProductCategory = "water_management"
	ProductWasteManagement   ProductCategory = "waste_management"
	ProductOther             ProductCategory = "other"
)

// IsValid checks if the product category value is valid.
func (c ProductCategory) IsValid() bool {
	switch c {
	case ProductHVAC, ProductLighting, ProductPlumbing, ProductElectrical,
		ProductBuildingMaterials, ProductRenewableEnergy,
		ProductWaterManagement, ProductWasteManagement, ProductOther:
		return true
	}
	return false
}

// Discount is a quantity break on a product's base price.
type Discount struct {
	MinQuantity float64 `json:"minQuantity"`
	Percentage  float64 `json:"percentage"`
}

// ProductPricing holds list pricing for a product.
type ProductPricing struct {
	BasePrice float64    `json:"basePrice"`
	Currency  string     `json:"currency"`
	Unit      string     `json:"unit"`
	Discounts []Discount `json:"discounts,omitempty"`
}

// Product is a vendor catalog entry.
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	VendorID       string          `json:"vendorId"`
	VendorName     string          `json:"vendorName,omitempty"`
	Category       ProductCategory `json:"category"`
	Subcategory    string          `json:"subcategory"`
	Specifications map[string]any  `json:"specifications"`
	Certifications []string        `json:"certifications"`
	Images         []string        `json:"images"`
	Datasheet      string          `json:"datasheet,omitempty"`
	Pricing        ProductPricing  `json:"pricing"`
	Availability   string          `json:"availability"`
	Tags           []string        `json:"tags"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ProductForm is the create/update body for products.
type ProductForm struct {
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description"`
	VendorID       string          `json:"vendorId" validate:"required"`
	Category       ProductCategory `json:"category" validate:"required"`
	Subcategory    string          `json:"subcategory"`
	Specifications map[string]any  `json:"specifications"`
	Certifications []string        `json:"certifications"`
	Pricing        ProductPricing  `json:"pricing"`
	Availability   string          `json:"availability"`
	Tags           []string        `json:"tags"`
}

// Validate checks the form before it is submitted.
func (f ProductForm) Validate() error {
	if f.Category != "" && !f.Category.IsValid() {
		return ValidationErrors{{Field: "category", Message: fmt.Sprintf("invalid category %q", f.Category)}}
	}
	return runValidate(f)
}

// LineItem is a priced row shared by BOQs and bids.
type LineItem struct {
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// BOQStatus tracks a bill of quantities through procurement.
type BOQStatus string

const (
	BOQDraft              BOQStatus = "draft"
	BOQApproved           BOQStatus = "approved"
	BOQSentForProcurement BOQStatus = "sent_for_procurement"
	BOQOrdered            BOQStatus = "ordered"
)

// IsValid checks if the BOQ status value is valid.
func (s BOQStatus) IsValid() bool {
	switch s {
	case BOQDraft, BOQApproved, BOQSentForProcurement, BOQOrdered:
		return true
	}
	return false
}

// BOQ is a bill of quantities for a project.
type BOQ struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	ProjectID      string     `json:"projectId"`
	ProjectName    string     `json:"projectName,omitempty"`
	Items          []LineItem `json:"items"`
	Subtotal       float64    `json:"subtotal"`
	Tax            float64    `json:"tax"`
	Total          float64    `json:"total"`
	Currency       string     `json:"currency"`
	Status         BOQStatus  `json:"status"`
	ApprovedBy     string     `json:"approvedBy,omitempty"`
	ApprovedByName string     `json:"approvedByName,omitempty"`
	ApprovedDate   string     `json:"approvedDate,omitempty"`
	Version        int        `json:"version"`
	ParentBOQ      string     `json:"parentBOQ,omitempty"`
	Notes          string     `json:"notes"`
	IsActive       bool       `json:"isActive"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// BOQForm is the create/update body for BOQs.
type BOQForm struct {
	Name      string     `json:"name" validate:"required"`
	ProjectID string     `json:"projectId" validate:"required"`
	Items     []LineItem `json:"items"`
	Currency  string     `json:"currency" validate:"required"`
	Notes     string     `json:"notes"`
}

// NewBOQForm returns a form carrying the create-dialog defaults.
func NewBOQForm() BOQForm {
	return BOQForm{
		Currency: "INR",
		Items:    []LineItem{},
	}
}

// Validate checks the form before it is submitted.
func (f BOQForm) Validate() error {
	return runValidate(f)
}

// RFQStatus tracks a request for quotation.
type RFQStatus string

const (
	RFQDraft     RFQStatus = "draft"
	RFQPublished RFQStatus = "published"
	RFQClosed    RFQStatus = "closed"
)

// IsValid checks if the RFQ status value is valid.
func (s RFQStatus) IsValid() bool {
	switch s {
	case RFQDraft, RFQPublished, RFQClosed:
		return true
	}
	return false
}

// RFQItem is a requested row in an RFQ.
type RFQItem struct {
	Description    string  `json:"description"`
	Unit           string  `json:"unit"`
	Quantity       float64 `json:"quantity"`
	Specifications string  `json:"specifications"`
}

// EvaluationCriteria weights the scoring of bids against an RFQ.
type EvaluationCriteria struct {
	PriceWeightage    float64 `json:"priceWeightage"`
	QualityWeightage  float64 `json:"qualityWeightage"`
	DeliveryWeightage float64 `json:"deliveryWeightage"`
}

// RFQ is a request for quotation sent to selected vendors.
type RFQ struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	ProjectID          string             `json:"projectId"`
	ProjectName        string             `json:"projectName,omitempty"`
	BOQID              string             `json:"boqId,omitempty"`
	BOQName            string             `json:"boqName,omitempty"`
	OrganizationID     string             `json:"organizationId"`
	Deadline           string             `json:"deadline"`
	Items              []RFQItem          `json:"items"`
	Vendors            []string           `json:"vendors"`
	VendorNames        []string           `json:"vendorNames,omitempty"`
	Status             RFQStatus          `json:"status"`
	EvaluationCriteria EvaluationCriteria `json:"evaluationCriteria"`
	Terms              string             `json:"terms"`
	CreatedBy          string             `json:"createdBy"`
	CreatedByName      string             `json:"createdByName,omitempty"`
	IsActive           bool               `json:"isActive"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// RFQForm is the create/update body for RFQs.
type RFQForm struct {
	Title              string             `json:"title" validate:"required"`
	Description        string             `json:"description"`
	ProjectID          string             `json:"projectId" validate:"required"`
	BOQID              string             `json:"boqId,omitempty"`
	Deadline           string             `json:"deadline" validate:"required"`
	Items              []RFQItem          `json:"items"`
	Vendors            []string           `json:"vendors" validate:"min=1"`
	EvaluationCriteria EvaluationCriteria `json:"evaluationCriteria"`
	Terms              string             `json:"terms"`
}

// NewRFQForm returns a form carrying the create-dialog defaults: empty item
// and vendor lists plus the standard 40/40/20 evaluation weighting.
func NewRFQForm() RFQForm {
	return RFQForm{
		Items:   []RFQItem{},
		Vendors: []string{},
		EvaluationCriteria: EvaluationCriteria{
			PriceWeightage:    40,
			QualityWeightage:  40,
			DeliveryWeightage: 20,
		},
	}
}

// Validate checks the form before it is submitted.
func (f RFQForm) Validate() error {
	return runValidate(f)
}

// BidStatus tracks a vendor bid through evaluation.
type BidStatus string

const (
	BidDraft           BidStatus = "draft"
	BidSubmitted       BidStatus = "submitted"
	BidUnderEvaluation BidStatus = "under_evaluation"
	BidSelected        BidStatus = "selected"
	BidRejected        BidStatus = "rejected"
)

// IsValid checks if the bid status value is valid.
func (s BidStatus) IsValid() bool {
	switch s {
	case BidDraft, BidSubmitted, BidUnderEvaluation, BidSelected, BidRejected:
		return true
	}
	return false
}

// BidEvaluation is the recorded scoring of a bid. The scoring itself is
// computed server-side; this only mirrors the stored result.
type BidEvaluation struct {
	Score         float64   `json:"score"`
	PriceScore    float64   `json:"priceScore"`
	QualityScore  float64   `json:"qualityScore"`
	DeliveryScore float64   `json:"deliveryScore"`
	Notes         string    `json:"notes"`
	EvaluatedBy   string    `json:"evaluatedBy"`
	EvaluatedAt   time.Time `json:"evaluatedAt"`
}

// Bid is a vendor's response to an RFQ.
type Bid struct {
	ID                string         `json:"id"`
	RFQID             string         `json:"rfqId"`
	RFQTitle          string         `json:"rfqTitle,omitempty"`
	VendorID          string         `json:"vendorId"`
	VendorName        string         `json:"vendorName,omitempty"`
	Amount            float64        `json:"amount"`
	Currency          string         `json:"currency"`
	ValidityPeriod    int            `json:"validityPeriod"`
	Items             []LineItem     `json:"items"`
	TechnicalProposal string         `json:"technicalProposal"`
	DeliveryTimeline  string         `json:"deliveryTimeline"`
	Terms             string         `json:"terms"`
	Attachments       []string       `json:"attachments"`
	Status            BidStatus      `json:"status"`
	Evaluation        *BidEvaluation `json:"evaluation,omitempty"`
	SubmittedBy       string         `json:"submittedBy"`
	SubmittedByName   string         `json:"submittedByName,omitempty"`
	SubmittedAt       time.Time      `json:"submittedAt"`
	IsActive          bool           `json:"isActive"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// BidForm is the create/update body for bids.
type BidForm struct {
	RFQID             string     `json:"rfqId" validate:"required"`
	Amount            float64    `json:"amount" validate:"gt=0"`
	Currency          string     `json:"currency" validate:"required"`
	ValidityPeriod    int        `json:"validityPeriod" validate:"gt=0"`
	Items             []LineItem `json:"items"`
	TechnicalProposal string     `json:"technicalProposal"`
	DeliveryTimeline  string     `json:"deliveryTimeline"`
	Terms             string     `json:"terms"`
}

// NewBidForm returns a form carrying the create-dialog defaults: INR
// currency, a 30-day validity window, and an empty line-item list so the
// request body serializes items as [] rather than null.
func NewBidForm() BidForm {
	return BidForm{
		Currency:       "INR",
		ValidityPeriod: 30,
		Items:          []LineItem{},
	}
}

// Validate checks the form before it is submitted.
func (f BidForm) Validate() error {
	return runValidate(f)
}

// BidEvaluationForm is the scoring payload for the evaluate action.
type BidEvaluationForm struct {
	Score         float64 `json:"score" validate:"gte=0,max=100"`
	PriceScore    float64 `json:"priceScore" validate:"gte=0,max=100"`
	QualityScore  float64 `json:"qualityScore" validate:"gte=0,max=100"`
	DeliveryScore float64 `json:"deliveryScore" validate:"gte=0,max=100"`
	Notes         string  `json:"notes"`
}

// Validate checks the form before it is submitted.
func (f BidEvaluationForm) Validate() error {
	return runValidate(f)
}
