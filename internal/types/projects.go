package types

import (
	"fmt"
	"time"
)

// ProjectType categorizes a project.
type ProjectType string

const (
	ProjectMaintenance        ProjectType = "maintenance"
	ProjectRenovation         ProjectType = "renovation"
	ProjectConstruction       ProjectType = "construction"
	ProjectGreenCertification ProjectType = "green_certification"
	ProjectInteriorDesign     ProjectType = "interior_design"
)

// IsValid checks if the project type value is valid.
func (t ProjectType) IsValid() bool {
	switch t {
	case ProjectMaintenance, ProjectRenovation, ProjectConstruction,
		ProjectGreenCertification, ProjectInteriorDesign:
		return true
	}
	return false
}

// ProjectStatus tracks a project's execution state.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "on_hold"
)

// IsValid checks if the project status value is valid.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectPlanning, ProjectInProgress, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}

// Project is a scoped body of work against a building.
type Project struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Type         ProjectType   `json:"type"`
	BuildingID   string        `json:"buildingId"`
	BuildingName string        `json:"buildingName,omitempty"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	Budget       float64       `json:"budget"`
	Spent        float64       `json:"spent"`
	Status       ProjectStatus `json:"status"`
	ManagerID    string        `json:"managerId"`
	ManagerName  string        `json:"managerName,omitempty"`
	Team         []string      `json:"team"`
	Priority     Priority      `json:"priority"`
	Tags         []string      `json:"tags"`
	IsActive     bool          `json:"isActive"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// ProjectForm is the create/update body for projects.
type ProjectForm struct {
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description"`
	Type        ProjectType `json:"type" validate:"required"`
	BuildingID  string      `json:"buildingId" validate:"required"`
	StartDate   string      `json:"startDate" validate:"required"`
	EndDate     string      `json:"endDate" validate:"required"`
	Budget      float64     `json:"budget" validate:"gte=0"`
	ManagerID   string      `json:"managerId" validate:"required"`
	Priority    Priority    `json:"priority" validate:"required"`
	Tags        []string    `json:"tags"`
}

// Validate checks the form before it is submitted.
func (f ProjectForm) Validate() error {
	if f.Type != "" && !f.Type.IsValid() {
		return ValidationErrors{{Field: "type", Message: fmt.Sprintf("invalid project type %q", f.Type)}}
	}
	if f.Priority != "" && !f.Priority.IsValid() {
		return ValidationErrors{{Field: "priority", Message: fmt.Sprintf("invalid priority %q", f.Priority)}}
	}
	return runValidate(f)
}

// TaskStatus tracks a project task.
type TaskStatus string

const (
	TaskNotStarted TaskStatus = "not_started"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskOnHold     TaskStatus = "on_hold"
)

// IsValid checks if the task status value is valid.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskNotStarted, TaskInProgress, TaskCompleted, TaskOnHold:
		return true
	}
	return false
}

// TaskAttachment is a file linked to a task.
type TaskAttachment struct {
	URL        string    `json:"url"`
	Name       string    `json:"name"`
	UploadedAt time.Time `json:"uploadedAt"`
	UploadedBy string    `json:"uploadedBy"`
}

// TaskComment is a discussion entry on a task.
type TaskComment struct {
	Text      string    `json:"text"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Task is a unit of project work assigned to a team member.
type Task struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	ProjectID      string           `json:"projectId"`
	ProjectName    string           `json:"projectName,omitempty"`
	AssignedTo     string           `json:"assignedTo"`
	AssignedToName string           `json:"assignedToName,omitempty"`
	AssignedBy     string           `json:"assignedBy"`
	AssignedByName string           `json:"assignedByName,omitempty"`
	StartDate      string           `json:"startDate"`
	DueDate        string           `json:"dueDate"`
	CompletedDate  string           `json:"completedDate,omitempty"`
	Status         TaskStatus       `json:"status"`
	Priority       Priority         `json:"priority"`
	EstimatedHours float64          `json:"estimatedHours"`
	ActualHours    float64          `json:"actualHours"`
	Dependencies   []string         `json:"dependencies"`
	Tags           []string         `json:"tags"`
	Attachments    []TaskAttachment `json:"attachments"`
	Comments       []TaskComment    `json:"comments"`
	IsActive       bool             `json:"isActive"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// TaskForm is the create/update body for tasks.
type TaskForm struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description"`
	ProjectID      string   `json:"projectId" validate:"required"`
	AssignedTo     string   `json:"assignedTo" validate:"required"`
	StartDate      string   `json:"startDate" validate:"required"`
	DueDate        string   `json:"dueDate" validate:"required"`
	Priority       Priority `json:"priority" validate:"required"`
	EstimatedHours float64  `json:"estimatedHours" validate:"gte=0"`
	Dependencies   []string `json:"dependencies"`
	Tags           []string `json:"tags"`
}

// Validate checks the form before it is submitted.
func (f TaskForm) Validate() error {
	if f.Priority != "" && !f.Priority.IsValid() {
		return ValidationErrors{{Field: "priority", Message: fmt.Sprintf("invalid priority %q", f.Priority)}}
	}
	return runValidate(f)
}

// DocumentCategory classifies stored documents.
type DocumentCategory string

const (
	DocProjectPlan   DocumentCategory = "project_plan"
	DocCertification DocumentCategory = "certification"
	DocCompliance    DocumentCategory = "compliance"
	DocContract      DocumentCategory = "contract"
	DocInvoice       DocumentCategory = "invoice"
	DocWorkOrder     DocumentCategory = "work_order"
	DocTechnical     DocumentCategory = "technical"
	DocOther         DocumentCategory = "other"
)

// IsValid checks if the document category value is valid.
func (c DocumentCategory) IsValid() bool {
	switch c {
	case DocProjectPlan, DocCertification, DocCompliance, DocContract,
		DocInvoice, DocWorkOrder, DocTechnical, DocOther:
		return true
	}
	return false
}

// Document is stored file metadata; the bytes live behind the download
// endpoint.
type Document struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Key            string           `json:"key"`
	OriginalName   string           `json:"originalName"`
	Mimetype       string           `json:"mimetype"`
	Size           int64            `json:"size"`
	URL            string           `json:"url"`
	Category       DocumentCategory `json:"category"`
	ProjectID      string           `json:"projectId,omitempty"`
	ProjectName    string           `json:"projectName,omitempty"`
	GreenProjectID string           `json:"greenProjectId,omitempty"`
	WorkOrderID    string           `json:"workOrderId,omitempty"`
	Version        int              `json:"version"`
	ParentDocument string           `json:"parentDocument,omitempty"`
	UploadedBy     string           `json:"uploadedBy"`
	UploadedByName string           `json:"uploadedByName,omitempty"`
	Tags           []string         `json:"tags"`
	Description    string           `json:"description"`
	IsActive       bool             `json:"isActive"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// DocumentForm is the metadata side of an upload; the file itself travels
// as a multipart part.
type DocumentForm struct {
	Name           string           `json:"name" validate:"required"`
	Category       DocumentCategory `json:"category" validate:"required"`
	ProjectID      string           `json:"projectId,omitempty"`
	GreenProjectID string           `json:"greenProjectId,omitempty"`
	WorkOrderID    string           `json:"workOrderId,omitempty"`
	Tags           []string         `json:"tags"`
	Description    string           `json:"description"`
}

// Validate checks the form before it is submitted.
func (f DocumentForm) Validate() error {
	if f.Category != "" && !f.Category.IsValid() {
		return ValidationErrors{{Field: "category", Message: fmt.Sprintf("invalid category %q", f.Category)}}
	}
	return runValidate(f)
}
