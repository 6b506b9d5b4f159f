package types

import (
	"fmt"
	"time"
)

// Role identifies which of the eight application roles a user holds.
// Navigation and route access are derived from it; see internal/nav.
type Role string

const (
	RoleSuperAdmin              Role = "super_admin"
	RoleOrganizationAdmin       Role = "organization_admin"
	RoleFacilityManager         Role = "facility_manager"
	RoleGreenBuildingConsultant Role = "green_building_consultant"
	RoleInteriorDesigner        Role = "interior_designer"
	RoleVendor                  Role = "vendor"
	RoleFinanceManager          Role = "finance_manager"
	RoleFieldTechnician         Role = "field_technician"
)

// IsValid checks if the role value is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleOrganizationAdmin, RoleFacilityManager,
		RoleGreenBuildingConsultant, RoleInteriorDesigner, RoleVendor,
		RoleFinanceManager, RoleFieldTechnician:
		return true
	}
	return false
}

// ParseRole parses the string value and returns a role if one exists.
func ParseRole(value string) (Role, error) {
	r := Role(value)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role %q", value)
	}
	return r, nil
}

// Roles lists every known role in a stable order.
func Roles() []Role {
	return []Role{
		RoleSuperAdmin,
		RoleOrganizationAdmin,
		RoleFacilityManager,
		RoleGreenBuildingConsultant,
		RoleInteriorDesigner,
		RoleVendor,
		RoleFinanceManager,
		RoleFieldTechnician,
	}
}

// User is the authenticated account returned by the auth endpoints.
type User struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Email            string         `json:"email"`
	Role             Role           `json:"role"`
	OrganizationID   string         `json:"organizationId,omitempty"`
	OrganizationName string         `json:"organizationName,omitempty"`
	Profile          map[string]any `json:"profile,omitempty"`
	IsActive         bool           `json:"isActive"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// AuthSession is the payload every successful auth call returns.
type AuthSession struct {
	User         User   `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// LoginCredentials is the login request body.
type LoginCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate checks the credentials before the request is attempted.
func (f LoginCredentials) Validate() error {
	return runValidate(f)
}

// RegisterForm is the registration request body.
type RegisterForm struct {
	Name             string         `json:"name" validate:"required"`
	Email            string         `json:"email" validate:"required,email"`
	Password         string         `json:"password" validate:"required,min=8"`
	Role             Role           `json:"role" validate:"required"`
	OrganizationName string         `json:"organizationName,omitempty"`
	OrganizationID   string         `json:"organizationId,omitempty"`
	Profile          map[string]any `json:"profile,omitempty"`
}

// Validate checks the form before it is submitted.
func (f RegisterForm) Validate() error {
	if f.Role != "" && !f.Role.IsValid() {
		return ValidationErrors{{Field: "role", Message: fmt.Sprintf("invalid role %q", f.Role)}}
	}
	return runValidate(f)
}

// UserForm is the create/update body for the user management page.
type UserForm struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Role           Role   `json:"role" validate:"required"`
	OrganizationID string `json:"organizationId,omitempty"`
	IsActive       bool   `json:"isActive"`
}

// Validate checks the form before it is submitted.
func (f UserForm) Validate() error {
	if f.Role != "" && !f.Role.IsValid() {
		return ValidationErrors{{Field: "role", Message: fmt.Sprintf("invalid role %q", f.Role)}}
	}
	return runValidate(f)
}
