package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleIsValid(t *testing.T) {
	tests := []struct {
		role  Role
		valid bool
	}{
		{RoleSuperAdmin, true},
		{RoleOrganizationAdmin, true},
		{RoleFacilityManager, true},
		{RoleGreenBuildingConsultant, true},
		{RoleInteriorDesigner, true},
		{RoleVendor, true},
		{RoleFinanceManager, true},
		{RoleFieldTechnician, true},
		{Role("admin"), false},
		{Role(""), false},
	}
	for _, tt := range tests {
		if got := tt.role.IsValid(); got != tt.valid {
			t.Errorf("Role(%q).IsValid() = %v, want %v", tt.role, got, tt.valid)
		}
	}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("facility_manager")
	require.NoError(t, err)
	assert.Equal(t, RoleFacilityManager, role)

	_, err = ParseRole("janitor")
	assert.Error(t, err)
}

func TestRolesCoversAll(t *testing.T) {
	roles := Roles()
	assert.Len(t, roles, 8)
	for _, r := range roles {
		assert.True(t, r.IsValid(), "role %q", r)
	}
}

func TestLoginCredentialsValidate(t *testing.T) {
	creds := LoginCredentials{Email: "fm@example.com", Password: "hunter22"}
	assert.NoError(t, creds.Validate())

	err := LoginCredentials{Email: "not-an-email", Password: "x"}.Validate()
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	err = LoginCredentials{Email: "fm@example.com"}.Validate()
	require.Error(t, err)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "password", verrs[0].Field)
}

func TestRegisterFormValidate(t *testing.T) {
	form := RegisterForm{
		Name:     "Asha Nair",
		Email:    "asha@example.com",
		Password: "longenough1",
		Role:     RoleInteriorDesigner,
	}
	assert.NoError(t, form.Validate())

	form.Role = "designer"
	err := form.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role")

	form.Role = RoleInteriorDesigner
	form.Password = "short"
	assert.Error(t, form.Validate())
}

func TestBuildingFormValidate(t *testing.T) {
	form := BuildingForm{
		Name:      "Lakeside Tower",
		Address:   "12 Marina Road",
		Area:      5200,
		Type:      BuildingCommercial,
		YearBuilt: 2014,
		Floors:    11,
	}
	assert.NoError(t, form.Validate())

	form.Type = "castle"
	err := form.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type")

	form.Type = BuildingCommercial
	form.Floors = 0
	assert.Error(t, form.Validate())
}

func TestWorkOrderFormValidate(t *testing.T) {
	form := WorkOrderForm{
		Title:         "Fix lobby AC",
		BuildingID:    "b1",
		AssignedTo:    "u9",
		Priority:      PriorityHigh,
		Category:      WorkCategoryHVAC,
		ScheduledDate: "2026-09-01",
	}
	assert.NoError(t, form.Validate())

	form.Priority = "critical"
	assert.Error(t, form.Validate())

	form.Priority = PriorityHigh
	form.Category = "carpentry"
	assert.Error(t, form.Validate())
}

func TestInvoiceFormRecurringFrequency(t *testing.T) {
	form := InvoiceForm{
		TenantID:      "t1",
		BillingPeriod: BillingPeriod{StartDate: "2026-08-01", EndDate: "2026-08-31"},
		Items:         []InvoiceItem{{Description: "Rent", Quantity: 1, Rate: 45000, Amount: 45000}},
		DueDate:       "2026-09-10",
	}
	assert.NoError(t, form.Validate())

	form.IsRecurring = true
	err := form.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recurringFrequency")

	form.RecurringFrequency = RecurringMonthly
	assert.NoError(t, form.Validate())
}

func TestPaymentFormValidate(t *testing.T) {
	form := PaymentForm{Amount: 1200, Method: PaymentUPI}
	assert.NoError(t, form.Validate())

	form.Method = "barter"
	assert.Error(t, form.Validate())

	form.Method = PaymentUPI
	form.Amount = 0
	assert.Error(t, form.Validate())
}

func TestGreenProjectFormValidate(t *testing.T) {
	form := GreenProjectForm{
		ProjectID:         "p1",
		CertificationType: CertLEED,
		TargetRating:      "Gold",
	}
	assert.NoError(t, form.Validate())

	form.CertificationType = "BREEAM"
	assert.Error(t, form.Validate())
}

func TestEnergyInputValidate(t *testing.T) {
	in := EnergyInput{BuildingArea: 1000, EnergyConsumption: 90000, Period: 12, BuildingType: "commercial"}
	assert.NoError(t, in.Validate())

	in.BuildingArea = 0
	assert.Error(t, in.Validate())
}

func TestNewBidFormDefaults(t *testing.T) {
	form := NewBidForm()
	assert.Equal(t, "INR", form.Currency)
	assert.Equal(t, 30, form.ValidityPeriod)
	require.NotNil(t, form.Items)
	assert.Empty(t, form.Items)

	data, err := json.Marshal(form)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"items":[]`)
}

func TestNewRFQFormDefaults(t *testing.T) {
	form := NewRFQForm()
	assert.Equal(t, 40.0, form.EvaluationCriteria.PriceWeightage)
	assert.Equal(t, 40.0, form.EvaluationCriteria.QualityWeightage)
	assert.Equal(t, 20.0, form.EvaluationCriteria.DeliveryWeightage)

	data, err := json.Marshal(form)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"items":[]`)
	assert.Contains(t, string(data), `"vendors":[]`)
}

func TestValidationErrorsMessage(t *testing.T) {
	err := BuildingForm{}.Validate()
	require.Error(t, err)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.NotEmpty(t, verrs)
	// Field names surface in the camelCase wire form.
	assert.Equal(t, "name", verrs[0].Field)
}
