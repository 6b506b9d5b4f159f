package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/buildmaintain/bm/internal/apiclient"
	"github.com/buildmaintain/bm/internal/types"
)

// Buildings covers /buildings.
type Buildings struct {
	*Resource[types.Building, types.BuildingForm]
}

// Tenants covers /tenants.
type Tenants struct {
	*Resource[types.Tenant, types.TenantForm]
}

// Contracts covers /amc-contracts.
type Contracts struct {
	*Resource[types.AMCContract, types.ContractForm]
}

// Inventory covers /inventory.
type Inventory struct {
	*Resource[types.InventoryItem, types.InventoryForm]
}

// Vendors covers /vendors.
type Vendors struct {
	*Resource[types.Vendor, types.VendorForm]
}

// Products covers /products.
type Products struct {
	*Resource[types.Product, types.ProductForm]
}

// Projects covers /projects.
type Projects struct {
	*Resource[types.Project, types.ProjectForm]
}

// RFQs covers /rfqs.
type RFQs struct {
	*Resource[types.RFQ, types.RFQForm]
}

// WorkOrders covers /work-orders and its sub-resources.
type WorkOrders struct {
	*Resource[types.WorkOrder, types.WorkOrderForm]
}

// AddPhoto attaches a photo reference to a work order.
func (g *WorkOrders) AddPhoto(ctx context.Context, id, photoURL, caption string) (types.WorkOrder, error) {
	body := map[string]string{"url": photoURL, "caption": caption}
	return g.Action(ctx, http.MethodPost, "/work-orders/"+id+"/photos", body)
}

// AddPartsUsed records inventory consumed by a work order.
func (g *WorkOrders) AddPartsUsed(ctx context.Context, id, inventoryItemID string, quantity float64) (types.WorkOrder, error) {
	body := map[string]any{"inventoryItemId": inventoryItemID, "quantity": quantity}
	return g.Action(ctx, http.MethodPost, "/work-orders/"+id+"/parts-used", body)
}

// Tasks covers /tasks and its comments sub-resource.
type Tasks struct {
	*Resource[types.Task, types.TaskForm]
}

// AddComment appends a discussion entry to a task.
func (g *Tasks) AddComment(ctx context.Context, id, text string) (types.Task, error) {
	body := map[string]string{"text": text}
	return g.Action(ctx, http.MethodPost, "/tasks/"+id+"/comments", body)
}

// Invoices covers /invoices and the payments sub-resource.
type Invoices struct {
	*Resource[types.Invoice, types.InvoiceForm]
}

// AddPayment records a settlement against an invoice.
func (g *Invoices) AddPayment(ctx context.Context, id string, payment types.PaymentForm) (types.Invoice, error) {
	return g.Action(ctx, http.MethodPost, "/invoices/"+id+"/payments", payment)
}

// Bids covers /bids and its evaluation actions.
type Bids struct {
	*Resource[types.Bid, types.BidForm]
}

// Evaluate submits scoring for a bid. The weighted total is computed
// server-side from the RFQ's evaluation criteria.
func (g *Bids) Evaluate(ctx context.Context, id string, evaluation types.BidEvaluationForm) (types.Bid, error) {
	return g.Action(ctx, http.MethodPut, "/bids/"+id+"/evaluate", evaluation)
}

// Select marks a bid as the winning response to its RFQ.
func (g *Bids) Select(ctx context.Context, id string) (types.Bid, error) {
	return g.Action(ctx, http.MethodPut, "/bids/"+id+"/select", nil)
}

// BOQs covers /boqs and the export action.
type BOQs struct {
	*Resource[types.BOQ, types.BOQForm]
}

// Export fetches the spreadsheet rendering of a BOQ as raw bytes plus the
// server-suggested filename.
func (g *BOQs) Export(ctx context.Context, id string) ([]byte, string, error) {
	return g.client.Download(ctx, "/boqs/"+id+"/export")
}

// GreenProjects covers /green-projects and its checklist/cost actions.
type GreenProjects struct {
	*Resource[types.GreenProject, types.GreenProjectForm]
}

// AddChecklist attaches a new checklist to a green project.
func (g *GreenProjects) AddChecklist(ctx context.Context, id string, checklist types.Checklist) (types.GreenProject, error) {
	return g.Action(ctx, http.MethodPost, "/green-projects/"+id+"/checklists", checklist)
}

// UpdateChecklistItem sets the status of one checklist entry, addressed by
// checklist and item index.
func (g *GreenProjects) UpdateChecklistItem(ctx context.Context, id string, checklistIndex, itemIndex int, status types.ChecklistItemStatus) (types.GreenProject, error) {
	path := fmt.Sprintf("/green-projects/%s/checklists/%d/items/%d", id, checklistIndex, itemIndex)
	body := map[string]string{"status": string(status)}
	return g.Action(ctx, http.MethodPut, path, body)
}

// AddCost records a certification fee against a green project.
func (g *GreenProjects) AddCost(ctx context.Context, id string, cost types.CertificationCost) (types.GreenProject, error) {
	return g.Action(ctx, http.MethodPost, "/green-projects/"+id+"/costs", cost)
}

// Calculations covers /calculations and the evaluation endpoints. The
// energy/water/waste formulas live server-side; these calls only move the
// input and result shapes.
type Calculations struct {
	*Resource[types.Calculation, types.CalculationForm]
}

// Energy evaluates an energy performance input.
func (g *Calculations) Energy(ctx context.Context, in types.EnergyInput) (types.EnergyResult, error) {
	return call[types.EnergyResult](ctx, g.client, http.MethodPost, "/calculations/energy", in)
}

// Water evaluates a water consumption input.
func (g *Calculations) Water(ctx context.Context, in types.WaterInput) (types.WaterResult, error) {
	return call[types.WaterResult](ctx, g.client, http.MethodPost, "/calculations/water", in)
}

// Waste evaluates a waste diversion input.
func (g *Calculations) Waste(ctx context.Context, in types.WasteInput) (types.WasteResult, error) {
	return call[types.WasteResult](ctx, g.client, http.MethodPost, "/calculations/waste", in)
}

// Documents covers /documents; uploads travel as multipart/form-data and
// downloads come back as raw bytes.
type Documents struct {
	*Resource[types.Document, types.DocumentForm]
}

// Upload creates a document from metadata plus file content.
func (g *Documents) Upload(ctx context.Context, form types.DocumentForm, fileName string, file io.Reader) (types.Document, error) {
	var env envelope[types.Document]
	err := g.client.Upload(ctx, http.MethodPost, "/documents", documentFields(form), "file", fileName, file, &env)
	if err != nil {
		return types.Document{}, err
	}
	if !env.Success {
		return types.Document{}, &APIError{Message: env.Message}
	}
	g.Invalidate()
	return env.Data, nil
}

// UpdateUpload replaces a document's metadata and optionally its content.
func (g *Documents) UpdateUpload(ctx context.Context, id string, form types.DocumentForm, fileName string, file io.Reader) (types.Document, error) {
	var env envelope[types.Document]
	err := g.client.Upload(ctx, http.MethodPut, "/documents/"+id, documentFields(form), "file", fileName, file, &env)
	if err != nil {
		return types.Document{}, err
	}
	if !env.Success {
		return types.Document{}, &APIError{Message: env.Message}
	}
	g.Invalidate()
	return env.Data, nil
}

// Download fetches the stored file bytes and the server-suggested filename.
func (g *Documents) Download(ctx context.Context, id string) ([]byte, string, error) {
	return g.client.Download(ctx, "/documents/"+id+"/download")
}

func documentFields(form types.DocumentForm) map[string]string {
	fields := map[string]string{
		"name":        form.Name,
		"category":    string(form.Category),
		"description": form.Description,
	}
	if form.ProjectID != "" {
		fields["projectId"] = form.ProjectID
	}
	if form.GreenProjectID != "" {
		fields["greenProjectId"] = form.GreenProjectID
	}
	if form.WorkOrderID != "" {
		fields["workOrderId"] = form.WorkOrderID
	}
	if len(form.Tags) > 0 {
		tags, _ := json.Marshal(form.Tags)
		fields["tags"] = string(tags)
	}
	return fields
}

// Users covers /users, including the by-role query used when assigning
// facility managers to buildings.
type Users struct {
	*Resource[types.User, types.UserForm]
}

// ListByRole fetches every user holding the given role.
func (g *Users) ListByRole(ctx context.Context, role types.Role) ([]types.User, error) {
	path := "/users?role=" + url.QueryEscape(string(role))
	return call[[]types.User](ctx, g.client, http.MethodGet, path, nil)
}

// Set bundles one gateway per entity over a shared transport client.
type Set struct {
	Auth          *Auth
	Users         *Users
	Buildings     *Buildings
	Tenants       *Tenants
	Contracts     *Contracts
	WorkOrders    *WorkOrders
	Inventory     *Inventory
	Vendors       *Vendors
	Products      *Products
	Projects      *Projects
	Tasks         *Tasks
	Invoices      *Invoices
	BOQs          *BOQs
	RFQs          *RFQs
	Bids          *Bids
	Documents     *Documents
	Calculations  *Calculations
	GreenProjects *GreenProjects
}

// NewSet wires every entity gateway against one client.
func NewSet(client *apiclient.Client) *Set {
	return &Set{
		Auth:          NewAuth(client),
		Users:         &Users{NewResource[types.User, types.UserForm](client, "/users")},
		Buildings:     &Buildings{NewResource[types.Building, types.BuildingForm](client, "/buildings")},
		Tenants:       &Tenants{NewResource[types.Tenant, types.TenantForm](client, "/tenants")},
		Contracts:     &Contracts{NewResource[types.AMCContract, types.ContractForm](client, "/amc-contracts")},
		WorkOrders:    &WorkOrders{NewResource[types.WorkOrder, types.WorkOrderForm](client, "/work-orders")},
		Inventory:     &Inventory{NewResource[types.InventoryItem, types.InventoryForm](client, "/inventory")},
		Vendors:       &Vendors{NewResource[types.Vendor, types.VendorForm](client, "/vendors")},
		Products:      &Products{NewResource[types.Product, types.ProductForm](client, "/products")},
		Projects:      &Projects{NewResource[types.Project, types.ProjectForm](client, "/projects")},
		Tasks:         &Tasks{NewResource[types.Task, types.TaskForm](client, "/tasks")},
		Invoices:      &Invoices{NewResource[types.Invoice, types.InvoiceForm](client, "/invoices")},
		BOQs:          &BOQs{NewResource[types.BOQ, types.BOQForm](client, "/boqs")},
		RFQs:          &RFQs{NewResource[types.RFQ, types.RFQForm](client, "/rfqs")},
		Bids:          &Bids{NewResource[types.Bid, types.BidForm](client, "/bids")},
		Documents:     &Documents{NewResource[types.Document, types.DocumentForm](client, "/documents")},
		Calculations:  &Calculations{NewResource[types.Calculation, types.CalculationForm](client, "/calculations")},
		GreenProjects: &GreenProjects{NewResource[types.GreenProject, types.GreenProjectForm](client, "/green-projects")},
	}
}
