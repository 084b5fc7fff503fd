package model

// Privilege represents a permission that can be assigned to users
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "order:approve"
	Name string `gorm:"type:varchar(100)" json:"name"`
}

// Default privileges for the system
var DefaultPrivileges = []Privilege{
	// Dealer management
	{Code: "dealer:view", Name: "View Dealers"},
	{Code: "dealer:create", Name: "Create Dealer"},
	{Code: "dealer:update", Name: "Update Dealer"},
	{Code: "dealer:disable", Name: "Disable Dealer"},
	// Godowns
	{Code: "godown:view", Name: "View Godowns"},
	{Code: "godown:create", Name: "Create Godown"},
	{Code: "godown:update", Name: "Update Godown"},
	// Paddy intake
	{Code: "paddy:view", Name: "View Paddy Intake"},
	{Code: "paddy:create", Name: "Record Paddy Intake"},
	// Rice stock
	{Code: "rice:view", Name: "View Rice Stock"},
	{Code: "rice:create", Name: "Create Rice Stock"},
	{Code: "rice:update", Name: "Update Rice Stock"},
	// Dealer orders (admin side)
	{Code: "order:view", Name: "View All Orders"},
	{Code: "order:approve", Name: "Approve Order"},
	{Code: "order:update_status", Name: "Update Order Status"},
	// Dealer orders (dealer portal)
	{Code: "order:place", Name: "Place Order"},
	{Code: "order:view_own", Name: "View Own Orders"},
	// Invoices
	{Code: "invoice:view", Name: "View Invoices"},
	{Code: "invoice:create", Name: "Create Invoice"},
	{Code: "invoice:view_own", Name: "View Own Invoices"},
	// Sales & payments
	{Code: "sale:view", Name: "View Sales"},
	{Code: "sale:create", Name: "Create Sale"},
	{Code: "sale:update", Name: "Update Sale"},
	{Code: "payment:view", Name: "View Payments"},
	{Code: "payment:create", Name: "Record Payment"},
	// Reports
	{Code: "report:view", Name: "View Reports"},
	{Code: "analytics:view_own", Name: "View Own Analytics"},
}

// DealerPrivilegeCodes are the privileges granted to the DEALER role.
var DealerPrivilegeCodes = []string{
	"order:place",
	"order:view_own",
	"invoice:view_own",
	"analytics:view_own",
}
