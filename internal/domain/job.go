package domain

import "github.com/shopspring/decimal"

type JobStatus string

const (
	JobStatusQuote          JobStatus = "QUOTE"
	JobStatusBooked         JobStatus = "BOOKED"
	JobStatusInProgress     JobStatus = "IN_PROGRESS"
	JobStatusCompleted      JobStatus = "COMPLETED"
	JobStatusAwaitingPickup JobStatus = "AWAITING_PICKUP"
	JobStatusClosed         JobStatus = "CLOSED"
	JobStatusCancelled      JobStatus = "CANCELLED"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// JobPart is one parts line on a job. UnitPrice is snapshotted from the
// catalogue when the line is added so later price changes don't rewrite
// saved invoices.
type JobPart struct {
	ID          int32           `json:"id"`
	JobID       int32           `json:"job_id"`
	PartID      *int32          `json:"part_id,omitempty"`
	Description string          `json:"description"`
	Quantity    int32           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type Job struct {
	ID         int32  `json:"id"`
	Reference  string `json:"reference"`
	CustomerID int32  `json:"customer_id"`

	// Machine identification; CategoryID drives the transport size tier
	// unless SizeTierOverride is set.
	BrandID          *int32    `json:"brand_id,omitempty"`
	ModelID          *int32    `json:"model_id,omitempty"`
	CategoryID       *int32    `json:"category_id,omitempty"`
	MachineNotes     string    `json:"machine_notes"`
	SizeTierOverride *SizeTier `json:"size_tier_override,omitempty"`

	Status      JobStatus `json:"status"`
	Description string    `json:"description"`

	LabourHours decimal.Decimal `json:"labour_hours"`
	LabourRate  decimal.Decimal `json:"labour_rate"`

	PickupRequested   bool    `json:"pickup_requested"`
	PickupKm          float64 `json:"pickup_km"`
	DeliveryRequested bool    `json:"delivery_requested"`
	DeliveryKm        float64 `json:"delivery_km"`

	DiscountType  DiscountType    `json:"discount_type,omitempty"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	DepositPaid   decimal.Decimal `json:"deposit_paid"`

	// Totals snapshot — recomputed and overwritten on every save.
	PartsSubtotal  decimal.Decimal `json:"parts_subtotal"`
	LabourTotal    decimal.Decimal `json:"labour_total"`
	TransportTotal decimal.Decimal `json:"transport_total"`
	SharpenTotal   decimal.Decimal `json:"sharpen_total"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	GST            decimal.Decimal `json:"gst"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
	BalanceDue     decimal.Decimal `json:"balance_due"`

	TransportNotes string `json:"transport_notes"`
	SharpenNotes   string `json:"sharpen_notes"`

	CreatedOn   string  `json:"created_on"`
	UpdatedOn   string  `json:"updated_on"`
	CompletedOn *string `json:"completed_on,omitempty"`
}

// RevenueSummary aggregates closed-job income over a reporting period.
type RevenueSummary struct {
	From          string          `json:"from"`
	To            string          `json:"to"`
	JobCount      int32           `json:"job_count"`
	PartsTotal    decimal.Decimal `json:"parts_total"`
	LabourTotal   decimal.Decimal `json:"labour_total"`
	TransportTotal decimal.Decimal `json:"transport_total"`
	SharpenTotal  decimal.Decimal `json:"sharpen_total"`
	GSTTotal      decimal.Decimal `json:"gst_total"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
}
