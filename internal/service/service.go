package service

import (
	"context"

	"github.com/shopspring/decimal"

	"mowerworks-backend/internal/domain"
	"mowerworks-backend/internal/pricing"
)

type AuthService interface {
	CreateUser(ctx context.Context, name, email, phone, password string, role domain.UserRole) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, string, *domain.User, error) // access, refresh
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	ChangePassword(ctx context.Context, userID int32, currentPassword, newPassword string) error
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int32) error
	ListCustomers(ctx context.Context, query string, page, pageSize int32) ([]domain.Customer, int32, error)
}

type MachineService interface {
	CreateBrand(ctx context.Context, brand *domain.Brand) error
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	DeleteBrand(ctx context.Context, id int32) error

	CreateModel(ctx context.Context, model *domain.Model) error
	ListModels(ctx context.Context, brandID int32) ([]domain.Model, error)
	DeleteModel(ctx context.Context, id int32) error

	CreateCategory(ctx context.Context, category *domain.MachineCategory) error
	ListCategories(ctx context.Context) ([]domain.MachineCategory, error)

	// ResolveSizeTier picks the transport size tier for a job's machine:
	// an explicit override wins, then the category's tier, then small/medium.
	ResolveSizeTier(ctx context.Context, categoryID *int32, override *domain.SizeTier) (domain.SizeTier, error)
}

type PartService interface {
	CreatePart(ctx context.Context, part *domain.Part) error
	GetPart(ctx context.Context, id int32) (*domain.Part, error)
	UpdatePart(ctx context.Context, part *domain.Part) error
	DeletePart(ctx context.Context, id int32) error
	ListParts(ctx context.Context, query string, page, pageSize int32) ([]domain.Part, int32, error)
	AdjustStock(ctx context.Context, id, delta int32) (*domain.Part, error)
}

// JobDraft carries everything needed to price and save a job. The same
// draft shape backs quotes (nothing persisted) and saves.
type JobDraft struct {
	CustomerID       int32                `json:"customer_id"`
	BrandID          *int32               `json:"brand_id,omitempty"`
	ModelID          *int32               `json:"model_id,omitempty"`
	CategoryID       *int32               `json:"category_id,omitempty"`
	MachineNotes     string               `json:"machine_notes"`
	SizeTierOverride *domain.SizeTier     `json:"size_tier_override,omitempty"`
	Description      string               `json:"description"`
	LabourHours      decimal.Decimal      `json:"labour_hours"`
	LabourRate       decimal.Decimal      `json:"labour_rate"`
	PickupRequested  bool                 `json:"pickup_requested"`
	PickupKm         float64              `json:"pickup_km"`
	DeliveryRequested bool                `json:"delivery_requested"`
	DeliveryKm       float64              `json:"delivery_km"`
	DiscountType     domain.DiscountType  `json:"discount_type,omitempty"`
	DiscountValue    decimal.Decimal      `json:"discount_value"`
	DepositPaid      decimal.Decimal      `json:"deposit_paid"`
	Parts            []domain.JobPart     `json:"parts"`
	SharpenItems     []domain.SharpenItem `json:"sharpen_items"`
}

// Quote is a fully priced draft. BalanceDue is grand total minus deposit.
type Quote struct {
	Totals       pricing.JobTotals            `json:"totals"`
	Transport    pricing.TransportCalculation `json:"transport"`
	SharpenLines []pricing.SharpenPricing     `json:"sharpen_lines"`
	BalanceDue   decimal.Decimal              `json:"balance_due"`
}

type JobService interface {
	QuoteJob(ctx context.Context, draft *JobDraft) (*Quote, error)
	CreateJob(ctx context.Context, draft *JobDraft, status domain.JobStatus) (*domain.Job, error)
	UpdateJob(ctx context.Context, jobID int32, draft *JobDraft) (*domain.Job, error)
	GetJob(ctx context.Context, id int32) (*domain.Job, []domain.JobPart, []domain.SharpenItem, error)
	GetJobByReference(ctx context.Context, reference string) (*domain.Job, []domain.JobPart, []domain.SharpenItem, error)
	ListJobs(ctx context.Context, status string, page, pageSize int32) ([]domain.Job, int32, error)
	ListCustomerJobs(ctx context.Context, customerID int32, page, pageSize int32) ([]domain.Job, int32, error)
	UpdateJobStatus(ctx context.Context, id int32, status domain.JobStatus) (*domain.Job, error)

	// EmailQuote sends the customer their job's priced breakdown.
	EmailQuote(ctx context.Context, id int32) error

	// RecoverTotals re-prices a stored job from its child rows and
	// overwrites the totals snapshot.
	RecoverTotals(ctx context.Context, id int32) (*domain.Job, error)

	GetTransportConfig(ctx context.Context) (*domain.TransportConfig, error)
	UpdateTransportConfig(ctx context.Context, cfg *domain.TransportConfig) error
}

type EmailService interface {
	SendQuote(ctx context.Context, to, customerName string, job *domain.Job) error
	SendPickupReady(ctx context.Context, to, customerName, reference string, balanceDue decimal.Decimal) error
	SendPickupReminder(ctx context.Context, to, customerName, reference string, daysWaiting int) error
	SendWeeklyRevenueReport(ctx context.Context, to string, summary *domain.RevenueSummary) error
}

type ReportService interface {
	RevenueSummary(ctx context.Context, from, to string) (*domain.RevenueSummary, error)
	JobStatusCounts(ctx context.Context) (map[domain.JobStatus]int32, error)
}
