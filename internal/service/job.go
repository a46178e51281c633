package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mowerworks-backend/internal/domain"
	"mowerworks-backend/internal/logger"
	"mowerworks-backend/internal/pricing"
	"mowerworks-backend/internal/repository"
)

var (
	ErrCustomerRequired        = errors.New("job must belong to a customer")
	ErrInvalidStatusTransition = errors.New("invalid job status transition")
	ErrJobClosed               = errors.New("closed or cancelled jobs cannot be edited")
	ErrCustomerHasNoEmail      = errors.New("customer has no email address")
)

// validTransitions maps each status to the statuses a job may move to next.
var validTransitions = map[domain.JobStatus][]domain.JobStatus{
	domain.JobStatusQuote:          {domain.JobStatusBooked, domain.JobStatusCancelled},
	domain.JobStatusBooked:         {domain.JobStatusInProgress, domain.JobStatusCancelled},
	domain.JobStatusInProgress:     {domain.JobStatusCompleted, domain.JobStatusCancelled},
	domain.JobStatusCompleted:      {domain.JobStatusAwaitingPickup, domain.JobStatusClosed},
	domain.JobStatusAwaitingPickup: {domain.JobStatusClosed},
}

type jobService struct {
	jobRepo       repository.JobRepository
	customerRepo  repository.CustomerRepository
	partRepo      repository.PartRepository
	transportRepo repository.TransportConfigRepository
	machines      MachineService
	email         EmailService
	gstRate       decimal.Decimal
	labourRate    decimal.Decimal
}

func NewJobService(
	jobRepo repository.JobRepository,
	customerRepo repository.CustomerRepository,
	partRepo repository.PartRepository,
	transportRepo repository.TransportConfigRepository,
	machines MachineService,
	email EmailService,
	gstRate, defaultLabourRate decimal.Decimal,
) JobService {
	return &jobService{
		jobRepo:       jobRepo,
		customerRepo:  customerRepo,
		partRepo:      partRepo,
		transportRepo: transportRepo,
		machines:      machines,
		email:         email,
		gstRate:       gstRate,
		labourRate:    defaultLabourRate,
	}
}

func (s *jobService) QuoteJob(ctx context.Context, draft *JobDraft) (*Quote, error) {
	return s.price(ctx, draft)
}

// price runs the full calculator chain over a draft without persisting
// anything: snapshot part prices, price transport legs and sharpen lines,
// then aggregate into invoice totals.
func (s *jobService) price(ctx context.Context, draft *JobDraft) (*Quote, error) {
	partsSubtotal, err := s.snapshotPartPrices(ctx, draft.Parts)
	if err != nil {
		return nil, err
	}

	tier, err := s.machines.ResolveSizeTier(ctx, draft.CategoryID, draft.SizeTierOverride)
	if err != nil {
		return nil, err
	}

	transport := pricing.TransportCalculation{Subtotal: decimal.Zero}
	if draft.PickupRequested || draft.DeliveryRequested {
		cfg, err := s.transportRepo.Get(ctx)
		if err != nil {
			return nil, err
		}
		var pickupKm, deliveryKm *float64
		if draft.PickupRequested {
			pickupKm = &draft.PickupKm
		}
		if draft.DeliveryRequested {
			deliveryKm = &draft.DeliveryKm
		}
		transport, err = pricing.CalculateTransportCharges(pickupKm, deliveryKm, tier, *cfg)
		if err != nil {
			return nil, err
		}
	}

	sharpenTotal := decimal.Zero
	sharpenLines := make([]pricing.SharpenPricing, 0, len(draft.SharpenItems))
	for _, item := range draft.SharpenItems {
		line, err := pricing.CalculateSharpenPrice(item)
		if err != nil {
			return nil, err
		}
		sharpenLines = append(sharpenLines, line)
		sharpenTotal = sharpenTotal.Add(line.TotalPrice)
	}

	labourRate := draft.LabourRate
	if labourRate.IsZero() {
		labourRate = s.labourRate
	}

	totals, err := pricing.ComputeJobTotals(
		partsSubtotal,
		draft.LabourHours,
		labourRate,
		transport.Subtotal,
		sharpenTotal,
		pricing.Discount{Type: draft.DiscountType, Value: draft.DiscountValue},
		s.gstRate,
	)
	if err != nil {
		return nil, err
	}

	balance := totals.GrandTotal.Sub(draft.DepositPaid)
	if balance.IsNegative() {
		balance = decimal.Zero
	}

	return &Quote{
		Totals:       totals,
		Transport:    transport,
		SharpenLines: sharpenLines,
		BalanceDue:   balance.Round(2),
	}, nil
}

// snapshotPartPrices fills in catalogue prices for lines that reference a
// part without an explicit price, then sums the lines.
func (s *jobService) snapshotPartPrices(ctx context.Context, parts []domain.JobPart) (decimal.Decimal, error) {
	subtotal := decimal.Zero
	for i := range parts {
		line := &parts[i]
		if line.PartID != nil && line.UnitPrice.IsZero() {
			part, err := s.partRepo.GetByID(ctx, *line.PartID)
			if err != nil {
				return decimal.Zero, fmt.Errorf("part %d on job line: %w", *line.PartID, err)
			}
			line.UnitPrice = part.UnitPrice
			if line.Description == "" {
				line.Description = part.Name
			}
		}
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt32(line.Quantity)))
	}
	return subtotal, nil
}

func (s *jobService) CreateJob(ctx context.Context, draft *JobDraft, status domain.JobStatus) (*domain.Job, error) {
	if draft.CustomerID == 0 {
		return nil, ErrCustomerRequired
	}
	if _, err := s.customerRepo.GetByID(ctx, draft.CustomerID); err != nil {
		return nil, fmt.Errorf("customer %d: %w", draft.CustomerID, err)
	}
	if status == "" {
		status = domain.JobStatusQuote
	}

	quote, err := s.price(ctx, draft)
	if err != nil {
		return nil, err
	}

	job := draftToJob(draft, quote)
	job.Reference = newJobReference()
	job.Status = status

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	if err := s.jobRepo.ReplaceParts(ctx, job.ID, draft.Parts); err != nil {
		return nil, err
	}
	if err := s.jobRepo.ReplaceSharpenItems(ctx, job.ID, draft.SharpenItems); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) UpdateJob(ctx context.Context, jobID int32, draft *JobDraft) (*domain.Job, error) {
	existing, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if existing.Status == domain.JobStatusClosed || existing.Status == domain.JobStatusCancelled {
		return nil, ErrJobClosed
	}
	if draft.CustomerID == 0 {
		draft.CustomerID = existing.CustomerID
	}

	quote, err := s.price(ctx, draft)
	if err != nil {
		return nil, err
	}

	job := draftToJob(draft, quote)
	job.ID = existing.ID
	job.Reference = existing.Reference
	job.Status = existing.Status
	job.CreatedOn = existing.CreatedOn
	job.CompletedOn = existing.CompletedOn

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	if err := s.jobRepo.ReplaceParts(ctx, job.ID, draft.Parts); err != nil {
		return nil, err
	}
	if err := s.jobRepo.ReplaceSharpenItems(ctx, job.ID, draft.SharpenItems); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) GetJob(ctx context.Context, id int32) (*domain.Job, []domain.JobPart, []domain.SharpenItem, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	return s.loadChildren(ctx, job)
}

func (s *jobService) GetJobByReference(ctx context.Context, reference string) (*domain.Job, []domain.JobPart, []domain.SharpenItem, error) {
	job, err := s.jobRepo.GetByReference(ctx, strings.TrimSpace(reference))
	if err != nil {
		return nil, nil, nil, err
	}
	return s.loadChildren(ctx, job)
}

func (s *jobService) loadChildren(ctx context.Context, job *domain.Job) (*domain.Job, []domain.JobPart, []domain.SharpenItem, error) {
	parts, err := s.jobRepo.GetParts(ctx, job.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	items, err := s.jobRepo.GetSharpenItems(ctx, job.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	return job, parts, items, nil
}

func (s *jobService) ListJobs(ctx context.Context, status string, page, pageSize int32) ([]domain.Job, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.jobRepo.List(ctx, status, page, pageSize)
}

func (s *jobService) ListCustomerJobs(ctx context.Context, customerID int32, page, pageSize int32) ([]domain.Job, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.jobRepo.ListByCustomer(ctx, customerID, page, pageSize)
}

func (s *jobService) UpdateJobStatus(ctx context.Context, id int32, status domain.JobStatus) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range validTransitions[job.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, job.Status, status)
	}

	if err := s.jobRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	job.Status = status

	if status == domain.JobStatusAwaitingPickup {
		s.notifyPickupReady(ctx, job)
	}
	return job, nil
}

// notifyPickupReady emails the customer that their machine is ready.
// Failures are logged, not returned; the status change already happened.
func (s *jobService) notifyPickupReady(ctx context.Context, job *domain.Job) {
	customer, err := s.customerRepo.GetByID(ctx, job.CustomerID)
	if err != nil || customer.Email == "" {
		return
	}
	if err := s.email.SendPickupReady(ctx, customer.Email, customer.Name, job.Reference, job.BalanceDue); err != nil {
		logger.Error("failed to send pickup ready email", "job", job.Reference, "error", err)
	}
}

func (s *jobService) EmailQuote(ctx context.Context, id int32) error {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	customer, err := s.customerRepo.GetByID(ctx, job.CustomerID)
	if err != nil {
		return err
	}
	if customer.Email == "" {
		return ErrCustomerHasNoEmail
	}
	return s.email.SendQuote(ctx, customer.Email, customer.Name, job)
}

func (s *jobService) RecoverTotals(ctx context.Context, id int32) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	parts, err := s.jobRepo.GetParts(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.jobRepo.GetSharpenItems(ctx, id)
	if err != nil {
		return nil, err
	}

	draft := jobToDraft(job, parts, items)
	quote, err := s.price(ctx, draft)
	if err != nil {
		return nil, err
	}

	applyQuote(job, quote)
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) GetTransportConfig(ctx context.Context) (*domain.TransportConfig, error) {
	return s.transportRepo.Get(ctx)
}

func (s *jobService) UpdateTransportConfig(ctx context.Context, cfg *domain.TransportConfig) error {
	if cfg.SmallMediumBase.IsNegative() || cfg.LargeBase.IsNegative() || cfg.PerKmRate.IsNegative() || cfg.IncludedKm < 0 {
		return errors.New("transport rates cannot be negative")
	}
	return s.transportRepo.Update(ctx, cfg)
}

func newJobReference() string {
	return "J-" + strings.ToUpper(uuid.NewString()[:8])
}

func draftToJob(draft *JobDraft, quote *Quote) *domain.Job {
	job := &domain.Job{
		CustomerID:        draft.CustomerID,
		BrandID:           draft.BrandID,
		ModelID:           draft.ModelID,
		CategoryID:        draft.CategoryID,
		MachineNotes:      draft.MachineNotes,
		SizeTierOverride:  draft.SizeTierOverride,
		Description:       draft.Description,
		LabourHours:       draft.LabourHours,
		LabourRate:        draft.LabourRate,
		PickupRequested:   draft.PickupRequested,
		PickupKm:          draft.PickupKm,
		DeliveryRequested: draft.DeliveryRequested,
		DeliveryKm:        draft.DeliveryKm,
		DiscountType:      draft.DiscountType,
		DiscountValue:     draft.DiscountValue,
		DepositPaid:       draft.DepositPaid,
	}
	applyQuote(job, quote)
	return job
}

func applyQuote(job *domain.Job, quote *Quote) {
	job.PartsSubtotal = quote.Totals.PartsSubtotal
	job.LabourTotal = quote.Totals.LabourTotal
	job.TransportTotal = quote.Totals.TransportTotal
	job.SharpenTotal = quote.Totals.SharpenTotal
	job.DiscountAmount = quote.Totals.DiscountAmount
	job.GST = quote.Totals.GST
	job.GrandTotal = quote.Totals.GrandTotal
	job.BalanceDue = quote.BalanceDue
	job.TransportNotes = quote.Transport.Description

	lines := make([]string, 0, len(quote.SharpenLines))
	for _, l := range quote.SharpenLines {
		lines = append(lines, l.Description)
	}
	job.SharpenNotes = strings.Join(lines, "\n")
}

func jobToDraft(job *domain.Job, parts []domain.JobPart, items []domain.SharpenItem) *JobDraft {
	return &JobDraft{
		CustomerID:        job.CustomerID,
		BrandID:           job.BrandID,
		ModelID:           job.ModelID,
		CategoryID:        job.CategoryID,
		MachineNotes:      job.MachineNotes,
		SizeTierOverride:  job.SizeTierOverride,
		Description:       job.Description,
		LabourHours:       job.LabourHours,
		LabourRate:        job.LabourRate,
		PickupRequested:   job.PickupRequested,
		PickupKm:          job.PickupKm,
		DeliveryRequested: job.DeliveryRequested,
		DeliveryKm:        job.DeliveryKm,
		DiscountType:      job.DiscountType,
		DiscountValue:     job.DiscountValue,
		DepositPaid:       job.DepositPaid,
		Parts:             parts,
		SharpenItems:      items,
	}
}
