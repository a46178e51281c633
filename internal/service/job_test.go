package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mowerworks-backend/internal/domain"
)

type jobServiceFixture struct {
	jobRepo       *MockJobRepo
	customerRepo  *MockCustomerRepo
	partRepo      *MockPartRepo
	transportRepo *MockTransportConfigRepo
	machineRepo   *MockMachineRepo
	email         *MockEmailService
	svc           JobService
}

func newJobServiceFixture() *jobServiceFixture {
	f := &jobServiceFixture{
		jobRepo:       new(MockJobRepo),
		customerRepo:  new(MockCustomerRepo),
		partRepo:      new(MockPartRepo),
		transportRepo: new(MockTransportConfigRepo),
		machineRepo:   new(MockMachineRepo),
		email:         new(MockEmailService),
	}
	f.svc = NewJobService(
		f.jobRepo,
		f.customerRepo,
		f.partRepo,
		f.transportRepo,
		NewMachineService(f.machineRepo),
		f.email,
		decimal.NewFromFloat(0.10),
		decimal.NewFromInt(95),
	)
	return f
}

func testRates() *domain.TransportConfig {
	return &domain.TransportConfig{
		ID:              1,
		SmallMediumBase: decimal.NewFromInt(15),
		LargeBase:       decimal.NewFromInt(30),
		IncludedKm:      5,
		PerKmRate:       decimal.NewFromInt(5),
	}
}

func TestJobService_QuoteJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Full Draft", func(t *testing.T) {
		f := newJobServiceFixture()
		categoryID := int32(2)
		partID := int32(11)

		f.machineRepo.On("GetCategory", ctx, categoryID).
			Return(&domain.MachineCategory{ID: categoryID, Name: "Push mower", SizeTier: domain.SizeTierSmallMedium}, nil)
		f.transportRepo.On("Get", ctx).Return(testRates(), nil)
		f.partRepo.On("GetByID", ctx, partID).
			Return(&domain.Part{ID: partID, Name: "Air filter", UnitPrice: decimal.RequireFromString("25.50")}, nil)

		draft := &JobDraft{
			CustomerID:      7,
			CategoryID:      &categoryID,
			LabourHours:     decimal.RequireFromString("1.5"),
			LabourRate:      decimal.NewFromInt(95),
			PickupRequested: true,
			PickupKm:        12,
			DepositPaid:     decimal.RequireFromString("45.40"),
			Parts: []domain.JobPart{
				{Description: "Spark plug", Quantity: 2, UnitPrice: decimal.NewFromInt(30)},
				{PartID: &partID, Quantity: 1},
			},
			SharpenItems: []domain.SharpenItem{
				{Type: domain.SharpenItemChainsaw, BarSize: domain.BarSize14To16, LinkCount: 58, Mode: domain.ChainsawModeChainOnly, Quantity: 2},
			},
		}

		quote, err := f.svc.QuoteJob(ctx, draft)
		assert.NoError(t, err)

		// parts 85.50 + labour 142.50 + transport 50 + sharpen 36 = 314.00
		assert.Equal(t, "85.50", quote.Totals.PartsSubtotal.StringFixed(2))
		assert.Equal(t, "142.50", quote.Totals.LabourTotal.StringFixed(2))
		assert.Equal(t, "50.00", quote.Totals.TransportTotal.StringFixed(2))
		assert.Equal(t, "36.00", quote.Totals.SharpenTotal.StringFixed(2))
		assert.Equal(t, "314.00", quote.Totals.Subtotal.StringFixed(2))
		assert.Equal(t, "31.40", quote.Totals.GST.StringFixed(2))
		assert.Equal(t, "345.40", quote.Totals.GrandTotal.StringFixed(2))
		assert.Equal(t, "300.00", quote.BalanceDue.StringFixed(2))

		assert.Len(t, quote.SharpenLines, 1)
		assert.Contains(t, quote.Transport.Description, "Pick-up 12.0km")
	})

	t.Run("No Transport Skips Rate Lookup", func(t *testing.T) {
		f := newJobServiceFixture()

		draft := &JobDraft{
			CustomerID:  7,
			LabourHours: decimal.NewFromInt(1),
		}

		quote, err := f.svc.QuoteJob(ctx, draft)
		assert.NoError(t, err)
		// 1h at the 95 default rate, GST on top
		assert.Equal(t, "95.00", quote.Totals.LabourTotal.StringFixed(2))
		assert.Equal(t, "104.50", quote.Totals.GrandTotal.StringFixed(2))
		f.transportRepo.AssertNotCalled(t, "Get", ctx)
	})

	t.Run("Deposit Larger Than Total Clamps To Zero", func(t *testing.T) {
		f := newJobServiceFixture()

		draft := &JobDraft{
			CustomerID:  7,
			LabourHours: decimal.NewFromInt(1),
			LabourRate:  decimal.NewFromInt(50),
			DepositPaid: decimal.NewFromInt(500),
		}

		quote, err := f.svc.QuoteJob(ctx, draft)
		assert.NoError(t, err)
		assert.Equal(t, "0.00", quote.BalanceDue.StringFixed(2))
	})
}

func TestJobService_CreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newJobServiceFixture()
		f.customerRepo.On("GetByID", ctx, int32(7)).Return(&domain.Customer{ID: 7, Name: "Kerry"}, nil)
		f.jobRepo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)
		f.jobRepo.On("ReplaceParts", ctx, int32(0), mock.Anything).Return(nil)
		f.jobRepo.On("ReplaceSharpenItems", ctx, int32(0), mock.Anything).Return(nil)

		draft := &JobDraft{
			CustomerID:  7,
			LabourHours: decimal.NewFromInt(2),
			LabourRate:  decimal.NewFromInt(95),
		}

		job, err := f.svc.CreateJob(ctx, draft, "")
		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusQuote, job.Status, "status defaults to QUOTE")
		assert.NotEmpty(t, job.Reference)
		assert.Equal(t, "209.00", job.GrandTotal.StringFixed(2))
	})

	t.Run("Missing Customer", func(t *testing.T) {
		f := newJobServiceFixture()

		_, err := f.svc.CreateJob(ctx, &JobDraft{}, domain.JobStatusQuote)
		assert.ErrorIs(t, err, ErrCustomerRequired)
	})
}

func TestJobService_UpdateJobStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid Transition", func(t *testing.T) {
		f := newJobServiceFixture()
		f.jobRepo.On("GetByID", ctx, int32(1)).Return(&domain.Job{ID: 1, Status: domain.JobStatusQuote}, nil)

		_, err := f.svc.UpdateJobStatus(ctx, 1, domain.JobStatusClosed)
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	})

	t.Run("Completed To Awaiting Pickup Sends Email", func(t *testing.T) {
		f := newJobServiceFixture()
		job := &domain.Job{
			ID:         2,
			Reference:  "J-ABC12345",
			CustomerID: 7,
			Status:     domain.JobStatusCompleted,
			BalanceDue: decimal.RequireFromString("120.00"),
		}
		f.jobRepo.On("GetByID", ctx, int32(2)).Return(job, nil)
		f.jobRepo.On("UpdateStatus", ctx, int32(2), domain.JobStatusAwaitingPickup).Return(nil)
		f.customerRepo.On("GetByID", ctx, int32(7)).
			Return(&domain.Customer{ID: 7, Name: "Kerry", Email: "kerry@example.com"}, nil)
		f.email.On("SendPickupReady", ctx, "kerry@example.com", "Kerry", "J-ABC12345", job.BalanceDue).Return(nil)

		updated, err := f.svc.UpdateJobStatus(ctx, 2, domain.JobStatusAwaitingPickup)
		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusAwaitingPickup, updated.Status)
		f.email.AssertExpectations(t)
	})

	t.Run("Email Failure Does Not Fail Transition", func(t *testing.T) {
		f := newJobServiceFixture()
		job := &domain.Job{ID: 3, Reference: "J-DEF67890", CustomerID: 8, Status: domain.JobStatusCompleted}
		f.jobRepo.On("GetByID", ctx, int32(3)).Return(job, nil)
		f.jobRepo.On("UpdateStatus", ctx, int32(3), domain.JobStatusAwaitingPickup).Return(nil)
		f.customerRepo.On("GetByID", ctx, int32(8)).
			Return(&domain.Customer{ID: 8, Name: "Sam", Email: "sam@example.com"}, nil)
		f.email.On("SendPickupReady", ctx, "sam@example.com", "Sam", "J-DEF67890", mock.Anything).Return(assert.AnError)

		_, err := f.svc.UpdateJobStatus(ctx, 3, domain.JobStatusAwaitingPickup)
		assert.NoError(t, err)
	})
}

func TestJobService_EmailQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newJobServiceFixture()
		job := &domain.Job{ID: 9, Reference: "J-QUOTE123", CustomerID: 5, GrandTotal: decimal.RequireFromString("345.40")}
		f.jobRepo.On("GetByID", ctx, int32(9)).Return(job, nil)
		f.customerRepo.On("GetByID", ctx, int32(5)).
			Return(&domain.Customer{ID: 5, Name: "Dana", Email: "dana@example.com"}, nil)
		f.email.On("SendQuote", ctx, "dana@example.com", "Dana", job).Return(nil)

		err := f.svc.EmailQuote(ctx, 9)
		assert.NoError(t, err)
		f.email.AssertExpectations(t)
	})

	t.Run("Customer Without Email", func(t *testing.T) {
		f := newJobServiceFixture()
		f.jobRepo.On("GetByID", ctx, int32(10)).Return(&domain.Job{ID: 10, CustomerID: 6}, nil)
		f.customerRepo.On("GetByID", ctx, int32(6)).Return(&domain.Customer{ID: 6, Name: "Lee"}, nil)

		err := f.svc.EmailQuote(ctx, 10)
		assert.ErrorIs(t, err, ErrCustomerHasNoEmail)
		f.email.AssertNotCalled(t, "SendQuote", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestJobService_UpdateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Closed Job Rejected", func(t *testing.T) {
		f := newJobServiceFixture()
		f.jobRepo.On("GetByID", ctx, int32(4)).Return(&domain.Job{ID: 4, Status: domain.JobStatusClosed}, nil)

		_, err := f.svc.UpdateJob(ctx, 4, &JobDraft{CustomerID: 7})
		assert.ErrorIs(t, err, ErrJobClosed)
	})

	t.Run("Keeps Reference And Status", func(t *testing.T) {
		f := newJobServiceFixture()
		existing := &domain.Job{ID: 5, Reference: "J-KEEP0001", CustomerID: 7, Status: domain.JobStatusBooked, CreatedOn: "2026-08-01T00:00:00Z"}
		f.jobRepo.On("GetByID", ctx, int32(5)).Return(existing, nil)
		f.jobRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)
		f.jobRepo.On("ReplaceParts", ctx, int32(5), mock.Anything).Return(nil)
		f.jobRepo.On("ReplaceSharpenItems", ctx, int32(5), mock.Anything).Return(nil)

		job, err := f.svc.UpdateJob(ctx, 5, &JobDraft{
			CustomerID:  7,
			LabourHours: decimal.NewFromInt(1),
			LabourRate:  decimal.NewFromInt(100),
		})
		assert.NoError(t, err)
		assert.Equal(t, "J-KEEP0001", job.Reference)
		assert.Equal(t, domain.JobStatusBooked, job.Status)
		assert.Equal(t, "110.00", job.GrandTotal.StringFixed(2))
	})
}

func TestJobService_RecoverTotals(t *testing.T) {
	ctx := context.Background()
	f := newJobServiceFixture()

	// Stored job whose snapshot was corrupted; the line items are intact.
	stored := &domain.Job{
		ID:          6,
		Reference:   "J-RECOVER1",
		CustomerID:  7,
		Status:      domain.JobStatusBooked,
		LabourHours: decimal.NewFromInt(1),
		LabourRate:  decimal.NewFromInt(80),
		GrandTotal:  decimal.NewFromInt(9999),
	}
	f.jobRepo.On("GetByID", ctx, int32(6)).Return(stored, nil)
	f.jobRepo.On("GetParts", ctx, int32(6)).Return([]domain.JobPart{
		{JobID: 6, Description: "Blade set", Quantity: 1, UnitPrice: decimal.NewFromInt(40)},
	}, nil)
	f.jobRepo.On("GetSharpenItems", ctx, int32(6)).Return([]domain.SharpenItem{
		{JobID: 6, Type: domain.SharpenItemKnife, Quantity: 5},
	}, nil)
	f.jobRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)

	job, err := f.svc.RecoverTotals(ctx, 6)
	assert.NoError(t, err)
	// parts 40 + labour 80 + knives 40 = 160, plus 10% GST
	assert.Equal(t, "176.00", job.GrandTotal.StringFixed(2))
	f.jobRepo.AssertExpectations(t)
}
