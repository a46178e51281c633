package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"mowerworks-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCustomerRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Customer), args.Get(1).(int32), args.Error(2)
}
func (m *MockCustomerRepo) Search(ctx context.Context, query string, page, pageSize int32) ([]domain.Customer, int32, error) {
	args := m.Called(ctx, query, page, pageSize)
	return args.Get(0).([]domain.Customer), args.Get(1).(int32), args.Error(2)
}

// MockMachineRepo
type MockMachineRepo struct {
	mock.Mock
}

func (m *MockMachineRepo) CreateBrand(ctx context.Context, brand *domain.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}
func (m *MockMachineRepo) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Brand), args.Error(1)
}
func (m *MockMachineRepo) DeleteBrand(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMachineRepo) CreateModel(ctx context.Context, model *domain.Model) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}
func (m *MockMachineRepo) ListModelsByBrand(ctx context.Context, brandID int32) ([]domain.Model, error) {
	args := m.Called(ctx, brandID)
	return args.Get(0).([]domain.Model), args.Error(1)
}
func (m *MockMachineRepo) DeleteModel(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMachineRepo) CreateCategory(ctx context.Context, category *domain.MachineCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}
func (m *MockMachineRepo) GetCategory(ctx context.Context, id int32) (*domain.MachineCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MachineCategory), args.Error(1)
}
func (m *MockMachineRepo) ListCategories(ctx context.Context) ([]domain.MachineCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MachineCategory), args.Error(1)
}

// MockPartRepo
type MockPartRepo struct {
	mock.Mock
}

func (m *MockPartRepo) Create(ctx context.Context, part *domain.Part) error {
	args := m.Called(ctx, part)
	return args.Error(0)
}
func (m *MockPartRepo) GetByID(ctx context.Context, id int32) (*domain.Part, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Part), args.Error(1)
}
func (m *MockPartRepo) GetBySKU(ctx context.Context, sku string) (*domain.Part, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Part), args.Error(1)
}
func (m *MockPartRepo) Update(ctx context.Context, part *domain.Part) error {
	args := m.Called(ctx, part)
	return args.Error(0)
}
func (m *MockPartRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPartRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Part, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Part), args.Get(1).(int32), args.Error(2)
}
func (m *MockPartRepo) Search(ctx context.Context, query string, page, pageSize int32) ([]domain.Part, int32, error) {
	args := m.Called(ctx, query, page, pageSize)
	return args.Get(0).([]domain.Part), args.Get(1).(int32), args.Error(2)
}
func (m *MockPartRepo) AdjustStock(ctx context.Context, id, delta int32) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

// MockJobRepo
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int32) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetByReference(ctx context.Context, reference string) (*domain.Job, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}
func (m *MockJobRepo) UpdateStatus(ctx context.Context, id int32, status domain.JobStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockJobRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Job, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Job), args.Get(1).(int32), args.Error(2)
}
func (m *MockJobRepo) ListByCustomer(ctx context.Context, customerID int32, page, pageSize int32) ([]domain.Job, int32, error) {
	args := m.Called(ctx, customerID, page, pageSize)
	return args.Get(0).([]domain.Job), args.Get(1).(int32), args.Error(2)
}
func (m *MockJobRepo) ReplaceParts(ctx context.Context, jobID int32, parts []domain.JobPart) error {
	args := m.Called(ctx, jobID, parts)
	return args.Error(0)
}
func (m *MockJobRepo) GetParts(ctx context.Context, jobID int32) ([]domain.JobPart, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).([]domain.JobPart), args.Error(1)
}
func (m *MockJobRepo) ReplaceSharpenItems(ctx context.Context, jobID int32, items []domain.SharpenItem) error {
	args := m.Called(ctx, jobID, items)
	return args.Error(0)
}
func (m *MockJobRepo) GetSharpenItems(ctx context.Context, jobID int32) ([]domain.SharpenItem, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).([]domain.SharpenItem), args.Error(1)
}
func (m *MockJobRepo) ListAwaitingPickupSince(ctx context.Context, completedBefore string) ([]domain.Job, error) {
	args := m.Called(ctx, completedBefore)
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) RevenueSummary(ctx context.Context, from, to string) (*domain.RevenueSummary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueSummary), args.Error(1)
}
func (m *MockJobRepo) CountByStatus(ctx context.Context) (map[domain.JobStatus]int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[domain.JobStatus]int32), args.Error(1)
}

// MockTransportConfigRepo
type MockTransportConfigRepo struct {
	mock.Mock
}

func (m *MockTransportConfigRepo) Get(ctx context.Context) (*domain.TransportConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransportConfig), args.Error(1)
}
func (m *MockTransportConfigRepo) Update(ctx context.Context, cfg *domain.TransportConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendQuote(ctx context.Context, to, customerName string, job *domain.Job) error {
	args := m.Called(ctx, to, customerName, job)
	return args.Error(0)
}
func (m *MockEmailService) SendPickupReady(ctx context.Context, to, customerName, reference string, balanceDue decimal.Decimal) error {
	args := m.Called(ctx, to, customerName, reference, balanceDue)
	return args.Error(0)
}
func (m *MockEmailService) SendPickupReminder(ctx context.Context, to, customerName, reference string, daysWaiting int) error {
	args := m.Called(ctx, to, customerName, reference, daysWaiting)
	return args.Error(0)
}
func (m *MockEmailService) SendWeeklyRevenueReport(ctx context.Context, to string, summary *domain.RevenueSummary) error {
	args := m.Called(ctx, to, summary)
	return args.Error(0)
}
