package repository

import (
	"context"

	"mowerworks-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error)
	Search(ctx context.Context, query string, page, pageSize int32) ([]domain.Customer, int32, error)
}

type MachineRepository interface {
	CreateBrand(ctx context.Context, brand *domain.Brand) error
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	DeleteBrand(ctx context.Context, id int32) error

	CreateModel(ctx context.Context, model *domain.Model) error
	ListModelsByBrand(ctx context.Context, brandID int32) ([]domain.Model, error)
	DeleteModel(ctx context.Context, id int32) error

	CreateCategory(ctx context.Context, category *domain.MachineCategory) error
	GetCategory(ctx context.Context, id int32) (*domain.MachineCategory, error)
	ListCategories(ctx context.Context) ([]domain.MachineCategory, error)
}

type PartRepository interface {
	Create(ctx context.Context, part *domain.Part) error
	GetByID(ctx context.Context, id int32) (*domain.Part, error)
	GetBySKU(ctx context.Context, sku string) (*domain.Part, error)
	Update(ctx context.Context, part *domain.Part) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Part, int32, error)
	Search(ctx context.Context, query string, page, pageSize int32) ([]domain.Part, int32, error)
	AdjustStock(ctx context.Context, id, delta int32) error
}

type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id int32) (*domain.Job, error)
	GetByReference(ctx context.Context, reference string) (*domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	UpdateStatus(ctx context.Context, id int32, status domain.JobStatus) error
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Job, int32, error)
	ListByCustomer(ctx context.Context, customerID int32, page, pageSize int32) ([]domain.Job, int32, error)

	// Child rows; replaced wholesale on every job save.
	ReplaceParts(ctx context.Context, jobID int32, parts []domain.JobPart) error
	GetParts(ctx context.Context, jobID int32) ([]domain.JobPart, error)
	ReplaceSharpenItems(ctx context.Context, jobID int32, items []domain.SharpenItem) error
	GetSharpenItems(ctx context.Context, jobID int32) ([]domain.SharpenItem, error)

	ListAwaitingPickupSince(ctx context.Context, completedBefore string) ([]domain.Job, error)
	RevenueSummary(ctx context.Context, from, to string) (*domain.RevenueSummary, error)
	CountByStatus(ctx context.Context) (map[domain.JobStatus]int32, error)
}

type TransportConfigRepository interface {
	Get(ctx context.Context) (*domain.TransportConfig, error)
	Update(ctx context.Context, cfg *domain.TransportConfig) error
}
