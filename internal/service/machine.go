package service

import (
	"context"

	"mowerworks-backend/internal/domain"
	"mowerworks-backend/internal/repository"
)

type machineService struct {
	machineRepo repository.MachineRepository
}

func NewMachineService(machineRepo repository.MachineRepository) MachineService {
	return &machineService{machineRepo: machineRepo}
}

func (s *machineService) CreateBrand(ctx context.Context, brand *domain.Brand) error {
	return s.machineRepo.CreateBrand(ctx, brand)
}

func (s *machineService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	return s.machineRepo.ListBrands(ctx)
}

func (s *machineService) DeleteBrand(ctx context.Context, id int32) error {
	return s.machineRepo.DeleteBrand(ctx, id)
}

func (s *machineService) CreateModel(ctx context.Context, model *domain.Model) error {
	return s.machineRepo.CreateModel(ctx, model)
}

func (s *machineService) ListModels(ctx context.Context, brandID int32) ([]domain.Model, error) {
	return s.machineRepo.ListModelsByBrand(ctx, brandID)
}

func (s *machineService) DeleteModel(ctx context.Context, id int32) error {
	return s.machineRepo.DeleteModel(ctx, id)
}

func (s *machineService) CreateCategory(ctx context.Context, category *domain.MachineCategory) error {
	return s.machineRepo.CreateCategory(ctx, category)
}

func (s *machineService) ListCategories(ctx context.Context) ([]domain.MachineCategory, error) {
	return s.machineRepo.ListCategories(ctx)
}

func (s *machineService) ResolveSizeTier(ctx context.Context, categoryID *int32, override *domain.SizeTier) (domain.SizeTier, error) {
	if override != nil {
		return *override, nil
	}
	if categoryID != nil {
		category, err := s.machineRepo.GetCategory(ctx, *categoryID)
		if err != nil {
			return "", err
		}
		if category.SizeTier != "" {
			return category.SizeTier, nil
		}
	}
	return domain.SizeTierSmallMedium, nil
}
