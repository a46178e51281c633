package service

import (
	"context"
	"errors"
	"strings"

	"mowerworks-backend/internal/domain"
	"mowerworks-backend/internal/repository"
)

var (
	ErrPartSKURequired = errors.New("part sku is required")
	ErrNegativePrice   = errors.New("part unit price cannot be negative")
)

type partService struct {
	partRepo repository.PartRepository
}

func NewPartService(partRepo repository.PartRepository) PartService {
	return &partService{partRepo: partRepo}
}

func (s *partService) CreatePart(ctx context.Context, part *domain.Part) error {
	if err := validatePart(part); err != nil {
		return err
	}
	return s.partRepo.Create(ctx, part)
}

func (s *partService) GetPart(ctx context.Context, id int32) (*domain.Part, error) {
	return s.partRepo.GetByID(ctx, id)
}

func (s *partService) UpdatePart(ctx context.Context, part *domain.Part) error {
	if err := validatePart(part); err != nil {
		return err
	}
	return s.partRepo.Update(ctx, part)
}

func (s *partService) DeletePart(ctx context.Context, id int32) error {
	return s.partRepo.Delete(ctx, id)
}

func (s *partService) ListParts(ctx context.Context, query string, page, pageSize int32) ([]domain.Part, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	if query = strings.TrimSpace(query); query != "" {
		return s.partRepo.Search(ctx, query, page, pageSize)
	}
	return s.partRepo.List(ctx, page, pageSize)
}

func (s *partService) AdjustStock(ctx context.Context, id, delta int32) (*domain.Part, error) {
	if err := s.partRepo.AdjustStock(ctx, id, delta); err != nil {
		return nil, err
	}
	return s.partRepo.GetByID(ctx, id)
}

func validatePart(part *domain.Part) error {
	part.SKU = strings.TrimSpace(part.SKU)
	if part.SKU == "" {
		return ErrPartSKURequired
	}
	if part.UnitPrice.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}
