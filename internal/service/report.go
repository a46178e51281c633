package service

import (
	"context"
	"errors"
	"time"

	"mowerworks-backend/internal/domain"
	"mowerworks-backend/internal/repository"
)

var ErrInvalidPeriod = errors.New("invalid reporting period")

type reportService struct {
	jobRepo repository.JobRepository
}

func NewReportService(jobRepo repository.JobRepository) ReportService {
	return &reportService{jobRepo: jobRepo}
}

func (s *reportService) RevenueSummary(ctx context.Context, from, to string) (*domain.RevenueSummary, error) {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, ErrInvalidPeriod
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, ErrInvalidPeriod
	}
	if !end.After(start) {
		return nil, ErrInvalidPeriod
	}
	return s.jobRepo.RevenueSummary(ctx, from, to)
}

func (s *reportService) JobStatusCounts(ctx context.Context) (map[domain.JobStatus]int32, error) {
	return s.jobRepo.CountByStatus(ctx)
}
