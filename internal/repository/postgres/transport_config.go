package postgres

import (
	"context"
	"database/sql"
	"time"

	"mowerworks-backend/internal/domain"
	"mowerworks-backend/internal/repository"
)

type transportConfigRepository struct {
	db *sql.DB
}

func NewTransportConfigRepository(db *sql.DB) repository.TransportConfigRepository {
	return &transportConfigRepository{db: db}
}

// Get returns the single active rate schedule row.
func (r *transportConfigRepository) Get(ctx context.Context) (*domain.TransportConfig, error) {
	cfg := &domain.TransportConfig{}
	query := `SELECT id, small_medium_base, large_base, included_km, per_km_rate, COALESCE(origin_address, ''), updated_on
	          FROM transport_config ORDER BY id LIMIT 1`
	err := r.db.QueryRowContext(ctx, query).Scan(
		&cfg.ID, &cfg.SmallMediumBase, &cfg.LargeBase, &cfg.IncludedKm, &cfg.PerKmRate, &cfg.OriginAddress, &cfg.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *transportConfigRepository) Update(ctx context.Context, cfg *domain.TransportConfig) error {
	query := `UPDATE transport_config SET small_medium_base=$1, large_base=$2, included_km=$3, per_km_rate=$4, origin_address=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, cfg.SmallMediumBase, cfg.LargeBase, cfg.IncludedKm, cfg.PerKmRate, cfg.OriginAddress, time.Now(), cfg.ID)
	return err
}
