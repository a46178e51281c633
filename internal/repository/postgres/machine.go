package postgres

import (
	"context"
	"database/sql"
	"time"

	"mowerworks-backend/internal/domain"
	"mowerworks-backend/internal/repository"
)

type machineRepository struct {
	db *sql.DB
}

func NewMachineRepository(db *sql.DB) repository.MachineRepository {
	return &machineRepository{db: db}
}

func (r *machineRepository) CreateBrand(ctx context.Context, b *domain.Brand) error {
	query := `INSERT INTO brands (name, created_on) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.Name, time.Now()).Scan(&b.ID)
}

func (r *machineRepository) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	query := `SELECT id, name, created_on, deleted_on FROM brands WHERE deleted_on IS NULL ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []domain.Brand
	for rows.Next() {
		var b domain.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedOn, &b.DeletedOn); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (r *machineRepository) DeleteBrand(ctx context.Context, id int32) error {
	query := `UPDATE brands SET deleted_on = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	return err
}

func (r *machineRepository) CreateModel(ctx context.Context, m *domain.Model) error {
	query := `INSERT INTO models (brand_id, category_id, name, created_on) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.BrandID, m.CategoryID, m.Name, time.Now()).Scan(&m.ID)
}

func (r *machineRepository) ListModelsByBrand(ctx context.Context, brandID int32) ([]domain.Model, error) {
	query := `SELECT id, brand_id, category_id, name, created_on, deleted_on FROM models WHERE brand_id = $1 AND deleted_on IS NULL ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, brandID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var models []domain.Model
	for rows.Next() {
		var m domain.Model
		if err := rows.Scan(&m.ID, &m.BrandID, &m.CategoryID, &m.Name, &m.CreatedOn, &m.DeletedOn); err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, rows.Err()
}

func (r *machineRepository) DeleteModel(ctx context.Context, id int32) error {
	query := `UPDATE models SET deleted_on = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	return err
}

func (r *machineRepository) CreateCategory(ctx context.Context, c *domain.MachineCategory) error {
	query := `INSERT INTO machine_categories (name, size_tier) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Name, c.SizeTier).Scan(&c.ID)
}

func (r *machineRepository) GetCategory(ctx context.Context, id int32) (*domain.MachineCategory, error) {
	c := &domain.MachineCategory{}
	query := `SELECT id, name, size_tier FROM machine_categories WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.SizeTier)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *machineRepository) ListCategories(ctx context.Context) ([]domain.MachineCategory, error) {
	query := `SELECT id, name, size_tier FROM machine_categories ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.MachineCategory
	for rows.Next() {
		var c domain.MachineCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.SizeTier); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
