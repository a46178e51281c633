package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"mowerworks-backend/internal/domain"
	"mowerworks-backend/internal/repository"
)

type partRepository struct {
	db *sql.DB
}

func NewPartRepository(db *sql.DB) repository.PartRepository {
	return &partRepository{db: db}
}

const partColumns = `id, sku, name, brand_id, unit_price, stock_qty, created_on, updated_on, deleted_on`

func (r *partRepository) Create(ctx context.Context, p *domain.Part) error {
	query := `INSERT INTO parts (sku, name, brand_id, unit_price, stock_qty, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.SKU, p.Name, p.BrandID, p.UnitPrice, p.StockQty, time.Now(), time.Now()).Scan(&p.ID)
}

func (r *partRepository) GetByID(ctx context.Context, id int32) (*domain.Part, error) {
	p := &domain.Part{}
	query := `SELECT ` + partColumns + ` FROM parts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.SKU, &p.Name, &p.BrandID, &p.UnitPrice, &p.StockQty, &p.CreatedOn, &p.UpdatedOn, &p.DeletedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *partRepository) GetBySKU(ctx context.Context, sku string) (*domain.Part, error) {
	p := &domain.Part{}
	query := `SELECT ` + partColumns + ` FROM parts WHERE sku = $1 AND deleted_on IS NULL`
	err := r.db.QueryRowContext(ctx, query, sku).Scan(&p.ID, &p.SKU, &p.Name, &p.BrandID, &p.UnitPrice, &p.StockQty, &p.CreatedOn, &p.UpdatedOn, &p.DeletedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *partRepository) Update(ctx context.Context, p *domain.Part) error {
	query := `UPDATE parts SET sku=$1, name=$2, brand_id=$3, unit_price=$4, stock_qty=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, p.SKU, p.Name, p.BrandID, p.UnitPrice, p.StockQty, time.Now(), p.ID)
	return err
}

func (r *partRepository) Delete(ctx context.Context, id int32) error {
	query := `UPDATE parts SET deleted_on = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	return err
}

func (r *partRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Part, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM parts WHERE deleted_on IS NULL`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + partColumns + ` FROM parts WHERE deleted_on IS NULL ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	parts, err := scanParts(rows)
	if err != nil {
		return nil, 0, err
	}
	return parts, count, nil
}

func (r *partRepository) Search(ctx context.Context, query string, page, pageSize int32) ([]domain.Part, int32, error) {
	pattern := "%" + query + "%"

	var count int32
	countQuery := `SELECT count(*) FROM parts WHERE deleted_on IS NULL AND (sku ILIKE $1 OR name ILIKE $1)`
	if err := r.db.QueryRowContext(ctx, countQuery, pattern).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	sqlQuery := fmt.Sprintf(`SELECT %s FROM parts WHERE deleted_on IS NULL AND (sku ILIKE $1 OR name ILIKE $1) ORDER BY name LIMIT $2 OFFSET $3`, partColumns)
	rows, err := r.db.QueryContext(ctx, sqlQuery, pattern, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	parts, err := scanParts(rows)
	if err != nil {
		return nil, 0, err
	}
	return parts, count, nil
}

func (r *partRepository) AdjustStock(ctx context.Context, id, delta int32) error {
	query := `UPDATE parts SET stock_qty = stock_qty + $1, updated_on = $2 WHERE id = $3 AND stock_qty + $1 >= 0`
	res, err := r.db.ExecContext(ctx, query, delta, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("stock adjustment of %d rejected for part %d", delta, id)
	}
	return nil
}

func scanParts(rows *sql.Rows) ([]domain.Part, error) {
	var parts []domain.Part
	for rows.Next() {
		var p domain.Part
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.BrandID, &p.UnitPrice, &p.StockQty, &p.CreatedOn, &p.UpdatedOn, &p.DeletedOn); err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}
