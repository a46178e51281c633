package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"mowerworks-backend/internal/domain"
	"mowerworks-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, name, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(address, ''), COALESCE(notes, ''), created_on, updated_on, deleted_on`

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (name, phone, email, address, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Name, c.Phone, c.Email, c.Address, c.Notes, time.Now(), time.Now()).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.Notes, &c.CreatedOn, &c.UpdatedOn, &c.DeletedOn)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name=$1, phone=$2, email=$3, address=$4, notes=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, c.Name, c.Phone, c.Email, c.Address, c.Notes, time.Now(), c.ID)
	return err
}

func (r *customerRepository) Delete(ctx context.Context, id int32) error {
	query := `UPDATE customers SET deleted_on = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	return err
}

func (r *customerRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error) {
	var count int32
	countQuery := `SELECT count(*) FROM customers WHERE deleted_on IS NULL`
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + customerColumns + ` FROM customers WHERE deleted_on IS NULL ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	customers, err := scanCustomers(rows)
	if err != nil {
		return nil, 0, err
	}
	return customers, count, nil
}

func (r *customerRepository) Search(ctx context.Context, query string, page, pageSize int32) ([]domain.Customer, int32, error) {
	pattern := "%" + query + "%"

	var count int32
	countQuery := `SELECT count(*) FROM customers WHERE deleted_on IS NULL AND (name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1)`
	if err := r.db.QueryRowContext(ctx, countQuery, pattern).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	sqlQuery := fmt.Sprintf(`SELECT %s FROM customers WHERE deleted_on IS NULL AND (name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1) ORDER BY name LIMIT $2 OFFSET $3`, customerColumns)
	rows, err := r.db.QueryContext(ctx, sqlQuery, pattern, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	customers, err := scanCustomers(rows)
	if err != nil {
		return nil, 0, err
	}
	return customers, count, nil
}

func scanCustomers(rows *sql.Rows) ([]domain.Customer, error) {
	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.Notes, &c.CreatedOn, &c.UpdatedOn, &c.DeletedOn); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
