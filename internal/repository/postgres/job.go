package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"mowerworks-backend/internal/domain"
	"mowerworks-backend/internal/repository"
)

type jobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `id, reference, customer_id, brand_id, model_id, category_id, COALESCE(machine_notes, ''), size_tier_override,
	status, COALESCE(description, ''), labour_hours, labour_rate,
	pickup_requested, pickup_km, delivery_requested, delivery_km,
	COALESCE(discount_type, ''), discount_value, deposit_paid,
	parts_subtotal, labour_total, transport_total, sharpen_total, discount_amount, gst, grand_total, balance_due,
	COALESCE(transport_notes, ''), COALESCE(sharpen_notes, ''), created_on, updated_on, completed_on`

func (r *jobRepository) Create(ctx context.Context, j *domain.Job) error {
	query := `INSERT INTO jobs (reference, customer_id, brand_id, model_id, category_id, machine_notes, size_tier_override,
	            status, description, labour_hours, labour_rate,
	            pickup_requested, pickup_km, delivery_requested, delivery_km,
	            discount_type, discount_value, deposit_paid,
	            parts_subtotal, labour_total, transport_total, sharpen_total, discount_amount, gst, grand_total, balance_due,
	            transport_notes, sharpen_notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30)
	          RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		j.Reference, j.CustomerID, j.BrandID, j.ModelID, j.CategoryID, j.MachineNotes, j.SizeTierOverride,
		j.Status, j.Description, j.LabourHours, j.LabourRate,
		j.PickupRequested, j.PickupKm, j.DeliveryRequested, j.DeliveryKm,
		j.DiscountType, j.DiscountValue, j.DepositPaid,
		j.PartsSubtotal, j.LabourTotal, j.TransportTotal, j.SharpenTotal, j.DiscountAmount, j.GST, j.GrandTotal, j.BalanceDue,
		j.TransportNotes, j.SharpenNotes, time.Now(), time.Now()).Scan(&j.ID)
}

func (r *jobRepository) GetByID(ctx context.Context, id int32) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	return r.scanJob(r.db.QueryRowContext(ctx, query, id))
}

func (r *jobRepository) GetByReference(ctx context.Context, reference string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE reference = $1`
	return r.scanJob(r.db.QueryRowContext(ctx, query, reference))
}

func (r *jobRepository) Update(ctx context.Context, j *domain.Job) error {
	query := `UPDATE jobs SET customer_id=$1, brand_id=$2, model_id=$3, category_id=$4, machine_notes=$5, size_tier_override=$6,
	            status=$7, description=$8, labour_hours=$9, labour_rate=$10,
	            pickup_requested=$11, pickup_km=$12, delivery_requested=$13, delivery_km=$14,
	            discount_type=$15, discount_value=$16, deposit_paid=$17,
	            parts_subtotal=$18, labour_total=$19, transport_total=$20, sharpen_total=$21, discount_amount=$22, gst=$23, grand_total=$24, balance_due=$25,
	            transport_notes=$26, sharpen_notes=$27, updated_on=$28, completed_on=$29
	          WHERE id=$30`
	_, err := r.db.ExecContext(ctx, query,
		j.CustomerID, j.BrandID, j.ModelID, j.CategoryID, j.MachineNotes, j.SizeTierOverride,
		j.Status, j.Description, j.LabourHours, j.LabourRate,
		j.PickupRequested, j.PickupKm, j.DeliveryRequested, j.DeliveryKm,
		j.DiscountType, j.DiscountValue, j.DepositPaid,
		j.PartsSubtotal, j.LabourTotal, j.TransportTotal, j.SharpenTotal, j.DiscountAmount, j.GST, j.GrandTotal, j.BalanceDue,
		j.TransportNotes, j.SharpenNotes, time.Now(), j.CompletedOn, j.ID)
	return err
}

func (r *jobRepository) UpdateStatus(ctx context.Context, id int32, status domain.JobStatus) error {
	if status == domain.JobStatusCompleted || status == domain.JobStatusAwaitingPickup {
		query := `UPDATE jobs SET status=$1, completed_on=COALESCE(completed_on, $2), updated_on=$2 WHERE id=$3`
		_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
		return err
	}
	query := `UPDATE jobs SET status=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	return err
}

func (r *jobRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Job, int32, error) {
	base := `FROM jobs`
	args := []interface{}{}
	argIdx := 1
	if status != "" {
		base += fmt.Sprintf(" WHERE status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) `+base, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`SELECT %s %s ORDER BY created_on DESC LIMIT $%d OFFSET $%d`, jobColumns, base, argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs, err := r.scanJobs(rows)
	if err != nil {
		return nil, 0, err
	}
	return jobs, count, nil
}

func (r *jobRepository) ListByCustomer(ctx context.Context, customerID int32, page, pageSize int32) ([]domain.Job, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM jobs WHERE customer_id = $1`, customerID).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE customer_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, customerID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs, err := r.scanJobs(rows)
	if err != nil {
		return nil, 0, err
	}
	return jobs, count, nil
}

func (r *jobRepository) ReplaceParts(ctx context.Context, jobID int32, parts []domain.JobPart) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM job_parts WHERE job_id = $1`, jobID); err != nil {
		return err
	}
	for i := range parts {
		p := &parts[i]
		p.JobID = jobID
		err := tx.QueryRowContext(ctx,
			`INSERT INTO job_parts (job_id, part_id, description, quantity, unit_price) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			p.JobID, p.PartID, p.Description, p.Quantity, p.UnitPrice).Scan(&p.ID)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *jobRepository) GetParts(ctx context.Context, jobID int32) ([]domain.JobPart, error) {
	query := `SELECT id, job_id, part_id, description, quantity, unit_price FROM job_parts WHERE job_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parts []domain.JobPart
	for rows.Next() {
		var p domain.JobPart
		if err := rows.Scan(&p.ID, &p.JobID, &p.PartID, &p.Description, &p.Quantity, &p.UnitPrice); err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

func (r *jobRepository) ReplaceSharpenItems(ctx context.Context, jobID int32, items []domain.SharpenItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sharpen_items WHERE job_id = $1`, jobID); err != nil {
		return err
	}
	for i := range items {
		it := &items[i]
		it.JobID = jobID
		err := tx.QueryRowContext(ctx,
			`INSERT INTO sharpen_items (job_id, type, bar_size, link_count, mode, hedge_trimmer_type, memo, quantity)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
			it.JobID, it.Type, it.BarSize, it.LinkCount, it.Mode, it.HedgeTrimmerType, it.Memo, it.Quantity).Scan(&it.ID)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *jobRepository) GetSharpenItems(ctx context.Context, jobID int32) ([]domain.SharpenItem, error) {
	query := `SELECT id, job_id, type, COALESCE(bar_size, ''), COALESCE(link_count, 0), COALESCE(mode, ''), COALESCE(hedge_trimmer_type, ''), COALESCE(memo, ''), quantity
	          FROM sharpen_items WHERE job_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.SharpenItem
	for rows.Next() {
		var it domain.SharpenItem
		if err := rows.Scan(&it.ID, &it.JobID, &it.Type, &it.BarSize, &it.LinkCount, &it.Mode, &it.HedgeTrimmerType, &it.Memo, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *jobRepository) ListAwaitingPickupSince(ctx context.Context, completedBefore string) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = $1 AND completed_on < $2 ORDER BY completed_on`
	rows, err := r.db.QueryContext(ctx, query, domain.JobStatusAwaitingPickup, completedBefore)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanJobs(rows)
}

func (r *jobRepository) RevenueSummary(ctx context.Context, from, to string) (*domain.RevenueSummary, error) {
	s := &domain.RevenueSummary{From: from, To: to}
	query := `SELECT count(*),
	            COALESCE(SUM(parts_subtotal), 0), COALESCE(SUM(labour_total), 0),
	            COALESCE(SUM(transport_total), 0), COALESCE(SUM(sharpen_total), 0),
	            COALESCE(SUM(gst), 0), COALESCE(SUM(grand_total), 0)
	          FROM jobs WHERE status = $1 AND completed_on >= $2 AND completed_on < $3`
	err := r.db.QueryRowContext(ctx, query, domain.JobStatusClosed, from, to).Scan(
		&s.JobCount, &s.PartsTotal, &s.LabourTotal, &s.TransportTotal, &s.SharpenTotal, &s.GSTTotal, &s.GrandTotal)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *jobRepository) CountByStatus(ctx context.Context) (map[domain.JobStatus]int32, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, count(*) FROM jobs GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.JobStatus]int32)
	for rows.Next() {
		var status domain.JobStatus
		var count int32
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *jobRepository) scanJob(row rowScanner) (*domain.Job, error) {
	j := &domain.Job{}
	err := row.Scan(&j.ID, &j.Reference, &j.CustomerID, &j.BrandID, &j.ModelID, &j.CategoryID, &j.MachineNotes, &j.SizeTierOverride,
		&j.Status, &j.Description, &j.LabourHours, &j.LabourRate,
		&j.PickupRequested, &j.PickupKm, &j.DeliveryRequested, &j.DeliveryKm,
		&j.DiscountType, &j.DiscountValue, &j.DepositPaid,
		&j.PartsSubtotal, &j.LabourTotal, &j.TransportTotal, &j.SharpenTotal, &j.DiscountAmount, &j.GST, &j.GrandTotal, &j.BalanceDue,
		&j.TransportNotes, &j.SharpenNotes, &j.CreatedOn, &j.UpdatedOn, &j.CompletedOn)
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (r *jobRepository) scanJobs(rows *sql.Rows) ([]domain.Job, error) {
	var jobs []domain.Job
	for rows.Next() {
		j := domain.Job{}
		err := rows.Scan(&j.ID, &j.Reference, &j.CustomerID, &j.BrandID, &j.ModelID, &j.CategoryID, &j.MachineNotes, &j.SizeTierOverride,
			&j.Status, &j.Description, &j.LabourHours, &j.LabourRate,
			&j.PickupRequested, &j.PickupKm, &j.DeliveryRequested, &j.DeliveryKm,
			&j.DiscountType, &j.DiscountValue, &j.DepositPaid,
			&j.PartsSubtotal, &j.LabourTotal, &j.TransportTotal, &j.SharpenTotal, &j.DiscountAmount, &j.GST, &j.GrandTotal, &j.BalanceDue,
			&j.TransportNotes, &j.SharpenNotes, &j.CreatedOn, &j.UpdatedOn, &j.CompletedOn)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
