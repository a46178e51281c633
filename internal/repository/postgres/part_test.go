package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"mowerworks-backend/internal/domain"
	"mowerworks-backend/internal/repository/postgres"
)

func TestPartRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPartRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		p := &domain.Part{
			SKU:       "SP-NGK-BPR6ES",
			Name:      "Spark plug NGK BPR6ES",
			UnitPrice: decimal.RequireFromString("12.95"),
			StockQty:  30,
		}

		mock.ExpectQuery("INSERT INTO parts").
			WithArgs(p.SKU, p.Name, p.BrandID, p.UnitPrice, p.StockQty, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

		err := repo.Create(ctx, p)
		assert.NoError(t, err)
		assert.Equal(t, int32(4), p.ID)
	})
}

func TestPartRepository_AdjustStock(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPartRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE parts SET stock_qty").
			WithArgs(int32(-2), sqlmock.AnyArg(), int32(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AdjustStock(ctx, 4, -2)
		assert.NoError(t, err)
	})

	t.Run("Would Go Negative", func(t *testing.T) {
		// The WHERE guard filters the row out, so zero rows are affected.
		mock.ExpectExec("UPDATE parts SET stock_qty").
			WithArgs(int32(-50), sqlmock.AnyArg(), int32(4)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.AdjustStock(ctx, 4, -50)
		assert.Error(t, err)
	})
}

func TestPartRepository_GetBySKU(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPartRepository(db)
	ctx := context.Background()

	columns := []string{"id", "sku", "name", "brand_id", "unit_price", "stock_qty", "created_on", "updated_on", "deleted_on"}

	mock.ExpectQuery("SELECT (.+) FROM parts WHERE sku").
		WithArgs("SP-NGK-BPR6ES").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(4, "SP-NGK-BPR6ES", "Spark plug NGK BPR6ES", nil, "12.95", 28, "2026-08-01", "2026-08-01", nil))

	p, err := repo.GetBySKU(ctx, "SP-NGK-BPR6ES")
	assert.NoError(t, err)
	assert.Equal(t, "12.95", p.UnitPrice.StringFixed(2))
	assert.Equal(t, int32(28), p.StockQty)
}
