package domain

import "github.com/shopspring/decimal"

type Part struct {
	ID        int32           `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	BrandID   *int32          `json:"brand_id,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	StockQty  int32           `json:"stock_qty"`
	CreatedOn string          `json:"created_on"`
	UpdatedOn string          `json:"updated_on"`
	DeletedOn *string         `json:"deleted_on,omitempty"`
}
