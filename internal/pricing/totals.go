package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"mowerworks-backend/internal/domain"
)

var ErrUnknownDiscountType = fmt.Errorf("unknown discount type")

// DefaultGSTRate is the flat 10% GST applied to the discounted subtotal.
var DefaultGSTRate = decimal.NewFromFloat(0.10)

// Discount is an optional job-level discount: a percentage of the subtotal
// or a fixed amount. A zero-value Discount means no discount.
type Discount struct {
	Type  domain.DiscountType `json:"type"`
	Value decimal.Decimal     `json:"value"`
}

// JobTotals are the invoice figures for one job. Balance due is the
// caller's subtraction (grand total minus deposits); the aggregator's
// authoritative output stops at GrandTotal.
type JobTotals struct {
	PartsSubtotal         decimal.Decimal `json:"parts_subtotal"`
	LabourTotal           decimal.Decimal `json:"labour_total"`
	TransportTotal        decimal.Decimal `json:"transport_total"`
	SharpenTotal          decimal.Decimal `json:"sharpen_total"`
	Subtotal              decimal.Decimal `json:"subtotal"`
	DiscountAmount        decimal.Decimal `json:"discount_amount"`
	SubtotalAfterDiscount decimal.Decimal `json:"subtotal_after_discount"`
	GST                   decimal.Decimal `json:"gst"`
	GrandTotal            decimal.Decimal `json:"grand_total"`
}

// ComputeJobTotals combines all charge sources into invoice figures.
// Intermediate sums keep full precision; every output is rounded to two
// decimal places only at the return step. A zero gstRate falls back to
// DefaultGSTRate.
func ComputeJobTotals(partsSubtotal, labourHours, labourRate, transportTotal, sharpenTotal decimal.Decimal, disc Discount, gstRate decimal.Decimal) (JobTotals, error) {
	labourTotal := labourHours.Mul(labourRate)
	subtotal := partsSubtotal.Add(labourTotal).Add(transportTotal).Add(sharpenTotal)

	var discountAmount decimal.Decimal
	switch disc.Type {
	case domain.DiscountTypePercentage:
		discountAmount = subtotal.Mul(disc.Value).Div(decimal.NewFromInt(100))
	case domain.DiscountTypeFixed:
		discountAmount = disc.Value
	case "":
		discountAmount = decimal.Zero
	default:
		return JobTotals{}, fmt.Errorf("%w: %q", ErrUnknownDiscountType, disc.Type)
	}
	// Clamp so the discounted subtotal can never go negative.
	if discountAmount.IsNegative() {
		discountAmount = decimal.Zero
	}
	if discountAmount.GreaterThan(subtotal) {
		discountAmount = subtotal
	}

	afterDiscount := subtotal.Sub(discountAmount)

	if gstRate.IsZero() {
		gstRate = DefaultGSTRate
	}
	gst := afterDiscount.Mul(gstRate)
	grandTotal := afterDiscount.Add(gst)

	return JobTotals{
		PartsSubtotal:         partsSubtotal.Round(2),
		LabourTotal:           labourTotal.Round(2),
		TransportTotal:        transportTotal.Round(2),
		SharpenTotal:          sharpenTotal.Round(2),
		Subtotal:              subtotal.Round(2),
		DiscountAmount:        discountAmount.Round(2),
		SubtotalAfterDiscount: afterDiscount.Round(2),
		GST:                   gst.Round(2),
		GrandTotal:            grandTotal.Round(2),
	}, nil
}
