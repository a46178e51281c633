// Package pricing holds the shop's charge calculators: transport
// (pick-up/delivery) fees, sharpening service prices and the job total
// aggregation used on quotes and invoices. Every function here is a pure
// function of its inputs; rate schedules are passed in, never cached.
package pricing

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"mowerworks-backend/internal/domain"
)

var ErrUnknownSizeTier = fmt.Errorf("unknown machine size tier")

// LegCharge is the priced result of one transport leg.
type LegCharge struct {
	Type        domain.TransportLegType `json:"type"`
	BaseFee     decimal.Decimal         `json:"base_fee"`
	DistanceKm  float64                 `json:"distance_km"`
	ExtraKm     int64                   `json:"extra_km"`
	DistanceFee decimal.Decimal         `json:"distance_fee"`
	Total       decimal.Decimal         `json:"total"`
}

// TransportCalculation combines the priced legs of a job.
type TransportCalculation struct {
	Legs        []LegCharge     `json:"legs"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Description string          `json:"description"`
}

// CalculateLegCharge prices a single transport leg. The base fee comes from
// the machine's size tier; distance beyond cfg.IncludedKm is rounded up to
// whole kilometres and billed at cfg.PerKmRate. Negative or NaN distances
// are clamped to zero.
func CalculateLegCharge(legType domain.TransportLegType, distanceKm float64, tier domain.SizeTier, cfg domain.TransportConfig) (LegCharge, error) {
	var baseFee decimal.Decimal
	switch tier {
	case domain.SizeTierSmallMedium:
		baseFee = cfg.SmallMediumBase
	case domain.SizeTierLarge:
		baseFee = cfg.LargeBase
	default:
		return LegCharge{}, fmt.Errorf("%w: %q", ErrUnknownSizeTier, tier)
	}

	if math.IsNaN(distanceKm) || distanceKm < 0 {
		distanceKm = 0
	}

	var extraKm int64
	if excess := distanceKm - cfg.IncludedKm; excess > 0 {
		extraKm = int64(math.Ceil(excess))
	}

	distanceFee := cfg.PerKmRate.Mul(decimal.NewFromInt(extraKm))

	return LegCharge{
		Type:        legType,
		BaseFee:     baseFee.Round(2),
		DistanceKm:  distanceKm,
		ExtraKm:     extraKm,
		DistanceFee: distanceFee.Round(2),
		Total:       baseFee.Add(distanceFee).Round(2),
	}, nil
}

// CalculateTransportCharges prices the requested legs of a job. A nil
// distance means the leg was not requested. Each leg is billed as an
// independent trip: the included-distance allowance is not shared between
// pick-up and delivery.
func CalculateTransportCharges(pickupKm, deliveryKm *float64, tier domain.SizeTier, cfg domain.TransportConfig) (TransportCalculation, error) {
	calc := TransportCalculation{Subtotal: decimal.Zero}

	if pickupKm != nil {
		leg, err := CalculateLegCharge(domain.TransportLegPickup, *pickupKm, tier, cfg)
		if err != nil {
			return TransportCalculation{}, err
		}
		calc.Legs = append(calc.Legs, leg)
	}
	if deliveryKm != nil {
		leg, err := CalculateLegCharge(domain.TransportLegDelivery, *deliveryKm, tier, cfg)
		if err != nil {
			return TransportCalculation{}, err
		}
		calc.Legs = append(calc.Legs, leg)
	}

	lines := make([]string, 0, len(calc.Legs))
	for _, leg := range calc.Legs {
		calc.Subtotal = calc.Subtotal.Add(leg.Total)
		lines = append(lines, describeLeg(leg, cfg))
	}
	calc.Subtotal = calc.Subtotal.Round(2)
	calc.Description = strings.Join(lines, "\n")

	return calc, nil
}

func describeLeg(leg LegCharge, cfg domain.TransportConfig) string {
	label := "Pick-up"
	if leg.Type == domain.TransportLegDelivery {
		label = "Delivery"
	}
	if leg.ExtraKm == 0 {
		return fmt.Sprintf("%s %.1fkm: $%s base = $%s",
			label, leg.DistanceKm, leg.BaseFee.StringFixed(2), leg.Total.StringFixed(2))
	}
	return fmt.Sprintf("%s %.1fkm: $%s base + %dkm x $%s = $%s",
		label, leg.DistanceKm, leg.BaseFee.StringFixed(2), leg.ExtraKm,
		cfg.PerKmRate.StringFixed(2), leg.Total.StringFixed(2))
}
