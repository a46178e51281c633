package domain

import "github.com/shopspring/decimal"

// SizeTier determines the transport callout base fee for a machine.
type SizeTier string

const (
	SizeTierSmallMedium SizeTier = "SMALL_MEDIUM"
	SizeTierLarge       SizeTier = "LARGE"
)

type TransportLegType string

const (
	TransportLegPickup   TransportLegType = "pickup"
	TransportLegDelivery TransportLegType = "delivery"
)

// TransportConfig is the shop's transport rate schedule. It is loaded from
// the database and passed read-only into every charge calculation.
type TransportConfig struct {
	ID              int32           `json:"id"`
	SmallMediumBase decimal.Decimal `json:"small_medium_base"`
	LargeBase       decimal.Decimal `json:"large_base"`
	IncludedKm      float64         `json:"included_km"`
	PerKmRate       decimal.Decimal `json:"per_km_rate"`
	OriginAddress   string          `json:"origin_address"`
	UpdatedOn       string          `json:"updated_on"`
}
