package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"mowerworks-backend/internal/domain"
)

var (
	ErrInvalidQuantity       = fmt.Errorf("quantity must be at least 1")
	ErrUnknownSharpenType    = fmt.Errorf("unknown sharpen item type")
	ErrUnknownBarSize        = fmt.Errorf("unknown chainsaw bar size")
	ErrUnknownChainsawMode   = fmt.Errorf("unknown chainsaw mode")
	ErrUnknownHedgeTrimmer   = fmt.Errorf("unknown hedge trimmer type")
)

// Sharpening price list. Chainsaws are tiered: an 18+ bar OR 61+ links puts
// the saw in the large tier regardless of the other attribute.
var (
	priceChainsawSmallChainOnly = decimal.NewFromInt(18)
	priceChainsawSmallWholeSaw  = decimal.NewFromInt(22)
	priceChainsawLargeChainOnly = decimal.NewFromInt(25)
	priceChainsawLargeWholeSaw  = decimal.NewFromInt(29)
	priceHedgeTrimmerBattery    = decimal.NewFromInt(95)
	priceHedgeTrimmerPetrol     = decimal.NewFromInt(95)
	priceHedgeTrimmerElectric   = decimal.NewFromInt(65)
	priceCylinderMower          = decimal.NewFromInt(125)
	priceHandMower              = decimal.NewFromInt(75)
	priceLawnMowerBlade         = decimal.NewFromInt(35)
	priceGardenTool             = decimal.NewFromInt(18)
	priceKnife                  = decimal.NewFromInt(8)
)

// chainsawLargeLinkCount is the link count at which a chain is billed at
// the large tier even on a 14-16" bar.
const chainsawLargeLinkCount = 61

// SharpenPricing is the priced result of one sharpening line. Description
// is printed verbatim on labels and receipts.
type SharpenPricing struct {
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Description string          `json:"description"`
}

// CalculateSharpenPrice prices one sharpening line item. Unrecognized enum
// values are errors rather than silent fallbacks so a bad form submission
// can never under- or over-charge a customer.
func CalculateSharpenPrice(item domain.SharpenItem) (SharpenPricing, error) {
	if item.Quantity < 1 {
		return SharpenPricing{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, item.Quantity)
	}

	var (
		unit decimal.Decimal
		desc string
	)

	switch item.Type {
	case domain.SharpenItemChainsaw:
		var err error
		unit, err = chainsawUnitPrice(item)
		if err != nil {
			return SharpenPricing{}, err
		}
		desc = fmt.Sprintf("Chainsaw %s\", %d links, %s", item.BarSize, item.LinkCount, chainsawModeLabel(item.Mode))

	case domain.SharpenItemHedgeTrimmer:
		switch item.HedgeTrimmerType {
		case domain.HedgeTrimmerBattery:
			unit = priceHedgeTrimmerBattery
		case domain.HedgeTrimmerPetrol:
			unit = priceHedgeTrimmerPetrol
		case domain.HedgeTrimmerElectric:
			unit = priceHedgeTrimmerElectric
		default:
			return SharpenPricing{}, fmt.Errorf("%w: %q", ErrUnknownHedgeTrimmer, item.HedgeTrimmerType)
		}
		desc = fmt.Sprintf("Hedge Trimmer (%s)", hedgeTrimmerLabel(item.HedgeTrimmerType))
		if item.Memo != "" {
			desc += " [" + item.Memo + "]"
		}

	case domain.SharpenItemCylinderMower:
		unit, desc = priceCylinderMower, "Cylinder Mower"
	case domain.SharpenItemHandMower:
		unit, desc = priceHandMower, "Hand Mower"
	case domain.SharpenItemLawnMowerBlade:
		unit, desc = priceLawnMowerBlade, "Lawn Mower Blade"
	case domain.SharpenItemGardenTool:
		unit, desc = priceGardenTool, "Garden Tool"
	case domain.SharpenItemKnife:
		unit, desc = priceKnife, "Knife"
	default:
		return SharpenPricing{}, fmt.Errorf("%w: %q", ErrUnknownSharpenType, item.Type)
	}

	return SharpenPricing{
		UnitPrice:   unit.Round(2),
		TotalPrice:  unit.Mul(decimal.NewFromInt32(item.Quantity)).Round(2),
		Description: fmt.Sprintf("%s x%d", desc, item.Quantity),
	}, nil
}

func chainsawUnitPrice(item domain.SharpenItem) (decimal.Decimal, error) {
	switch item.BarSize {
	case domain.BarSize14To16, domain.BarSize18Plus:
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownBarSize, item.BarSize)
	}
	switch item.Mode {
	case domain.ChainsawModeChainOnly, domain.ChainsawModeWholeSaw:
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownChainsawMode, item.Mode)
	}

	// OR-based tier boundary: a large bar alone, or a long chain alone,
	// triggers the higher price.
	large := item.BarSize == domain.BarSize18Plus || item.LinkCount >= chainsawLargeLinkCount

	if large {
		if item.Mode == domain.ChainsawModeWholeSaw {
			return priceChainsawLargeWholeSaw, nil
		}
		return priceChainsawLargeChainOnly, nil
	}
	if item.Mode == domain.ChainsawModeWholeSaw {
		return priceChainsawSmallWholeSaw, nil
	}
	return priceChainsawSmallChainOnly, nil
}

func chainsawModeLabel(mode domain.ChainsawMode) string {
	if mode == domain.ChainsawModeWholeSaw {
		return "Whole-saw"
	}
	return "Chain-only"
}

func hedgeTrimmerLabel(t domain.HedgeTrimmerType) string {
	switch t {
	case domain.HedgeTrimmerBattery:
		return "Battery"
	case domain.HedgeTrimmerPetrol:
		return "Petrol"
	default:
		return "Electric"
	}
}
