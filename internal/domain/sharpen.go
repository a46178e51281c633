package domain

type SharpenItemType string

const (
	SharpenItemChainsaw       SharpenItemType = "chainsaw"
	SharpenItemGardenTool     SharpenItemType = "garden-tool"
	SharpenItemKnife          SharpenItemType = "knife"
	SharpenItemCylinderMower  SharpenItemType = "cylinder-mower"
	SharpenItemHandMower      SharpenItemType = "hand-mower"
	SharpenItemLawnMowerBlade SharpenItemType = "lawn-mower-blade"
	SharpenItemHedgeTrimmer   SharpenItemType = "hedge-trimmer"
)

type ChainsawBarSize string

const (
	BarSize14To16 ChainsawBarSize = "14-16"
	BarSize18Plus ChainsawBarSize = "18+"
)

type ChainsawMode string

const (
	ChainsawModeChainOnly ChainsawMode = "chain-only"
	ChainsawModeWholeSaw  ChainsawMode = "whole-saw"
)

type HedgeTrimmerType string

const (
	HedgeTrimmerBattery  HedgeTrimmerType = "battery"
	HedgeTrimmerPetrol   HedgeTrimmerType = "petrol"
	HedgeTrimmerElectric HedgeTrimmerType = "electric"
)

// SharpenItem is one billable sharpening line on a job. Type selects which
// of the attribute fields are meaningful: chainsaws use BarSize, LinkCount
// and Mode; hedge trimmers use HedgeTrimmerType and the unpriced Memo; the
// flat-rate types carry only Quantity.
type SharpenItem struct {
	ID               int32            `json:"id"`
	JobID            int32            `json:"job_id"`
	Type             SharpenItemType  `json:"type"`
	BarSize          ChainsawBarSize  `json:"bar_size,omitempty"`
	LinkCount        int32            `json:"link_count,omitempty"`
	Mode             ChainsawMode     `json:"mode,omitempty"`
	HedgeTrimmerType HedgeTrimmerType `json:"hedge_trimmer_type,omitempty"`
	Memo             string           `json:"memo,omitempty"`
	Quantity         int32            `json:"quantity"`
}
