package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Selection is a single customer-chosen customization. Selections are a
// sequence, not a set: the same customization may appear twice with different
// placements.
type Selection struct {
	CustomizationID string
	AmountTier      AmountTier
	Placement       Placement
}

// PriceRequest is the input to a price calculation.
type PriceRequest struct {
	RestaurantID string
	ItemType     ItemType
	VariantID    string
	SizeCode     string
	CrustCode    string
	TemplateID   string
	Selections   []Selection
}

// LineKind tags a breakdown line item.
type LineKind string

const (
	LineKindBase            LineKind = "base"
	LineKindCrust           LineKind = "crust"
	LineKindTopping         LineKind = "topping"
	LineKindTemplateDefault LineKind = "template_default"
	LineKindModifier        LineKind = "modifier"
	LineKindWhiteMeat       LineKind = "white_meat"
	LineKindCredit          LineKind = "credit"
)

// LineItem is one priced line of a breakdown.
type LineItem struct {
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Kind      LineKind        `json:"kind"`
	Amount    AmountTier      `json:"amount,omitempty"`
	Placement Placement       `json:"placement,omitempty"`
	Category  string          `json:"category,omitempty"`
	IsDefault bool            `json:"is_default,omitempty"`
}

// PriceBreakdown is the computed output of a price calculation. The line
// items always sum exactly to FinalPrice; the assembler re-validates this
// before returning.
//
// @Description Price calculation result with an ordered, auditable breakdown
type PriceBreakdown struct {
	BasePrice          decimal.Decimal `json:"base_price"`
	CrustUpcharge      decimal.Decimal `json:"crust_upcharge"`
	ToppingCost        decimal.Decimal `json:"topping_cost"`
	ModifierCost       decimal.Decimal `json:"modifier_cost"`
	SubstitutionCredit decimal.Decimal `json:"substitution_credit"`
	FinalPrice         decimal.Decimal `json:"final_price"`
	Breakdown          []LineItem      `json:"breakdown"`
	// EstimatedPrepMinutes is a secondary output used by kitchen displays.
	EstimatedPrepMinutes int `json:"estimated_prep_time"`
}

// EstimatedPrepTime returns the estimated preparation time as a duration.
func (b PriceBreakdown) EstimatedPrepTime() time.Duration {
	return time.Duration(b.EstimatedPrepMinutes) * time.Minute
}
