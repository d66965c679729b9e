// Package service contains the pricing engine and its supporting services.
package service

import (
	"github.com/shopspring/decimal"

	"github.com/tavolo/pricing-service/internal/domain/model"
)

// Restaurant-wide default multiplier tables. A customization's own pricing
// rules, when present, take precedence over these.
var (
	// DefaultSizeMultipliers scale roughly with pizza area relative to 12".
	DefaultSizeMultipliers = map[string]decimal.Decimal{
		"10in": decimal.NewFromFloat(0.69),
		"12in": decimal.NewFromFloat(1.00),
		"14in": decimal.NewFromFloat(1.36),
		"16in": decimal.NewFromFloat(1.78),
	}

	// DefaultTierMultipliers map amount tiers to price multipliers.
	DefaultTierMultipliers = map[model.AmountTier]decimal.Decimal{
		model.TierLight:  decimal.NewFromInt(1),
		model.TierNormal: decimal.NewFromInt(1),
		model.TierExtra:  decimal.NewFromInt(2),
		model.TierXXtra:  decimal.NewFromInt(3),
	}

	// DefaultPlacementFactors map placements to discount factors. A single
	// quarter is deliberately priced well above a linear area fraction.
	DefaultPlacementFactors = map[model.Placement]decimal.Decimal{
		model.PlacementWhole:    decimal.NewFromInt(1),
		model.PlacementLeft:     decimal.NewFromInt(1),
		model.PlacementRight:    decimal.NewFromInt(1),
		model.PlacementQuarter1: decimal.NewFromFloat(0.5),
		model.PlacementQuarter2: decimal.NewFromFloat(0.5),
		model.PlacementQuarter3: decimal.NewFromFloat(0.5),
		model.PlacementQuarter4: decimal.NewFromFloat(0.5),
	}
)

// RuleContext carries the request-side inputs the rule resolver needs to
// price one customization.
type RuleContext struct {
	VariantID string
	SizeCode  string
	Tier      model.AmountTier
	Placement model.Placement
	// ApplyPlacement is set only for pizza toppings; other strategies have
	// no placement concept.
	ApplyPlacement bool
}

// RuleResolver resolves the applicable price for a customization from its own
// pricing rules, falling back to restaurant-wide defaults.
type RuleResolver struct {
	sizeMultipliers  map[string]decimal.Decimal
	tierMultipliers  map[model.AmountTier]decimal.Decimal
	placementFactors map[model.Placement]decimal.Decimal
}

// RuleOption configures a RuleResolver.
type RuleOption func(*RuleResolver)

// WithSizeMultipliers overrides the restaurant-wide size multiplier table.
func WithSizeMultipliers(m map[string]decimal.Decimal) RuleOption {
	return func(r *RuleResolver) {
		if len(m) > 0 {
			r.sizeMultipliers = m
		}
	}
}

// WithTierMultipliers overrides the restaurant-wide tier multiplier table.
func WithTierMultipliers(m map[model.AmountTier]decimal.Decimal) RuleOption {
	return func(r *RuleResolver) {
		if len(m) > 0 {
			r.tierMultipliers = m
		}
	}
}

// WithPlacementFactors overrides the restaurant-wide placement factor table.
func WithPlacementFactors(m map[model.Placement]decimal.Decimal) RuleOption {
	return func(r *RuleResolver) {
		if len(m) > 0 {
			r.placementFactors = m
		}
	}
}

// NewRuleResolver creates a RuleResolver with the default tables.
func NewRuleResolver(opts ...RuleOption) *RuleResolver {
	r := &RuleResolver{
		sizeMultipliers:  DefaultSizeMultipliers,
		tierMultipliers:  DefaultTierMultipliers,
		placementFactors: DefaultPlacementFactors,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolvePrice computes the price of one customization in the given context.
// The result is rounded half-up at the cent and never negative.
func (r *RuleResolver) ResolvePrice(c *model.Customization, rctx RuleContext) decimal.Decimal {
	var price decimal.Decimal

	switch c.PriceType {
	case model.PriceTypeFixed:
		price = c.BasePrice
	case model.PriceTypeTiered:
		price = r.tieredPrice(c, rctx)
	case model.PriceTypeMultiplied:
		price = c.BasePrice.
			Mul(r.sizeMultiplier(c, rctx.SizeCode)).
			Mul(r.tierMultiplier(c, rctx.Tier))
	default:
		price = c.BasePrice
	}

	price = price.Round(2)

	if rctx.ApplyPlacement {
		price = r.applyPlacement(c, rctx.Placement, price)
	}

	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

// tieredPrice looks up an absolute price by variant id, then size code,
// falling back to the base price.
func (r *RuleResolver) tieredPrice(c *model.Customization, rctx RuleContext) decimal.Decimal {
	if p, ok := c.Rules.VariantBasePrices[rctx.VariantID]; ok {
		return p
	}
	if p, ok := c.Rules.VariantBasePrices[rctx.SizeCode]; ok {
		return p
	}
	return c.BasePrice
}

func (r *RuleResolver) sizeMultiplier(c *model.Customization, sizeCode string) decimal.Decimal {
	if m, ok := c.Rules.SizeMultipliers[sizeCode]; ok {
		return m
	}
	if m, ok := r.sizeMultipliers[sizeCode]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

func (r *RuleResolver) tierMultiplier(c *model.Customization, tier model.AmountTier) decimal.Decimal {
	if m, ok := c.Rules.TierMultipliers[tier]; ok {
		return m
	}
	if m, ok := r.tierMultipliers[tier]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

// applyPlacement discounts a pizza topping placed on a single quarter. Whole
// and half placements are full price. An absolute placement price on the
// customization supersedes the factor tables.
func (r *RuleResolver) applyPlacement(c *model.Customization, placement model.Placement, price decimal.Decimal) decimal.Decimal {
	if placement == "" || !placement.IsQuarter() {
		return price
	}
	if p, ok := c.Rules.PlacementPrices[placement]; ok {
		return p.Round(2)
	}
	factor, ok := c.Rules.PlacementFactors[placement]
	if !ok {
		factor, ok = r.placementFactors[placement]
	}
	if !ok {
		return price
	}
	return price.Mul(factor).Round(2)
}
