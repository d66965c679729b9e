package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tavolo/pricing-service/internal/domain/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// TestRuleResolver_ResolvePrice tests price resolution across price types.
func TestRuleResolver_ResolvePrice(t *testing.T) {
	resolver := NewRuleResolver()

	tests := []struct {
		name     string
		cust     model.Customization
		rctx     RuleContext
		expected string
	}{
		{
			name: "fixed price ignores size and tier",
			cust: model.Customization{
				BasePrice: dec("1.50"),
				PriceType: model.PriceTypeFixed,
			},
			rctx:     RuleContext{SizeCode: "16in", Tier: model.TierXXtra},
			expected: "1.50",
		},
		{
			name: "multiplied at 12in normal is the base price",
			cust: model.Customization{
				BasePrice: dec("1.85"),
				PriceType: model.PriceTypeMultiplied,
			},
			rctx:     RuleContext{SizeCode: "12in", Tier: model.TierNormal},
			expected: "1.85",
		},
		{
			name: "multiplied scales by size multiplier",
			cust: model.Customization{
				BasePrice: dec("1.85"),
				PriceType: model.PriceTypeMultiplied,
			},
			rctx:     RuleContext{SizeCode: "16in", Tier: model.TierNormal},
			expected: "3.29", // 1.85 * 1.78 = 3.293, rounded half-up
		},
		{
			name: "multiplied scales by tier multiplier",
			cust: model.Customization{
				BasePrice: dec("1.85"),
				PriceType: model.PriceTypeMultiplied,
			},
			rctx:     RuleContext{SizeCode: "12in", Tier: model.TierExtra},
			expected: "3.70",
		},
		{
			name: "light tier costs the same as normal",
			cust: model.Customization{
				BasePrice: dec("1.85"),
				PriceType: model.PriceTypeMultiplied,
			},
			rctx:     RuleContext{SizeCode: "12in", Tier: model.TierLight},
			expected: "1.85",
		},
		{
			name: "xxtra tier triples the price",
			cust: model.Customization{
				BasePrice: dec("1.85"),
				PriceType: model.PriceTypeMultiplied,
			},
			rctx:     RuleContext{SizeCode: "12in", Tier: model.TierXXtra},
			expected: "5.55",
		},
		{
			name: "unknown size falls back to multiplier 1",
			cust: model.Customization{
				BasePrice: dec("1.85"),
				PriceType: model.PriceTypeMultiplied,
			},
			rctx:     RuleContext{SizeCode: "9in", Tier: model.TierNormal},
			expected: "1.85",
		},
		{
			name: "customization size multiplier overrides the default table",
			cust: model.Customization{
				BasePrice: dec("2.00"),
				PriceType: model.PriceTypeMultiplied,
				Rules: model.PricingRules{
					SizeMultipliers: map[string]decimal.Decimal{"16in": dec("2")},
				},
			},
			rctx:     RuleContext{SizeCode: "16in", Tier: model.TierNormal},
			expected: "4.00",
		},
		{
			name: "customization tier multiplier overrides the default table",
			cust: model.Customization{
				BasePrice: dec("2.00"),
				PriceType: model.PriceTypeMultiplied,
				Rules: model.PricingRules{
					TierMultipliers: map[model.AmountTier]decimal.Decimal{model.TierExtra: dec("1.5")},
				},
			},
			rctx:     RuleContext{SizeCode: "12in", Tier: model.TierExtra},
			expected: "3.00",
		},
		{
			name: "tiered price looks up by variant id first",
			cust: model.Customization{
				BasePrice: dec("1.00"),
				PriceType: model.PriceTypeTiered,
				Rules: model.PricingRules{
					VariantBasePrices: map[string]decimal.Decimal{
						"var-lg": dec("2.25"),
						"12in":   dec("9.99"),
					},
				},
			},
			rctx:     RuleContext{VariantID: "var-lg", SizeCode: "12in"},
			expected: "2.25",
		},
		{
			name: "tiered price falls back to size code",
			cust: model.Customization{
				BasePrice: dec("1.00"),
				PriceType: model.PriceTypeTiered,
				Rules: model.PricingRules{
					VariantBasePrices: map[string]decimal.Decimal{"12in": dec("1.75")},
				},
			},
			rctx:     RuleContext{VariantID: "var-other", SizeCode: "12in"},
			expected: "1.75",
		},
		{
			name: "tiered price falls back to base price",
			cust: model.Customization{
				BasePrice: dec("1.10"),
				PriceType: model.PriceTypeTiered,
			},
			rctx:     RuleContext{VariantID: "var-other", SizeCode: "14in"},
			expected: "1.10",
		},
		{
			name: "negative result floors at zero",
			cust: model.Customization{
				BasePrice: dec("-3.00"),
				PriceType: model.PriceTypeFixed,
			},
			rctx:     RuleContext{},
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.ResolvePrice(&tt.cust, tt.rctx)
			assert.True(t, dec(tt.expected).Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

// TestRuleResolver_Placement tests fractional placement pricing for pizza
// toppings.
func TestRuleResolver_Placement(t *testing.T) {
	resolver := NewRuleResolver()

	pepperoni := model.Customization{
		BasePrice: dec("1.85"),
		PriceType: model.PriceTypeMultiplied,
		Rules: model.PricingRules{
			PlacementPrices: map[model.Placement]decimal.Decimal{
				model.PlacementQuarter1: dec("1.65"),
				model.PlacementQuarter2: dec("1.65"),
				model.PlacementQuarter3: dec("1.65"),
				model.PlacementQuarter4: dec("1.65"),
			},
		},
	}

	tests := []struct {
		name           string
		cust           model.Customization
		placement      model.Placement
		applyPlacement bool
		expected       string
	}{
		{
			name:           "whole placement is full price",
			cust:           pepperoni,
			placement:      model.PlacementWhole,
			applyPlacement: true,
			expected:       "1.85",
		},
		{
			name:           "half placement is full price",
			cust:           pepperoni,
			placement:      model.PlacementLeft,
			applyPlacement: true,
			expected:       "1.85",
		},
		{
			name:           "quarter uses the absolute placement price when present",
			cust:           pepperoni,
			placement:      model.PlacementQuarter2,
			applyPlacement: true,
			expected:       "1.65",
		},
		{
			name: "quarter falls back to the default factor",
			cust: model.Customization{
				BasePrice: dec("2.00"),
				PriceType: model.PriceTypeMultiplied,
			},
			placement:      model.PlacementQuarter1,
			applyPlacement: true,
			expected:       "1.00",
		},
		{
			name: "customization placement factor overrides the default",
			cust: model.Customization{
				BasePrice: dec("2.00"),
				PriceType: model.PriceTypeMultiplied,
				Rules: model.PricingRules{
					PlacementFactors: map[model.Placement]decimal.Decimal{
						model.PlacementQuarter1: dec("0.75"),
					},
				},
			},
			placement:      model.PlacementQuarter1,
			applyPlacement: true,
			expected:       "1.50",
		},
		{
			name:           "placement ignored when not applied",
			cust:           pepperoni,
			placement:      model.PlacementQuarter1,
			applyPlacement: false,
			expected:       "1.85",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rctx := RuleContext{
				SizeCode:       "12in",
				Tier:           model.TierNormal,
				Placement:      tt.placement,
				ApplyPlacement: tt.applyPlacement,
			}
			got := resolver.ResolvePrice(&tt.cust, rctx)
			assert.True(t, dec(tt.expected).Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

// TestRuleResolver_QuarterNeverExceedsWhole checks the placement discount is
// a discount for every size and tier combination.
func TestRuleResolver_QuarterNeverExceedsWhole(t *testing.T) {
	resolver := NewRuleResolver()
	cust := model.Customization{
		BasePrice: dec("1.85"),
		PriceType: model.PriceTypeMultiplied,
	}

	for size := range DefaultSizeMultipliers {
		for tier := range DefaultTierMultipliers {
			whole := resolver.ResolvePrice(&cust, RuleContext{
				SizeCode: size, Tier: tier, Placement: model.PlacementWhole, ApplyPlacement: true,
			})
			quarter := resolver.ResolvePrice(&cust, RuleContext{
				SizeCode: size, Tier: tier, Placement: model.PlacementQuarter3, ApplyPlacement: true,
			})
			assert.True(t, quarter.LessThanOrEqual(whole),
				"quarter %s exceeds whole %s at size=%s tier=%s", quarter, whole, size, tier)
		}
	}
}

// TestRuleResolver_TierMonotonic checks the price never decreases as the
// amount tier increases, for a fixed size and placement.
func TestRuleResolver_TierMonotonic(t *testing.T) {
	resolver := NewRuleResolver()
	cust := model.Customization{
		BasePrice: dec("1.85"),
		PriceType: model.PriceTypeMultiplied,
	}

	tiers := []model.AmountTier{model.TierLight, model.TierNormal, model.TierExtra, model.TierXXtra}
	for size := range DefaultSizeMultipliers {
		prev := decimal.Zero
		for _, tier := range tiers {
			price := resolver.ResolvePrice(&cust, RuleContext{SizeCode: size, Tier: tier})
			assert.True(t, price.GreaterThanOrEqual(prev),
				"price %s at tier %s below %s at the previous tier, size=%s", price, tier, prev, size)
			prev = price
		}
	}
}

// TestRuleResolver_Options tests resolver table overrides.
func TestRuleResolver_Options(t *testing.T) {
	resolver := NewRuleResolver(
		WithSizeMultipliers(map[string]decimal.Decimal{"12in": dec("2")}),
		WithTierMultipliers(map[model.AmountTier]decimal.Decimal{model.TierNormal: dec("3")}),
		WithPlacementFactors(map[model.Placement]decimal.Decimal{model.PlacementQuarter1: dec("0.25")}),
	)

	cust := model.Customization{BasePrice: dec("1.00"), PriceType: model.PriceTypeMultiplied}

	full := resolver.ResolvePrice(&cust, RuleContext{SizeCode: "12in", Tier: model.TierNormal})
	assert.True(t, dec("6.00").Equal(full), "expected 6.00, got %s", full)

	quarter := resolver.ResolvePrice(&cust, RuleContext{
		SizeCode: "12in", Tier: model.TierNormal,
		Placement: model.PlacementQuarter1, ApplyPlacement: true,
	})
	assert.True(t, dec("1.50").Equal(quarter), "expected 1.50, got %s", quarter)
}
