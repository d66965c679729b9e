package service

import (
	"github.com/shopspring/decimal"

	"github.com/tavolo/pricing-service/internal/domain/model"
)

// whiteMeatCategory is the catalog category marking the white-meat upgrade
// customization on chicken items.
const whiteMeatCategory = "white_meat"

// whiteMeatTierMultipliers map the white-meat amount tier to an exact integer
// multiplier of the variant upcharge. No rounding is involved, so tiers never
// drift.
var whiteMeatTierMultipliers = map[model.AmountTier]decimal.Decimal{
	model.TierNone:   decimal.NewFromInt(0),
	model.TierNormal: decimal.NewFromInt(1),
	model.TierExtra:  decimal.NewFromInt(2),
	model.TierXXtra:  decimal.NewFromInt(3),
}

// priceChicken prices a chicken variant: white-meat tier multiplier plus
// flat-priced add-ons. Chicken add-ons are not fractional, so no size or
// tier multipliers apply to them.
func (s *PriceCalculatorService) priceChicken(in strategyInput) (AssemblyInput, error) {
	lines := make([]model.LineItem, 0, len(in.req.Selections))
	whiteMeatTier := model.TierNone

	for _, sel := range in.req.Selections {
		c := in.custs[sel.CustomizationID]

		if c.Category == whiteMeatCategory {
			tier := sel.AmountTier
			mult, ok := whiteMeatTierMultipliers[tier]
			if !ok {
				return AssemblyInput{}, model.NewSelectionInvalidError(sel.CustomizationID,
					"unknown white meat tier "+string(tier))
			}
			if tier != model.TierNone {
				whiteMeatTier = tier
			}
			lines = append(lines, model.LineItem{
				Name:     c.Name,
				Price:    in.variant.WhiteMeatUpcharge.Mul(mult),
				Kind:     model.LineKindWhiteMeat,
				Amount:   tier,
				Category: c.Category,
			})
			continue
		}

		line := model.LineItem{
			Name:     c.Name,
			Kind:     lineKindFor(c),
			Amount:   sel.AmountTier,
			Category: c.Category,
		}
		if def, ok := in.defaults[sel.CustomizationID]; ok && sel.AmountTier == def.DefaultTier {
			line.Price = decimal.Zero
			line.Kind = model.LineKindTemplateDefault
			line.IsDefault = true
		} else {
			line.Price = c.BasePrice.Round(2)
		}
		lines = append(lines, line)
	}

	prep := basePrepMinutes(in.variant.BasePrepMinutes, len(in.req.Selections))
	if whiteMeatTier != model.TierNone {
		prep += WhiteMeatPrepBonusMinutes
		if whiteMeatTier == model.TierXXtra {
			prep += WhiteMeatXXtraPrepBonusMinutes
		}
	}

	return AssemblyInput{
		BaseName:     in.variant.Name,
		Base:         in.variant.BasePrice,
		TemplateName: templateName(in),
		Lines:        lines,
		CreditLines:  s.substitutionCredits(in, in.variant.BasePrice, false),
		PrepMinutes:  prep,
	}, nil
}
