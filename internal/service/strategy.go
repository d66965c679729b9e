package service

import (
	"github.com/shopspring/decimal"

	"github.com/tavolo/pricing-service/internal/domain/model"
)

// strategyInput is the fully-fetched, validated input a variant pricing
// strategy works on. All catalog reads happen before strategy dispatch; the
// strategies themselves are pure.
type strategyInput struct {
	req      model.PriceRequest
	variant  *model.Variant
	crust    *model.CrustPricing
	template *model.Template
	defaults map[string]model.TemplateDefault
	custs    map[string]*model.Customization
}

// lineKindFor maps a customization kind to its breakdown line kind.
func lineKindFor(c *model.Customization) model.LineKind {
	if c.Kind == model.KindTopping {
		return model.LineKindTopping
	}
	return model.LineKindModifier
}

// priceSelection prices one selection against the template defaults.
//
// A selection matching a template default exactly (same customization, same
// tier) is free. A selection on a default customization with a different
// tier is charged the difference between the selected tier and the declared
// default tier, floored at zero.
func (s *PriceCalculatorService) priceSelection(in strategyInput, sel model.Selection, c *model.Customization, applyPlacement bool) model.LineItem {
	rctx := RuleContext{
		VariantID:      in.variant.ID,
		SizeCode:       in.req.SizeCode,
		Tier:           sel.AmountTier,
		Placement:      sel.Placement,
		ApplyPlacement: applyPlacement && c.Kind == model.KindTopping,
	}

	line := model.LineItem{
		Name:      c.Name,
		Kind:      lineKindFor(c),
		Amount:    sel.AmountTier,
		Placement: sel.Placement,
		Category:  c.Category,
	}

	def, isDefault := in.defaults[sel.CustomizationID]
	if !isDefault {
		line.Price = s.rules.ResolvePrice(c, rctx)
		return line
	}

	line.IsDefault = true
	if sel.AmountTier == def.DefaultTier {
		line.Price = decimal.Zero
		line.Kind = model.LineKindTemplateDefault
		return line
	}

	selected := s.rules.ResolvePrice(c, rctx)
	defCtx := rctx
	defCtx.Tier = def.DefaultTier
	included := s.rules.ResolvePrice(c, defCtx)
	delta := selected.Sub(included)
	if delta.IsNegative() {
		delta = decimal.Zero
	}
	line.Price = delta
	return line
}

// substitutionCredits builds credit lines for removable template defaults the
// caller did not select. The total credit is capped by the template's credit
// limit percentage of the base price.
func (s *PriceCalculatorService) substitutionCredits(in strategyInput, base decimal.Decimal, applyPlacement bool) []model.LineItem {
	removed := s.templates.RemovedDefaults(in.template, in.req.Selections)
	if len(removed) == 0 {
		return nil
	}

	limit := base.Mul(in.template.CreditLimitPercentage).Div(decimal.NewFromInt(100)).Round(2)
	if !limit.IsPositive() {
		return nil
	}

	var lines []model.LineItem
	credited := decimal.Zero
	for _, d := range removed {
		c, ok := in.custs[d.CustomizationID]
		if !ok || !c.Available {
			continue
		}
		rctx := RuleContext{
			VariantID:      in.variant.ID,
			SizeCode:       in.req.SizeCode,
			Tier:           d.DefaultTier,
			Placement:      model.PlacementWhole,
			ApplyPlacement: applyPlacement && c.Kind == model.KindTopping,
		}
		credit := s.rules.ResolvePrice(c, rctx)
		if remaining := limit.Sub(credited); credit.GreaterThan(remaining) {
			credit = remaining
		}
		if !credit.IsPositive() {
			continue
		}
		credited = credited.Add(credit)
		lines = append(lines, model.LineItem{
			Name:      "No " + c.Name,
			Price:     credit.Neg(),
			Kind:      model.LineKindCredit,
			Category:  c.Category,
			IsDefault: true,
		})
	}
	return lines
}

// templateName returns the breakdown marker name for the template, if any.
func templateName(in strategyInput) string {
	if in.template == nil {
		return ""
	}
	return in.template.Name
}
